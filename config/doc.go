// Package config loads the YAML description of one analysis run.
//
// A document has five sections:
//
//	model:      layers, timesteps, groups and block probabilities
//	embedding:  embedding dimension d
//	sampling:   seed and symmetric (undirected) sampling
//	report:     output directory and which tables to write
//	log:        slog level and handler format
//
// Block probabilities are given per (layer, time) cell; default_block, when
// present, fills every cell that has no explicit entry:
//
//	model:
//	  layers: 2
//	  timesteps: 3
//	  groups: [40, 40]
//	  default_block: [[0.6, 0.1], [0.1, 0.4]]
//	  blocks:
//	    - {layer: 1, time: 2, probs: [[0.9, 0.05], [0.05, 0.7]]}
//
// Structural checks run on struct tags through a shared go-playground
// validator; probability semantics are checked again by sbm.NewParams when
// Params builds the model.
//
// SPDX-License-Identifier: MIT
package config
