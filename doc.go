// Package dmprdpg simulates dynamic multi-layer stochastic block models and
// measures how well their spectral embeddings match theory.
//
// 🚀 What is a dynamic multi-layer SBM?
//
//	The same N nodes, split into K communities, are observed in L layers at
//	T timesteps. Every (layer, time) cell has a K×K block of edge
//	probabilities. Stacking layers vertically and timesteps horizontally
//	gives one (L·N)×(T·N) adjacency supermatrix.
//
// ✨ Pipeline:
//
//	sbm/         — typed parameters, community labelling, Bernoulli sampling,
//	               theoretical probability supermatrix
//	embed/       — left/right spectral embeddings from a thin SVD
//	procrustes/  — orthogonal Procrustes rotation and squared error
//	dmpsbm/      — phased pipeline Sampled → Centroided → Aligned, variance,
//	               QQ and scatter diagnostics, plus a mutable Model facade
//	config/      — YAML run description with struct-tag validation
//	report/      — CSV tables and a YAML summary of one run
//	cmd/dmpsbm/  — command-line driver
//
// Quick start:
//
//	p, _ := sbm.NewParams(2, 3, []int{50, 50}, sbm.Uniform(2, 3, block))
//	s, _ := dmpsbm.Sample(p, dmpsbm.WithSeed(42))
//	c, _ := s.Centroids()
//	a, _ := c.Align()
//	fmt.Println(a.Error)
//
//	go install github.com/katalvlaran/dmprdpg/cmd/dmpsbm@latest
package dmprdpg
