// Package report writes the results of an aligned pipeline run to disk.
//
// Outputs (all optional except the summary):
//
//	variances.csv  side,slice,community,variance
//	qq.csv         side,slice,community,dim,index,theoretical,sample
//	scatter.csv    side,slice,kind,community,x,y
//	summary.yaml   run id, model shape, dimension, seed, errors, rotations
//
// Every run is tagged with a random UUID so several runs can share one
// output tree. Rendering of the tables is left to external tools.
//
// SPDX-License-Identifier: MIT
package report
