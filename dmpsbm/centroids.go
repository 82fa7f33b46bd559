// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// centroids.go — stage 2: per-community mean embedding vectors.
//
// For every slice (layer on the left, timestep on the right) and every
// community k in declared order, the centroid is the elementwise mean of the
// community's rows over all d dimensions. Rows are located by the contiguous
// runs from sbm.Ranges, never by iterating a set of labels.
//
// Complexity: O((L+T)·N·d).

package dmpsbm

import (
	"log/slog"

	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Centroids is indexed [slice][community][dim].
type Centroids [][][]float64

// Stack flattens c into a (S·K)×d matrix, slice-major then community.
// ok is false when c holds no slice, no community or no dimension.
func (c Centroids) Stack() (m *mat.Dense, ok bool) {
	if len(c) == 0 || len(c[0]) == 0 || len(c[0][0]) == 0 {
		return nil, false
	}
	k, d := len(c[0]), len(c[0][0])
	out := mat.NewDense(len(c)*k, d, nil)
	for s, slice := range c {
		for g, v := range slice {
			out.SetRow(s*k+g, v)
		}
	}

	return out, true
}

// Centroided is the pipeline state after centroid aggregation.
type Centroided struct {
	*Sampled

	// LeftCentroids has length Layers, each of length K, each a d-vector.
	LeftCentroids Centroids
	// RightCentroids has length Timesteps, each of length K, each a d-vector.
	RightCentroids Centroids
}

// Centroids computes per-layer and per-timestep community centroids.
func (s *Sampled) Centroids() (*Centroided, error) {
	if s == nil || s.Left == nil || s.Right == nil {
		return nil, pipelineErrorf(opCentroids, ErrNotSampled)
	}
	ranges := sbm.Ranges(s.Params.Groups)

	c := &Centroided{
		Sampled:        s,
		LeftCentroids:  sliceCentroids(s.slices(embed.Left), ranges),
		RightCentroids: sliceCentroids(s.slices(embed.Right), ranges),
	}
	s.cfg.logger.Debug("computed centroids",
		slog.Int("layers", len(c.LeftCentroids)), slog.Int("timesteps", len(c.RightCentroids)),
		slog.Int("communities", len(ranges)))

	return c, nil
}

// sliceCentroids averages each community run of every slice.
func sliceCentroids(slices []*mat.Dense, ranges []sbm.Range) Centroids {
	out := make(Centroids, len(slices))
	for i, x := range slices {
		out[i] = communityMeans(x, ranges)
	}

	return out
}

// communityMeans returns one d-vector per community of slice x (N×d).
func communityMeans(x *mat.Dense, ranges []sbm.Range) [][]float64 {
	_, d := x.Dims()
	out := make([][]float64, len(ranges))
	for k, r := range ranges {
		block := x.Slice(r.Start, r.End, 0, d)
		mean := make([]float64, d)
		for j := 0; j < d; j++ {
			mean[j] = stat.Mean(mat.Col(nil, j, block), nil)
		}
		out[k] = mean
	}

	return out
}
