// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// diagnostics.go — within-community spread and normality diagnostics.
//
// Variances: per slice, per community, Σ over the d dimensions of the
// population variance of the community's coordinates.
//
// QQ: per slice, per community, per dimension, the community's coordinates
// are mean-centred, standardised by the fitted (population) scale and sorted,
// then paired with standard normal quantiles at plotting positions i/(n+1).
//
// Both return plain data; rendering belongs to the caller.

package dmpsbm

import (
	"math"
	"sort"

	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Variances holds one scalar per community per slice.
type Variances struct {
	// Layers is indexed [layer][community].
	Layers [][]float64
	// Times is indexed [timestep][community].
	Times [][]float64
}

// Variances computes the summed per-dimension population variance of every
// community, per layer (left embedding) and per timestep (right embedding).
func (s *Sampled) Variances() (*Variances, error) {
	if s == nil || s.Left == nil || s.Right == nil {
		return nil, pipelineErrorf(opVariances, ErrNotSampled)
	}
	ranges := sbm.Ranges(s.Params.Groups)

	return &Variances{
		Layers: sliceVariances(s.slices(embed.Left), ranges),
		Times:  sliceVariances(s.slices(embed.Right), ranges),
	}, nil
}

// sliceVariances applies communityVariance to every slice.
func sliceVariances(slices []*mat.Dense, ranges []sbm.Range) [][]float64 {
	out := make([][]float64, len(slices))
	for i, x := range slices {
		row := make([]float64, len(ranges))
		for k, r := range ranges {
			row[k] = communityVariance(x, r)
		}
		out[i] = row
	}

	return out
}

// communityVariance sums stat.PopVariance over the d columns of one run.
func communityVariance(x *mat.Dense, r sbm.Range) float64 {
	_, d := x.Dims()
	block := x.Slice(r.Start, r.End, 0, d)
	total := 0.0
	for j := 0; j < d; j++ {
		total += stat.PopVariance(mat.Col(nil, j, block), nil)
	}

	return total
}

// QQSeries is one normal QQ comparison.
type QQSeries struct {
	Side      embed.Side
	Slice     int // layer for Left, timestep for Right
	Community int
	Dim       int
	// Theoretical holds standard normal quantiles, ascending.
	Theoretical []float64
	// Sample holds the standardised community coordinates, ascending.
	Sample []float64
}

// Correlation returns the probability-plot correlation coefficient of the
// series; values near 1 indicate an approximately normal marginal. It is 0
// for degenerate series (fewer than two points or zero spread).
func (q QQSeries) Correlation() float64 {
	if len(q.Sample) < 2 {
		return 0
	}
	if _, v := stat.PopMeanVariance(q.Sample, nil); v == 0 {
		return 0
	}

	return stat.Correlation(q.Theoretical, q.Sample, nil)
}

// QQ builds normal QQ series for every layer × community × dimension of the
// left embedding, followed by every timestep × community × dimension of the
// right embedding.
func (s *Sampled) QQ() ([]QQSeries, error) {
	if s == nil || s.Left == nil || s.Right == nil {
		return nil, pipelineErrorf(opQQ, ErrNotSampled)
	}
	ranges := sbm.Ranges(s.Params.Groups)
	d := s.cfg.dim

	out := make([]QQSeries, 0, (s.Params.Layers+s.Params.Timesteps)*len(ranges)*d)
	for _, side := range []embed.Side{embed.Left, embed.Right} {
		for i, x := range s.slices(side) {
			for k, r := range ranges {
				block := x.Slice(r.Start, r.End, 0, d)
				theo := normalQuantiles(r.Len())
				for j := 0; j < d; j++ {
					out = append(out, QQSeries{
						Side:        side,
						Slice:       i,
						Community:   k,
						Dim:         j,
						Theoretical: append([]float64(nil), theo...),
						Sample:      standardize(mat.Col(nil, j, block)),
					})
				}
			}
		}
	}

	return out, nil
}

// normalQuantiles returns Φ⁻¹(i/(n+1)) for i = 1..n.
func normalQuantiles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = distuv.UnitNormal.Quantile(float64(i+1) / float64(n+1))
	}

	return out
}

// standardize mean-centres x, divides by the population standard deviation
// when it is non-zero, and sorts ascending. x is modified in place.
func standardize(x []float64) []float64 {
	mean, variance := stat.PopMeanVariance(x, nil)
	scale := 1.0
	if variance > 0 {
		scale = 1 / math.Sqrt(variance)
	}
	for i := range x {
		x[i] = (x[i] - mean) * scale
	}
	sort.Float64s(x)

	return x
}
