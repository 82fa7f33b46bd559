// SPDX-License-Identifier: MIT
// Package: dmprdpg/dmpsbm
//
// scatter.go — first-two-dimension point sets for embedding scatter plots.

package dmpsbm

import (
	"github.com/katalvlaran/dmprdpg/embed"
	"github.com/katalvlaran/dmprdpg/sbm"
	"gonum.org/v1/gonum/mat"
)

// Point is one 2-D marker tagged with its community index.
type Point struct {
	X, Y      float64
	Community int
}

// ScatterSlice collects the markers of one layer (left) or timestep (right).
type ScatterSlice struct {
	Side  embed.Side
	Slice int
	// Nodes are the sampled embedding rows, labelled by community.
	Nodes []Point
	// Theory are the rotated theoretical community positions.
	Theory []Point
	// Centroids are the empirical community means.
	Centroids []Point
}

// Scatter returns one ScatterSlice per layer, then one per timestep.
// With d == 1 every Y is 0.
func (a *Aligned) Scatter() []ScatterSlice {
	labels := sbm.Labels(a.Params.Groups)
	k := a.Params.K()

	out := make([]ScatterSlice, 0, a.Params.Layers+a.Params.Timesteps)
	for _, side := range []embed.Side{embed.Left, embed.Right} {
		theory, cents := a.Theory.Left, a.LeftCentroids
		if side == embed.Right {
			theory, cents = a.Theory.Right, a.RightCentroids
		}
		for i, x := range a.slices(side) {
			ss := ScatterSlice{Side: side, Slice: i}
			for u, l := range labels {
				ss.Nodes = append(ss.Nodes, rowPoint(x, u, l))
			}
			for g := 0; g < k; g++ {
				ss.Theory = append(ss.Theory, rowPoint(theory, i*k+g, g))
				ss.Centroids = append(ss.Centroids, vecPoint(cents[i][g], g))
			}
			out = append(out, ss)
		}
	}

	return out
}

// rowPoint takes the first two coordinates of row i of m.
func rowPoint(m *mat.Dense, i, community int) Point {
	return vecPoint(m.RawRowView(i), community)
}

// vecPoint takes the first two coordinates of v.
func vecPoint(v []float64, community int) Point {
	p := Point{X: v[0], Community: community}
	if len(v) > 1 {
		p.Y = v[1]
	}

	return p
}
