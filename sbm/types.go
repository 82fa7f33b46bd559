// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// types.go — domain types of the block model.

package sbm

// Key addresses one (layer, timestep) cell of the model. Both members are
// 0-based: 0 ≤ Layer < Layers and 0 ≤ Time < Timesteps.
type Key struct {
	Layer int // row block index of the supermatrix
	Time  int // column block index of the supermatrix
}

// BlockMatrix is a K×K matrix of edge probabilities between communities.
// Entry [a][b] is the probability of an edge from a node of community a to a
// node of community b.
type BlockMatrix [][]float64

// ProbMap maps every (layer, timestep) cell to its block matrix.
type ProbMap map[Key]BlockMatrix

// Range is the half-open node index run [Start, End) of one community
// inside a single layer/timestep slice.
type Range struct {
	Start int
	End   int
}

// Len returns the number of nodes in the run.
func (r Range) Len() int { return r.End - r.Start }

// Params holds the validated model parameters. Build it with NewParams;
// the zero value is not usable.
type Params struct {
	Layers    int
	Timesteps int
	Groups    []int
	Probs     ProbMap
}

// N returns the number of nodes per slice (sum of group sizes).
func (p *Params) N() int {
	n := 0
	for _, g := range p.Groups {
		n += g
	}

	return n
}

// K returns the number of communities.
func (p *Params) K() int { return len(p.Groups) }

// Block returns the block matrix of cell k or ErrMissingBlock.
func (p *Params) Block(k Key) (BlockMatrix, error) {
	b, ok := p.Probs[k]
	if !ok {
		return nil, missingBlock("Block", k)
	}

	return b, nil
}

// Missing lists every cell in layer-major order that has no block matrix.
// An empty result means the model is complete.
func (p *Params) Missing() []Key {
	var out []Key
	for i := 0; i < p.Layers; i++ {
		for j := 0; j < p.Timesteps; j++ {
			if _, ok := p.Probs[Key{Layer: i, Time: j}]; !ok {
				out = append(out, Key{Layer: i, Time: j})
			}
		}
	}

	return out
}
