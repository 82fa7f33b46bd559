// SPDX-License-Identifier: MIT
// Package: dmprdpg/sbm
//
// supermatrix.go — layer/timestep concatenation of per-cell blocks.
//
// Layout (both builders):
//
//	          t=0        t=1      …   t=T-1
//	l=0   [ block(0,0) block(0,1) … block(0,T-1) ]
//	l=1   [ block(1,0) block(1,1) … block(1,T-1) ]
//	 …
//	l=L-1 [ …                                     ]
//
// Sample uses N×N sampled 0/1 blocks; Theoretical uses the K×K probability
// blocks themselves.

package sbm

import (
	"gonum.org/v1/gonum/mat"
)

// Sample draws the (L·N)×(T·N) adjacency supermatrix of p.
// Cells are visited layer-major, then by timestep; a missing cell stops the
// walk with ErrMissingBlock naming the (layer, time) key.
// Complexity: O(L·T·N²).
func Sample(p *Params, opts ...Option) (*mat.Dense, error) {
	cfg := newSampleConfig(opts...)
	labels := Labels(p.Groups)
	n := len(labels)

	out := mat.NewDense(p.Layers*n, p.Timesteps*n, nil)
	err := eachCell(p, opSample, func(k Key, b BlockMatrix) error {
		view := out.Slice(k.Layer*n, (k.Layer+1)*n, k.Time*n, (k.Time+1)*n).(*mat.Dense)
		if err := fillBlock(view, labels, b, cfg.rng, cfg.symmetric); err != nil {
			return sbmErrorf(opSample, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Theoretical builds the (L·K)×(T·K) supermatrix of block probabilities,
// using the same layout as Sample without any sampling.
// Complexity: O(L·T·K²).
func Theoretical(p *Params) (*mat.Dense, error) {
	k := p.K()
	out := mat.NewDense(p.Layers*k, p.Timesteps*k, nil)
	err := eachCell(p, opTheoretical, func(key Key, b BlockMatrix) error {
		r0, c0 := key.Layer*k, key.Time*k
		for a := 0; a < k; a++ {
			for c := 0; c < k; c++ {
				out.Set(r0+a, c0+c, b[a][c])
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// eachCell visits every (layer, time) cell in layer-major order.
func eachCell(p *Params, op string, fn func(Key, BlockMatrix) error) error {
	for i := 0; i < p.Layers; i++ {
		for j := 0; j < p.Timesteps; j++ {
			k := Key{Layer: i, Time: j}
			b, ok := p.Probs[k]
			if !ok {
				return missingBlock(op, k)
			}
			if err := fn(k, b); err != nil {
				return err
			}
		}
	}

	return nil
}
