// SPDX-License-Identifier: MIT
package sbm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dmprdpg/sbm"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// randomProbs fills every cell with a K×K block drawn from rng.
func randomProbs(rng *rand.Rand, layers, timesteps, k int) sbm.ProbMap {
	out := make(sbm.ProbMap, layers*timesteps)
	for i := 0; i < layers; i++ {
		for j := 0; j < timesteps; j++ {
			b := make(sbm.BlockMatrix, k)
			for a := range b {
				b[a] = make([]float64, k)
				for c := range b[a] {
					b[a][c] = rng.Float64()
				}
			}
			out[sbm.Key{Layer: i, Time: j}] = b
		}
	}

	return out
}

// TestSampleInvariants: for any valid model, A is (L·N)×(T·N) with 0/1 entries,
// and the theoretical supermatrix is (L·K)×(T·K).
func TestSampleInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	parameters.MaxSize = 4

	properties := gopter.NewProperties(parameters)

	properties.Property("supermatrix shape and binary entries", prop.ForAll(
		func(layers, timesteps int, groups []int, seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			p, err := sbm.NewParams(layers, timesteps, groups, randomProbs(rng, layers, timesteps, len(groups)))
			if err != nil {
				return false
			}
			A, err := sbm.Sample(p, sbm.WithSeed(seed))
			if err != nil {
				return false
			}
			r, c := A.Dims()
			if r != layers*p.N() || c != timesteps*p.N() {
				return false
			}
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					if v := A.At(i, j); v != 0 && v != 1 {
						return false
					}
				}
			}
			P, err := sbm.Theoretical(p)
			if err != nil {
				return false
			}
			pr, pc := P.Dims()

			return pr == layers*p.K() && pc == timesteps*p.K()
		},
		gen.IntRange(1, 3),
		gen.IntRange(1, 3),
		gen.SliceOf(gen.IntRange(1, 6)).SuchThat(func(v []int) bool { return len(v) > 0 }),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
