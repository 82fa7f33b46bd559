// SPDX-License-Identifier: MIT
package dmpsbm_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"github.com/katalvlaran/dmprdpg/sbm"
)

// sink to defeat dead-code elimination
var sinkErr float64

func BenchmarkPipeline(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{30, 60, 120} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			p, err := sbm.NewParams(2, 2, []int{n / 3, n / 3, n / 3}, sbm.Uniform(2, 2, threeCommunity))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := dmpsbm.Sample(p, dmpsbm.WithSeed(int64(i)+1))
				if err != nil {
					b.Fatal(err)
				}
				c, err := s.Centroids()
				if err != nil {
					b.Fatal(err)
				}
				a, err := c.Align()
				if err != nil {
					b.Fatal(err)
				}
				sinkErr = a.Error
			}
		})
	}
}
