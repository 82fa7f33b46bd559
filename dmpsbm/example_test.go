// SPDX-License-Identifier: MIT
package dmpsbm_test

import (
	"fmt"

	"github.com/katalvlaran/dmprdpg/dmpsbm"
	"github.com/katalvlaran/dmprdpg/sbm"
)

// ExampleModel runs the classic ordered calls on a model whose communities
// are disconnected cliques; theory and sample then agree exactly.
func ExampleModel() {
	m, err := dmpsbm.NewModel(1, 1, []int{3, 3}, sbm.ProbMap{
		{Layer: 0, Time: 0}: {{1, 0}, {0, 1}},
	}, dmpsbm.WithDim(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	_ = m.Sample()
	_ = m.ComputeCentroids()
	e, err := m.AlignTheoretical()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("error: %.3f\n", e)
	// Output:
	// error: 0.000
}

// ExampleCentroided_Align shows the phased pipeline.
func ExampleCentroided_Align() {
	p, err := sbm.NewParams(2, 2, []int{20, 20},
		sbm.Uniform(2, 2, sbm.BlockMatrix{{0.9, 0.1}, {0.1, 0.7}}))
	if err != nil {
		fmt.Println(err)
		return
	}
	s, _ := dmpsbm.Sample(p, dmpsbm.WithSeed(1))
	c, _ := s.Centroids()
	a, _ := c.Align()
	r, cols := a.Theory.Left.Dims()
	fmt.Println("theory:", r, "x", cols, "centroid slices:", len(a.LeftCentroids), len(a.RightCentroids))
	// Output:
	// theory: 4 x 4 centroid slices: 2 2
}
