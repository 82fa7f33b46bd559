package embed_test

import (
	"fmt"

	"github.com/katalvlaran/dmprdpg/embed"
	"gonum.org/v1/gonum/mat"
)

// ExampleBoth embeds a diagonal matrix: every node sits on its own axis,
// scaled by the square root of its singular value.
func ExampleBoth() {
	m := mat.NewDense(2, 2, []float64{4, 0, 0, 1})
	e, err := embed.Both(m, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("left diagonal: %.3f %.3f\n", e.Left.At(0, 0), e.Left.At(1, 1))
	fmt.Printf("singular: %.3g\n", e.Singular)
	// Output:
	// left diagonal: 2.000 1.000
	// singular: [4 1]
}
