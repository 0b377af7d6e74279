package agms_test

import (
	"fmt"

	"github.com/katalvlaran/sketches/agms"
)

// ExampleSketch_Query estimates the weight of a single-item stream.
// With only one item in the sketch no bucket collides, so every row —
// and therefore the median — recovers the weight exactly.
func ExampleSketch_Query() {
	s, _ := agms.New(8, 64, 42)
	_ = s.Update('x', 7)

	est, _ := s.Query('x')
	fmt.Println("estimate:", est)
	// Output:
	// estimate: 7
}

// ExampleSketch_Update shows the sketch's linearity: an insertion and a
// matching deletion cancel to an exactly empty sketch.
func ExampleSketch_Update() {
	s, _ := agms.New(8, 64, 7)
	_ = s.Update('x', 5)
	_ = s.Update('x', -5)

	est, _ := s.Query('x')
	fmt.Println("after cancel:", est)
	// Output:
	// after cancel: 0
}

// ExampleSketch_DotProduct estimates a join size between two streams
// sketched with the same (depth, width, seed). One common item makes the
// estimate exact: 3·5 = 15.
func ExampleSketch_DotProduct() {
	left, _ := agms.New(8, 64, 21)
	right, _ := agms.New(8, 64, 21)

	_ = left.Update('k', 3)
	_ = right.Update('k', 5)

	join, _ := left.DotProduct(right)
	fmt.Println("join size:", join)
	// Output:
	// join size: 15
}
