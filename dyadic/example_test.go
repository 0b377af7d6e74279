package dyadic_test

import (
	"fmt"

	"github.com/katalvlaran/sketches/dyadic"
)

// ExampleCover decomposes [3, 9] over a 16-element domain: one singleton,
// one aligned block of four, one aligned block of two.
//
// Scenario:
//
//	A caller keeps one sketch per dyadic node over [0, 15]. To answer a
//	range query for [3, 9], it covers the range and combines exactly
//	three precomputed sketch estimates instead of ten point queries.
func ExampleCover() {
	cover, err := dyadic.Cover(3, 9, 16)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, iv := range cover {
		fmt.Printf("[%d, %d]\n", iv.Lo, iv.Hi)
	}
	// Output:
	// [3, 3]
	// [4, 7]
	// [8, 9]
}

// ExampleCover_aligned shows that a range already matching a tree node
// covers itself with a single interval.
func ExampleCover_aligned() {
	cover, _ := dyadic.Cover(8, 15, 16)
	fmt.Println(cover)
	// Output:
	// [{8 15}]
}
