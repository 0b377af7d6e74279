package dyadic

import (
	"errors"
	"math/bits"
)

var (
	// ErrDomainNotPow2 indicates the domain size n is zero or not a power of two.
	ErrDomainNotPow2 = errors.New("dyadic: domain size must be a power of two")

	// ErrInvalidRange indicates lo > hi or hi outside [0, n−1].
	ErrInvalidRange = errors.New("dyadic: range must satisfy lo ≤ hi ≤ n−1")
)

// Interval is a closed integer interval [Lo, Hi].
type Interval struct {
	Lo uint64
	Hi uint64
}

// node is a tree segment pending classification during the traversal.
type node struct {
	l, r uint64
}

// Cover decomposes [lo, hi] against the dyadic tree over [0, n−1] into
// the minimal canonical cover.
//
// Traversal is an explicit stack seeded with the root [0, n−1]. Each
// popped node is classified: disjoint from the query — dropped; fully
// inside — emitted; partial — split at mid = l + (r−l)/2 with the right
// half pushed first, so left halves pop first and the output comes out
// already sorted ascending.
//
// Returns ErrDomainNotPow2 when n is not a power of two, ErrInvalidRange
// when lo > hi or hi ≥ n.
func Cover(lo, hi, n uint64) ([]Interval, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, ErrDomainNotPow2
	}
	if lo > hi || hi > n-1 {
		return nil, ErrInvalidRange
	}

	levels := bits.Len64(n - 1) // ⌈log2 n⌉
	out := make([]Interval, 0, 2*levels)
	stack := make([]node, 0, levels+1)
	stack = append(stack, node{l: 0, r: n - 1})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case top.r < lo || top.l > hi:
			// Disjoint from the query.
		case lo <= top.l && top.r <= hi:
			out = append(out, Interval{Lo: top.l, Hi: top.r})
		default:
			mid := top.l + (top.r-top.l)/2
			stack = append(stack, node{l: mid + 1, r: top.r})
			stack = append(stack, node{l: top.l, r: mid})
		}
	}

	return out, nil
}
