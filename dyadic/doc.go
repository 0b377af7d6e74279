// Package dyadic decomposes integer ranges into canonical dyadic
// intervals — the nodes of the implicit complete binary tree over a
// power-of-two domain [0, n−1].
//
// Overview:
//
//   - Cover(lo, hi, n) returns the unique minimal set of tree nodes whose
//     union is exactly [lo, hi]: a node fully inside the query is emitted
//     whole; a partially overlapping node is split into its two halves;
//     the split point is mid = l + (r−l)/2, the same midpoint a standard
//     binary search would pick, so the decomposition is bit-identical
//     across implementations.
//   - The traversal is an explicit stack, not recursion, bounding work
//     space at O(log n) deterministically for any domain size.
//   - At most two nodes per tree level can be emitted, so the cover never
//     exceeds 2·⌈log2 n⌉ intervals.
//
// When to use:
//
//   - Range queries over per-interval sketches: keep one sketch per
//     dyadic node, decompose the query range, and combine O(log n)
//     sketch estimates instead of rescanning the stream (see package
//     agms).
//   - Any segment-tree-style aggregation where an arbitrary range must
//     be expressed as few precomputed building blocks.
//
// Complexity:
//
//   - Cover: O(log n) time and space. Stateless, side-effect free, safe
//     to memoize by (lo, hi, n).
//
// Errors (sentinel):
//
//   - ErrDomainNotPow2: n is zero or not a power of two.
//   - ErrInvalidRange:  lo > hi, or hi ≥ n.
//
// Guarantees:
//
//   - Returned intervals are pairwise disjoint, sorted ascending by Lo,
//     their union is exactly [lo, hi], and len ≤ 2·⌈log2 n⌉.
package dyadic
