// Package agms implements the Fast-AGMS (Tug-of-War) sketch: a
// depth×width grid of signed counters that estimates per-item
// frequencies and inner products (join sizes) of data streams from
// bounded memory.
//
// Overview:
//
//   - A Sketch owns one pairwise-independent bucket hash (polyhash.Bin)
//     and one 4-wise independent sign hash (polyhash.Sign), both derived
//     from the same seed, so column and sign are jointly reproducible
//     per (item, row).
//   - Update hashes the item once per row into one column and adds
//     sign·weight there. Across many items the cross terms cancel in
//     expectation; an item's own contribution survives.
//   - Query reads sign·counter per row — each an unbiased, high-variance
//     estimate of the item's accumulated weight — and returns the median
//     across rows. The 4-wise sign independence bounds per-row variance;
//     the median concentrates the combined estimate near the truth.
//   - DotProduct takes the median over rows of the ordinary dot product
//     of two sketches' counter rows, estimating the inner product of the
//     two underlying streams without materializing either.
//
// Sizing (folklore, not enforced): width ≈ O(1/ε²) controls per-row
// error relative to the stream's L2 mass, depth ≈ O(log 1/δ) controls
// the failure probability of the median. Pick both explicitly; the
// package never chooses for you, and neither dimension can change after
// construction.
//
// Determinism:
//
//   - (depth, width, seed) fully determine hashing; two sketches built
//     with equal parameters are comparable bucket-for-bucket. Comparing
//     sketches built with different seeds silently estimates garbage —
//     only dimensions are verified, because nothing cheaper than the
//     coefficient tables themselves could verify the seed.
//
// Complexity:
//
//   - Update/Add/Query: O(depth·k) hash steps, no allocation on Update.
//   - DotProduct: O(depth·width).
//   - Grid: O(depth·width) copy.
//
// Errors (sentinel):
//
//   - ErrBadDepth, ErrBadWidth: non-positive dimensions at construction.
//   - ErrNilSketch: DotProduct against nil.
//   - ErrDimensionMismatch: DotProduct across differing depth/width;
//     detected before any computation touches the grids.
//
// Numeric semantics:
//
//   - Counters and weights are int64. Overflow is not wrapped or
//     modeled as an error; size counters to the stream volume.
//
// Thread safety:
//
//   - Update mutates the grid in place and must be serialized by the
//     owner. Query, DotProduct and Grid are read-only and may run
//     concurrently with each other, but not with a concurrent Update.
//
// See also:
//
//   - polyhash.Sign / polyhash.Bin — the hash layer consumed here.
//   - dyadic.Cover — decompose a range into O(log n) intervals and sum
//     per-interval sketch estimates for range queries.
package agms
