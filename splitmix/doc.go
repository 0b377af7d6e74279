// Package splitmix provides a seeded, deterministic 64-bit pseudorandom
// source (splitmix64) — the sole entropy source of the sketches toolkit.
//
// Overview:
//
//   - A Source holds a single 64-bit counter-like state. Each Next call
//     advances the state by the golden-ratio constant 0x9e3779b97f4a7c15
//     and pushes it through two xor-shift/multiply avalanche rounds
//     (Vigna's splitmix64 finalizer).
//   - The same seed always produces the same sequence, on every platform
//     and in every conforming implementation. This is what makes hash
//     families — and therefore whole sketches — reproducible from a seed.
//   - IntN draws uniformly from a half-open range using rejection
//     sampling, so bounded draws carry no modulo bias.
//
// When to use:
//
//   - Seeding k-wise independent hash families (see package polyhash).
//   - Any place a repeatable, statistically decent stream of 64-bit
//     values is needed and cryptographic strength is not.
//
// When NOT to use:
//
//   - Anything adversarial. splitmix64 is a statistical tool, not a CSPRNG.
//
// Complexity:
//
//   - Next: O(1), a handful of integer operations, no allocation.
//   - IntN: O(1) expected; rejection loops are astronomically rare for
//     ranges far below 2^64.
//
// Errors:
//
//   - ErrInvalidRange: IntN called with max ≤ min (empty sampling range).
//
// Thread safety:
//
//   - A Source is NOT safe for concurrent use; give each goroutine its
//     own Source (cheap: one word of state) or synchronize externally.
package splitmix
