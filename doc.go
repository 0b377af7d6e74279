// Package sketches is your in-memory toolkit for reproducible streaming
// estimation — from deterministic pseudorandomness to linear sketches
// and range decomposition.
//
// 🚀 What is sketches?
//
//	A modern, dependency-light library that brings together:
//		• splitmix:  seeded 64-bit deterministic random source (splitmix64)
//		• polyhash:  k-wise independent hash families over the field Z_(2^61−1)
//		• agms:      Fast-AGMS (Tug-of-War) sketch — frequencies & join sizes
//		             from bounded memory
//		• dyadic:    canonical dyadic-interval covers for range queries
//
// ✨ Why choose sketches?
//
//   - Reproducible by construction – same seed ⇒ bit-identical hash
//     families, sketches and estimates, across runs and across machines
//   - Statistically sound – 4-wise independent sign hashes, pairwise
//     independent bucket hashes, median-of-rows aggregation
//   - Pure Go – no cgo, no hidden global randomness
//   - Tight bounds – every operation is O(depth), O(depth·width) or O(log n)
//
// The packages compose bottom-up:
//
//	splitmix → polyhash → agms
//
// dyadic stands alone: callers use it to split a query range into
// O(log n) canonical intervals and combine one precomputed sketch per
// interval, instead of rescanning the stream.
//
// Quick sketch of the sketch:
//
//	s, _ := agms.New(8, 64, 42)
//	_ = s.Update('a', 3)
//	_ = s.Update('b', 2)
//	est, _ := s.Query('a') // ≈ 3
//
// Dive into each package's doc.go for the full contract, complexity
// notes and error semantics, and into cmd/sketches for a runnable demo.
//
//	go get github.com/katalvlaran/sketches
package sketches
