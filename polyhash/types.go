// Package polyhash: field constants and default independence orders.
package polyhash

const (
	// Prime is the Mersenne prime 2^61 − 1; all polynomial arithmetic is
	// performed modulo Prime.
	Prime uint64 = 1<<61 - 1

	// primeShift is the bit position of the Mersenne fold: x mod Prime is
	// computed from (x & Prime) + (x >> primeShift).
	primeShift = 61

	// SignDegree is the independence order of Sign hashes. Four-wise
	// independence is what bounds the per-row variance of AGMS estimates.
	SignDegree = 4

	// BinDegree is the independence order of Bin hashes. Pairwise
	// independence suffices for bucket assignment.
	BinDegree = 2

	// MinDepth is the smallest permitted number of hash functions.
	MinDepth = 1

	// MinDegree is the smallest permitted independence order.
	MinDegree = 2
)
