package polyhash

import (
	"math/bits"

	"github.com/katalvlaran/sketches/splitmix"
)

// Family is an immutable table of depth independent hash polynomials of
// degree k−1 over Z_Prime. Construct with New; share freely afterwards.
type Family struct {
	depth int
	k     int
	coeff [][]uint64 // depth rows × k coefficients, read-only after New
}

// New draws a Family of depth polynomials of independence order k from a
// splitmix source seeded with seed.
//
// Per row: k−1 coefficients uniform in [1, Prime) (non-zero, so the
// polynomial keeps full degree), then one constant term uniform in
// [0, Prime). The draw order is fixed, so (seed, depth, k) pins every
// coefficient bit-identically.
//
// Returns ErrBadDepth if depth < 1 and ErrBadDegree if k < 2.
func New(depth, k int, seed uint64) (*Family, error) {
	if depth < MinDepth {
		return nil, ErrBadDepth
	}
	if k < MinDegree {
		return nil, ErrBadDegree
	}

	src := splitmix.New(seed)
	coeff := make([][]uint64, depth)
	for r := range coeff {
		row := make([]uint64, k)
		for i := 0; i < k-1; i++ {
			c, err := src.IntN(1, Prime)
			if err != nil {
				return nil, err
			}
			row[i] = c
		}
		last, err := src.IntN(0, Prime)
		if err != nil {
			return nil, err
		}
		row[k-1] = last
		coeff[r] = row
	}

	return &Family{depth: depth, k: k, coeff: coeff}, nil
}

// Depth returns the number of hash polynomials in the family.
func (f *Family) Depth() int { return f.depth }

// Degree returns the independence order k.
func (f *Family) Degree() int { return f.k }

// Eval evaluates polynomial row at point x and returns a field element in
// [0, Prime). Inputs outside the field are first reduced mod Prime.
//
// Returns ErrRowOutOfRange if row is not in [0, depth).
func (f *Family) Eval(row int, x uint64) (uint64, error) {
	if row < 0 || row >= f.depth {
		return 0, ErrRowOutOfRange
	}

	xf := Reduce(x)
	c := f.coeff[row]
	acc := c[0]
	for _, a := range c[1:] {
		acc = mulAddMod(acc, xf, a)
	}

	return acc, nil
}

// Reduce returns x mod Prime via the Mersenne fold: the low 61 bits plus
// the high bits, with at most one conditional subtraction.
func Reduce(x uint64) uint64 {
	r := (x & Prime) + (x >> primeShift)
	if r >= Prime {
		r -= Prime
	}

	return r
}

// mulAddMod computes (a·x + b) mod Prime through a full 128-bit
// intermediate. a and x must already be field elements (< Prime), which
// keeps hi below 2^58 and every partial sum below 2^62 — no step can
// overflow uint64 before the fold.
//
// The fold uses 2^64 ≡ 8 (mod Prime), so hi:lo ≡ 8·hi + lo.
func mulAddMod(a, x, b uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	lo, carry := bits.Add64(lo, b, 0)
	hi += carry

	r := (lo & Prime) + (lo >> primeShift) + hi<<3
	r = (r & Prime) + (r >> primeShift)
	if r >= Prime {
		r -= Prime
	}

	return r
}
