package agms

import (
	"sort"

	"github.com/katalvlaran/sketches/polyhash"
)

// Sketch is a Fast-AGMS sketch: depth rows × width signed counters, with
// one bucket hash and one sign hash per row derived from a single seed.
// Construct with New; dimensions never change afterwards.
type Sketch struct {
	depth int
	width int
	grid  [][]int64
	bin   *polyhash.Bin
	sign  *polyhash.Sign
}

// New builds an empty depth×width sketch seeded with seed.
//
// The seed determines both hash families, so sketches built with equal
// (depth, width, seed) accumulate comparable grids and may be combined
// via DotProduct.
//
// Returns ErrBadDepth or ErrBadWidth on non-positive dimensions.
func New(depth, width int, seed uint64) (*Sketch, error) {
	if depth < 1 {
		return nil, ErrBadDepth
	}
	if width < 1 {
		return nil, ErrBadWidth
	}

	bin, err := polyhash.NewBin(depth, width, seed)
	if err != nil {
		return nil, err
	}
	sign, err := polyhash.NewSign(depth, seed)
	if err != nil {
		return nil, err
	}

	grid := make([][]int64, depth)
	for r := range grid {
		grid[r] = make([]int64, width)
	}

	return &Sketch{depth: depth, width: width, grid: grid, bin: bin, sign: sign}, nil
}

// Depth returns the number of rows.
func (s *Sketch) Depth() int { return s.depth }

// Width returns the number of counters per row.
func (s *Sketch) Width() int { return s.width }

// Update folds item into the sketch with the given signed weight: per
// row, counter[bin(item)] += sign(item)·weight.
//
// All row hashes are resolved before the first counter is touched, so a
// failed update leaves the grid untouched — there is no partial apply.
func (s *Sketch) Update(item uint64, weight int64) error {
	cols, signs, err := s.locate(item)
	if err != nil {
		return err
	}
	for r := 0; r < s.depth; r++ {
		s.grid[r][cols[r]] += signs[r] * weight
	}

	return nil
}

// Add is Update with weight 1.
func (s *Sketch) Add(item uint64) error {
	return s.Update(item, 1)
}

// Query estimates the accumulated weight of item as the median over rows
// of sign(item)·counter[bin(item)]. Each row is unbiased; the median
// tames the variance.
func (s *Sketch) Query(item uint64) (int64, error) {
	cols, signs, err := s.locate(item)
	if err != nil {
		return 0, err
	}
	estimates := make([]int64, s.depth)
	for r := 0; r < s.depth; r++ {
		estimates[r] = signs[r] * s.grid[r][cols[r]]
	}

	return median(estimates), nil
}

// DotProduct estimates the inner product (join size) of the two streams
// behind s and other as the median over rows of the rows' dot products.
// Exactly symmetric: s.DotProduct(other) == other.DotProduct(s).
//
// Returns ErrNilSketch for a nil argument and ErrDimensionMismatch when
// depth or width differ; both are detected before any row is read.
func (s *Sketch) DotProduct(other *Sketch) (int64, error) {
	if other == nil {
		return 0, ErrNilSketch
	}
	if s.depth != other.depth || s.width != other.width {
		return 0, ErrDimensionMismatch
	}

	sums := make([]int64, s.depth)
	for r := 0; r < s.depth; r++ {
		var sum int64
		row, otherRow := s.grid[r], other.grid[r]
		for c := 0; c < s.width; c++ {
			sum += row[c] * otherRow[c]
		}
		sums[r] = sum
	}

	return median(sums), nil
}

// Grid returns a deep copy of the counter grid. Mutating the copy never
// affects the sketch; Update remains the only write path.
func (s *Sketch) Grid() [][]int64 {
	out := make([][]int64, s.depth)
	for r := range out {
		out[r] = make([]int64, s.width)
		copy(out[r], s.grid[r])
	}

	return out
}

// locate resolves the column and sign of item for every row up front.
func (s *Sketch) locate(item uint64) (cols []int, signs []int64, err error) {
	cols = make([]int, s.depth)
	signs = make([]int64, s.depth)
	for r := 0; r < s.depth; r++ {
		if cols[r], err = s.bin.Hash(item, r); err != nil {
			return nil, nil, err
		}
		if signs[r], err = s.sign.Hash(item, r); err != nil {
			return nil, nil, err
		}
	}

	return cols, signs, nil
}

// median sorts vs in place and returns the middle element, or the mean of
// the two middle elements for even lengths.
func median(vs []int64) int64 {
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	mid := len(vs) / 2
	if len(vs)%2 == 1 {
		return vs[mid]
	}
	lo, hi := vs[mid-1], vs[mid]

	return lo + (hi-lo)/2
}
