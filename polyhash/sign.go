package polyhash

// Sign is a family of ±1-valued hash functions with 4-wise independence,
// the sign component of AGMS/count-sketch updates.
type Sign struct {
	family *Family
}

// NewSign builds depth sign hashes from seed using independence order
// SignDegree. Returns ErrBadDepth if depth < 1.
func NewSign(depth int, seed uint64) (*Sign, error) {
	f, err := New(depth, SignDegree, seed)
	if err != nil {
		return nil, err
	}

	return &Sign{family: f}, nil
}

// Depth returns the number of sign hashes.
func (s *Sign) Depth() int { return s.family.depth }

// Hash maps x under row to {−1, +1}: bit 0 of the field value decides
// (0 → −1, 1 → +1). Pure function of (x, row, seed).
//
// Returns ErrRowOutOfRange if row ≥ depth.
func (s *Sign) Hash(x uint64, row int) (int64, error) {
	v, err := s.family.Eval(row, x)
	if err != nil {
		return 0, err
	}
	if v&1 == 1 {
		return 1, nil
	}

	return -1, nil
}

// HashAll returns the signs of x under every row, in row order — one
// full sketch-update vector for a single item.
func (s *Sign) HashAll(x uint64) ([]int64, error) {
	out := make([]int64, s.family.depth)
	for r := range out {
		sign, err := s.Hash(x, r)
		if err != nil {
			return nil, err
		}
		out[r] = sign
	}

	return out, nil
}
