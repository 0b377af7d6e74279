package polyhash

// Bin is a family of bucket hashes with pairwise independence: each row
// maps an item to a column in [0, width).
type Bin struct {
	family *Family
	width  int
}

// NewBin builds depth bucket hashes over width buckets from seed using
// independence order BinDegree.
//
// Returns ErrBadDepth if depth < 1 and ErrBadWidth if width < 1.
func NewBin(depth, width int, seed uint64) (*Bin, error) {
	if width < 1 {
		return nil, ErrBadWidth
	}
	f, err := New(depth, BinDegree, seed)
	if err != nil {
		return nil, err
	}

	return &Bin{family: f, width: width}, nil
}

// Depth returns the number of bucket hashes.
func (b *Bin) Depth() int { return b.family.depth }

// Width returns the number of buckets per row.
func (b *Bin) Width() int { return b.width }

// Hash maps x under row to a bucket index in [0, width).
// Pure function of (x, row, seed, width).
//
// Returns ErrRowOutOfRange if row ≥ depth.
func (b *Bin) Hash(x uint64, row int) (int, error) {
	v, err := b.family.Eval(row, x)
	if err != nil {
		return 0, err
	}

	return int(v % uint64(b.width)), nil
}
