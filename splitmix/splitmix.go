package splitmix

import "errors"

// ErrInvalidRange indicates IntN was called with an empty range (max ≤ min).
var ErrInvalidRange = errors.New("splitmix: sampling range must satisfy min < max")

// splitmix64 constants (Vigna). gamma is the additive state increment;
// mix1/mix2 are the avalanche multipliers of the finalizer.
const (
	gamma = 0x9e3779b97f4a7c15
	mix1  = 0xbf58476d1ce4e5b9
	mix2  = 0x94d049bb133111eb
)

// Source is a deterministic 64-bit pseudorandom stream.
// The zero value is a valid Source seeded with 0.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed.
// Identical seeds yield bit-identical sequences.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Next returns the next 64-bit value of the sequence.
//
// The state advances by gamma, then the finalizer scrambles the raw
// counter: z ^= z>>30; z *= mix1; z ^= z>>27; z *= mix2; z ^= z>>31.
func (s *Source) Next() uint64 {
	s.state += gamma
	z := s.state
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2

	return z ^ (z >> 31)
}

// IntN returns a uniform value in the half-open interval [min, max).
//
// Rejection sampling removes modulo bias: raw draws below
// (2^64 − range) mod range are discarded before the final reduction,
// so every residue class is equally likely.
//
// Returns ErrInvalidRange if max ≤ min.
func (s *Source) IntN(min, max uint64) (uint64, error) {
	if max <= min {
		return 0, ErrInvalidRange
	}
	span := max - min
	// (2^64 − span) mod span, computed in uint64 wraparound arithmetic.
	threshold := -span % span
	for {
		raw := s.Next()
		if raw >= threshold {
			return min + raw%span, nil
		}
	}
}
