// Package polyhash builds k-wise independent hash families as random
// polynomials over the Mersenne-prime field Z_P, P = 2^61 − 1, and
// provides the two specializations linear sketches need: a ±1 sign hash
// and a bucket (bin) hash.
//
// Overview:
//
//   - A Family is depth rows of k field coefficients, drawn once from a
//     seeded splitmix.Source and immutable afterwards. Row r is the
//     random degree-(k−1) polynomial
//     h_r(x) = a0·x^(k−1) + a1·x^(k−2) + … + a_(k−1)  (mod P),
//     evaluated by Horner steps acc ← (acc·x + a_i) mod P.
//   - Independence order is controlled by k: any k distinct inputs hash
//     as if independently uniform. Sign uses k = 4 (4-wise independence,
//     needed for the AGMS variance bound); Bin uses k = 2 (pairwise,
//     enough for bucket assignment).
//   - The leading k−1 coefficients are drawn from [1, P) — a zero
//     leading coefficient would silently lower the polynomial degree and
//     void the independence guarantee. The constant term comes from [0, P).
//   - Reduction exploits the Mersenne structure: x mod P is computed by
//     folding (x & P) + (x >> 61), never by division. Horner steps run
//     through a full 128-bit intermediate (math/bits.Mul64/Add64), so no
//     product of two field elements can overflow before reduction.
//
// When to use:
//
//   - As the hash layer of sketches and samplers that need provable
//     independence (see package agms).
//   - Anywhere a fast, seeded, reproducible integer hash with known
//     statistical guarantees beats an opaque general-purpose hash.
//
// When NOT to use:
//
//   - As a cryptographic or collision-resistant hash. It is neither.
//
// Complexity:
//
//   - New: O(depth·k) draws, one allocation per row.
//   - Eval / Hash: O(k) multiply-add-reduce steps, no allocation.
//   - HashAll: O(depth·k), one result slice.
//
// Errors (sentinel):
//
//   - ErrBadDepth:      depth < 1 at construction.
//   - ErrBadDegree:     k < 2 at construction (independence needs ≥ 2).
//   - ErrBadWidth:      Bin width < 1.
//   - ErrRowOutOfRange: row index ≥ depth on Eval/Hash.
//
// Thread safety:
//
//   - Families, Signs and Bins are immutable after construction and safe
//     for unlimited concurrent readers.
//
// See also:
//
//   - splitmix.Source — the deterministic coefficient source.
//   - agms.Sketch — consumes one Bin and one Sign built from one seed.
package polyhash
