package polyhash_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/sketches/polyhash"
	"github.com/katalvlaran/sketches/splitmix"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies parameter validation at construction.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		depth, k int
		err      error
	}{
		{"ZeroDepth", 0, 4, polyhash.ErrBadDepth},
		{"NegativeDepth", -3, 4, polyhash.ErrBadDepth},
		{"DegreeOne", 5, 1, polyhash.ErrBadDegree},
		{"DegreeZero", 5, 0, polyhash.ErrBadDegree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := polyhash.New(tc.depth, tc.k, 1)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %d, 1) error = %v; want %v", tc.depth, tc.k, err, tc.err)
			}
		})
	}
}

// TestNew_Dimensions checks the reported depth and degree.
func TestNew_Dimensions(t *testing.T) {
	f, err := polyhash.New(7, 3, 42)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if f.Depth() != 7 {
		t.Errorf("Depth() = %d; want 7", f.Depth())
	}
	if f.Degree() != 3 {
		t.Errorf("Degree() = %d; want 3", f.Degree())
	}
}

//----------------------------------------------------------------------------//
// Determinism Tests
//----------------------------------------------------------------------------//

// TestEval_Deterministic verifies that identical (seed, depth, k) yield
// bit-identical evaluations, and a different seed yields a different family.
func TestEval_Deterministic(t *testing.T) {
	const (
		depth = 5
		k     = 4
		seed  = 0xFEED
	)
	a, err := polyhash.New(depth, k, seed)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	b, err := polyhash.New(depth, k, seed)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	c, err := polyhash.New(depth, k, seed+1)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	diverged := false
	for r := 0; r < depth; r++ {
		for x := uint64(0); x < 200; x++ {
			va, errA := a.Eval(r, x)
			vb, errB := b.Eval(r, x)
			if errA != nil || errB != nil {
				t.Fatalf("Eval error: %v / %v", errA, errB)
			}
			if va != vb {
				t.Fatalf("same seed diverged at (row=%d, x=%d): %d vs %d", r, x, va, vb)
			}
			vc, _ := c.Eval(r, x)
			if va != vc {
				diverged = true
			}
		}
	}
	if !diverged {
		t.Error("families with different seeds evaluated identically on 1000 points")
	}
}

//----------------------------------------------------------------------------//
// Field Arithmetic Tests
//----------------------------------------------------------------------------//

// TestReduce_FieldClosure checks Reduce(x) == x mod Prime across edge and
// random inputs, and that results always land in [0, Prime).
func TestReduce_FieldClosure(t *testing.T) {
	edge := []uint64{
		0, 1, 2,
		polyhash.Prime - 1, polyhash.Prime, polyhash.Prime + 1,
		2 * polyhash.Prime, 2*polyhash.Prime + 5,
		1 << 62, 1 << 63, ^uint64(0),
	}
	src := splitmix.New(11)
	for i := 0; i < 10000; i++ {
		edge = append(edge, src.Next())
	}
	for _, x := range edge {
		got := polyhash.Reduce(x)
		want := x % polyhash.Prime
		if got != want {
			t.Fatalf("Reduce(%d) = %d; want %d", x, got, want)
		}
		if got >= polyhash.Prime {
			t.Fatalf("Reduce(%d) = %d; outside [0, Prime)", x, got)
		}
	}
}

// TestMulAddMod_MatchesBigInt cross-checks the 128-bit Horner step against
// arbitrary-precision arithmetic on random field elements.
func TestMulAddMod_MatchesBigInt(t *testing.T) {
	prime := new(big.Int).SetUint64(polyhash.Prime)
	src := splitmix.New(1)
	for i := 0; i < 5000; i++ {
		a := src.Next() % polyhash.Prime
		x := src.Next() % polyhash.Prime
		b := src.Next() % polyhash.Prime

		got := polyhash.MulAddModForTest(a, x, b)

		want := new(big.Int).SetUint64(a)
		want.Mul(want, new(big.Int).SetUint64(x))
		want.Add(want, new(big.Int).SetUint64(b))
		want.Mod(want, prime)

		if got != want.Uint64() {
			t.Fatalf("mulAddMod(%d, %d, %d) = %d; want %s", a, x, b, got, want)
		}
	}

	// Worst-case operands: the largest products the field can produce.
	top := polyhash.Prime - 1
	got := polyhash.MulAddModForTest(top, top, top)
	want := new(big.Int).SetUint64(top)
	want.Mul(want, new(big.Int).SetUint64(top))
	want.Add(want, new(big.Int).SetUint64(top))
	want.Mod(want, prime)
	if got != want.Uint64() {
		t.Fatalf("mulAddMod(top, top, top) = %d; want %s", got, want)
	}
}

//----------------------------------------------------------------------------//
// Eval Contract Tests
//----------------------------------------------------------------------------//

// TestEval_RowOutOfRange verifies the row-index contract.
func TestEval_RowOutOfRange(t *testing.T) {
	f, err := polyhash.New(3, 2, 9)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, row := range []int{-1, 3, 100} {
		if _, err = f.Eval(row, 10); !errors.Is(err, polyhash.ErrRowOutOfRange) {
			t.Errorf("Eval(row=%d) error = %v; want ErrRowOutOfRange", row, err)
		}
	}
}

// TestEval_ReducesLargeInputs verifies inputs ≥ Prime hash identically to
// their field reduction.
func TestEval_ReducesLargeInputs(t *testing.T) {
	f, err := polyhash.New(4, 4, 77)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	inputs := []uint64{polyhash.Prime, polyhash.Prime + 13, ^uint64(0)}
	for _, x := range inputs {
		for r := 0; r < 4; r++ {
			raw, errRaw := f.Eval(r, x)
			reduced, errReduced := f.Eval(r, x%polyhash.Prime)
			if errRaw != nil || errReduced != nil {
				t.Fatalf("Eval error: %v / %v", errRaw, errReduced)
			}
			if raw != reduced {
				t.Errorf("Eval(%d, %d) = %d; want %d (reduced input)", r, x, raw, reduced)
			}
		}
	}
}

// TestEval_InField verifies every evaluation lands in [0, Prime).
func TestEval_InField(t *testing.T) {
	f, err := polyhash.New(6, 4, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	src := splitmix.New(5)
	for i := 0; i < 2000; i++ {
		x := src.Next()
		for r := 0; r < 6; r++ {
			v, errEval := f.Eval(r, x)
			if errEval != nil {
				t.Fatalf("Eval error: %v", errEval)
			}
			if v >= polyhash.Prime {
				t.Fatalf("Eval(%d, %d) = %d; outside [0, Prime)", r, x, v)
			}
		}
	}
}
