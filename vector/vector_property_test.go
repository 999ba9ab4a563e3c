package vector_test

import (
	"testing"

	"github.com/katalvlaran/newton/vector"
	"pgregory.net/rapid"
)

func genVector(n int) *rapid.Generator[vector.Vector] {
	return rapid.Custom(func(t *rapid.T) vector.Vector {
		comps := rapid.SliceOfN(rapid.Float64Range(-1e6, 1e6), n, n).Draw(t, "components")
		return vector.New(comps...)
	})
}

// TestPropertyAddCommutative checks a+b == b+a for random same-dimension pairs.
func TestPropertyAddCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "dim")
		a := genVector(n).Draw(t, "a")
		b := genVector(n).Draw(t, "b")

		ab, err := vector.Add(a, b)
		if err != nil {
			t.Fatal(err)
		}
		ba, err := vector.Add(b, a)
		if err != nil {
			t.Fatal(err)
		}
		if !vector.Equal(ab, ba) {
			t.Fatalf("Add not commutative: %v vs %v", ab, ba)
		}
	})
}

// TestPropertyCompareTotalOrder checks Compare is a consistent total order
// (reflexive, antisymmetric in sign) across random pairs of finite vectors.
func TestPropertyCompareTotalOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "dim")
		a := genVector(n).Draw(t, "a")
		b := genVector(n).Draw(t, "b")

		cab := vector.Compare(a, b)
		cba := vector.Compare(b, a)
		if cab != -cba {
			t.Fatalf("Compare not antisymmetric: Compare(a,b)=%d Compare(b,a)=%d", cab, cba)
		}
		if vector.Compare(a, a) != 0 {
			t.Fatalf("Compare not reflexive")
		}
	})
}

// TestPropertyNormalizeUnitNorm checks that normalizing any vector whose
// norm is at least 1e-6 yields a unit vector.
func TestPropertyNormalizeUnitNorm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "dim")
		v := genVector(n).Draw(t, "v")
		if v.Norm() < 1e-6 {
			return
		}
		u, err := v.Normalize()
		if err != nil {
			t.Fatal(err)
		}
		if diff := u.Norm() - 1.0; diff > 1e-8 || diff < -1e-8 {
			t.Fatalf("normalized vector has norm %v, want ~1", u.Norm())
		}
	})
}

// TestPropertyDeterministicDot checks Dot is bitwise-identical across repeat
// calls on the same inputs, the determinism contract the whole engine relies on.
func TestPropertyDeterministicDot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 16).Draw(t, "dim")
		a := genVector(n).Draw(t, "a")
		b := genVector(n).Draw(t, "b")

		d1, err1 := vector.Dot(a, b)
		d2, err2 := vector.Dot(a, b)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected error: %v %v", err1, err2)
		}
		if d1 != d2 {
			t.Fatalf("Dot not deterministic: %v vs %v", d1, d2)
		}
	})
}
