// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// ---------- Mul ----------

func TestMulCorrectness(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, c)
}

func TestMulDimensionMismatch(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 2, 3)
	if _, err := matrix.Mul(a, b); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("inner mismatch: want ErrDimensionMismatch, got %v", err)
	}
}

func TestMulFallbackMatchesFastPath(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{2, 0}, {1, 2}})

	fast, err := matrix.Mul(a, b)
	if err != nil {
		t.Fatalf("Mul(fast): %v", err)
	}
	// hide forces the generic interface path in the kernel.
	slow, err := matrix.Mul(hide{a}, b)
	if err != nil {
		t.Fatalf("Mul(fallback): %v", err)
	}

	ok, err := matrix.AllClose(fast, slow, matrix.WithEpsilon(0))
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("fast path and fallback disagree:\n%v\nvs\n%v", fast, slow)
	}
}

// ---------- LU ----------

func TestLUReconstructsInput(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, 1, 1}, {4, 3, 3}, {8, 7, 9}})

	l, u, err := matrix.LU(a)
	if err != nil {
		t.Fatalf("LU: %v", err)
	}
	// L*U must reproduce A.
	lu, err := matrix.Mul(l, u)
	if err != nil {
		t.Fatalf("Mul(L,U): %v", err)
	}
	ok, err := matrix.AllClose(a, lu)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("L*U != A:\nL=%v\nU=%v\nLU=%v", l, u, lu)
	}

	// L must be unit lower triangular, U upper triangular.
	n := a.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		if v := MustAt(t, l, i, i); v != 1.0 {
			t.Fatalf("L[%d,%d]: want 1, got %g", i, i, v)
		}
		for j = i + 1; j < n; j++ {
			if v := MustAt(t, l, i, j); v != 0.0 {
				t.Fatalf("L[%d,%d]: want 0, got %g", i, j, v)
			}
		}
		for j = 0; j < i; j++ {
			if v := MustAt(t, u, i, j); v != 0.0 {
				t.Fatalf("U[%d,%d]: want 0, got %g", i, j, v)
			}
		}
	}
}

func TestLUSingular(t *testing.T) {
	// Second row is a multiple of the first; U[1,1] collapses to exactly 0.
	a := MustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	if _, _, err := matrix.LU(a); !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("rank-deficient input: want ErrSingular, got %v", err)
	}
}

func TestLUNoPivotingIsDocumentedBehavior(t *testing.T) {
	// A zero leading pivot fails even though the matrix is invertible:
	// the scheme trades stability for determinism (no row exchanges).
	a := MustFromRows(t, [][]float64{{0, 1}, {1, 0}})
	if _, _, err := matrix.LU(a); !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("zero leading pivot: want ErrSingular, got %v", err)
	}
}

// ---------- Inverse ----------

func TestInverseDiagonal(t *testing.T) {
	a := MustFromRows(t, [][]float64{{2, 0, 0}, {0, 4, 0}, {0, 0, 8}})

	inv, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	CompareExact(t, [][]float64{{0.5, 0, 0}, {0, 0.25, 0}, {0, 0, 0.125}}, inv)
}

func TestInverseTimesOriginalIsIdentity(t *testing.T) {
	a := MustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	inv, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	prod, err := matrix.Mul(a, inv)
	if err != nil {
		t.Fatalf("Mul(A, A⁻¹): %v", err)
	}
	ok, err := matrix.AllClose(prod, MustIdentity(t, 2))
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("A·A⁻¹ != I:\n%v", prod)
	}
}

func TestInverseDoesNotMutateInput(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	if _, err := matrix.Inverse(a); err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

func TestInverseRejections(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if _, err := matrix.Inverse(nil); !errors.Is(err, matrix.ErrNilMatrix) {
			t.Fatalf("nil input: want ErrNilMatrix, got %v", err)
		}
	})

	t.Run("non-square", func(t *testing.T) {
		if _, err := matrix.Inverse(MustDense(t, 2, 3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
			t.Fatalf("rectangular input: want ErrDimensionMismatch, got %v", err)
		}
	})

	t.Run("singular", func(t *testing.T) {
		a := MustFromRows(t, [][]float64{{1, 2}, {2, 4}})
		if _, err := matrix.Inverse(a); !errors.Is(err, matrix.ErrSingular) {
			t.Fatalf("singular input: want ErrSingular, got %v", err)
		}
	})
}

func TestInversePivotTolerance(t *testing.T) {
	// Well-conditioned under the strict default, singular under a raised bound.
	a := MustFromRows(t, [][]float64{{1e-15, 0}, {0, 1}})

	if _, err := matrix.Inverse(a); err != nil {
		t.Fatalf("default tolerance should accept tiny exact pivot: %v", err)
	}
	_, err := matrix.Inverse(a, matrix.WithPivotTolerance(1e-12))
	if !errors.Is(err, matrix.ErrSingular) {
		t.Fatalf("raised tolerance: want ErrSingular, got %v", err)
	}
}

func TestInverseFallbackMatchesFastPath(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	fast, err := matrix.Inverse(a)
	if err != nil {
		t.Fatalf("Inverse(fast): %v", err)
	}
	slow, err := matrix.Inverse(hide{a})
	if err != nil {
		t.Fatalf("Inverse(fallback): %v", err)
	}
	ok, err := matrix.AllClose(fast, slow, matrix.WithEpsilon(0))
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("fast path and fallback disagree:\n%v\nvs\n%v", fast, slow)
	}
}

// ---------- AllClose ----------

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000000001}})

	ok, err := matrix.AllClose(a, b) // DefaultEpsilon = 1e-9
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatal("values within default eps must compare close")
	}

	ok, err = matrix.AllClose(a, b, matrix.WithEpsilon(1e-12))
	if err != nil {
		t.Fatalf("AllClose(tight eps): %v", err)
	}
	if ok {
		t.Fatal("values outside tightened eps must not compare close")
	}

	if _, err = matrix.AllClose(a, MustDense(t, 3, 3)); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("shape mismatch: want ErrDimensionMismatch, got %v", err)
	}
}
