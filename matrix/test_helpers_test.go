// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows lifts a rectangular literal into a *Dense or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustIdentity returns an n×n identity matrix or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j)=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// CompareExact asserts m equals the reference rows element-by-element.
// Exact float comparison is intentional: fixtures use representable values.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() || len(want[0]) != m.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			len(want), len(want[0]), m.Rows(), m.Cols())
	}
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("element [%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}
