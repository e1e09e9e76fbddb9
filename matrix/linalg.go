// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the inversion boundary.
//
// Purpose:
//   - Declare the canonical kernels (Mul, LU, Inverse, AllClose) with strict
//     fail-fast validation and uniform error wrapping.
//   - Keep every loop order fixed so identical inputs yield identical outputs.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels,
//     wrapped once with matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opLU       = "LU"
	opInverse  = "Inverse"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     skip zeros; otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat-slice fast path.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order,
//     rejecting pivots whose magnitude falls under the configured tolerance.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: numeric policy; WithPivotTolerance controls the singularity bound.
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (|U[i,i]| ≤ tol).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L; no pivoting by design.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Numerical stability requires pivoting upstream; this kernel trades
//     stability for bit-for-bit reproducibility.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Resolve the numeric policy once.
	o := gatherOptions(opts...)

	// Allocate L and U.
	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular).
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense.
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	if useFast {
		// Fast-path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i.
			for j = i; j < n; j++ {
				sum = ZeroSum
				baseI = i * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseI+k] * Uraw.data[k*n+j]
				}
				Uraw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard (deterministic singularity detection).
			pivot = Uraw.data[i*n+i]
			if math.Abs(pivot) <= o.pivotTol {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseJ+k] * Uraw.data[k*n+i]
				}
				Lraw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return Lraw, Uraw, nil
	}

	// Fallback: generic interface version.
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = Lraw.At(i, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				u, err = Uraw.At(k, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = Uraw.Set(i, j, a-sum); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}

		// Pivot guard (generic path).
		pivot, err = Uraw.At(i, i)
		if err != nil {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if math.Abs(pivot) <= o.pivotTol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = Lraw.At(j, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				u, err = Uraw.At(k, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, i, err))
				}
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if err = Lraw.Set(j, i, (a-sum)/pivot); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return Lraw, Uraw, nil
}

// Inverse computes A^{-1} using Doolittle LU factorization without pivoting.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m). Factorize via LU(m) → L (unit lower),
//     U (upper). Allocate inv(n×n) and workspace vectors y, x of length n.
//   - Stage 2: For each canonical basis column e_col: forward solve L*y=e_col
//     (top-down), backward solve U*x=y (bottom-up, pivot guard), write x into
//     column col of the result.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - Input m is read-only; all outputs are freshly allocated.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: numeric policy; WithPivotTolerance controls the singularity bound.
//
// Returns:
//   - Matrix: Dense(n×n) containing A^{-1}.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validation).
//   - ErrSingular (pivot under tolerance during LU or back substitution).
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - If you only need A^{-1}*b, solve via LU once and apply triangular
//     solves; forming A^{-1} is typically a last resort.
//
// AI-Hints:
//   - Keep inputs as *Dense to hit the fast path inside LU and the solves.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	// Resolve the numeric policy once; the same tolerance feeds LU.
	o := gatherOptions(opts...)

	// LU decomposition (Doolittle).
	Lmat, Umat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays.
	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// Fast-path: detect *Dense for L and U (always true with our LU, but the
	// generic path is kept for interface-provided factors).
	Ld, okL := Lmat.(*Dense)
	Ud, okU := Umat.(*Dense)
	if okL && okU {
		var baseUi, baseLi int // row-major strides
		for col = 0; col < n; col++ {
			// Forward substitution: L*y = e_col.
			for i = 0; i < n; i++ {
				sum = ZeroSum
				baseLi = i * n
				for k = 0; k < i; k++ {
					sum += Ld.data[baseLi+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward substitution: U*x = y.
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				baseUi = i * n
				for k = i + 1; k < n; k++ {
					sum += Ud.data[baseUi+k] * x[k]
				}
				pivot = Ud.data[baseUi+i]
				if math.Abs(pivot) <= o.pivotTol {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			// Write x into column col of inv.
			for i = 0; i < n; i++ {
				invDense.data[i*n+col] = x[i]
			}
		}

		return invDense, nil
	}

	// Fallback: generic interface version.
	var v float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				v, err = Lmat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				v, err = Umat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			pivot, err = Umat.At(i, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if math.Abs(pivot) <= o.pivotTol {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of inv.
		for i = 0; i < n; i++ {
			if err = invDense.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return invDense, nil
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ eps for every element.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); resolve eps via options.
//   - Stage 2: scan in fixed i→j order with early false on first violation.
//
// Inputs:
//   - a, b: conformable matrices (same r×c).
//   - opts: WithEpsilon overrides DefaultEpsilon.
//
// Returns:
//   - bool: true when every element pair is within eps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - The canonical way for tests and demos to verify A·A⁻¹ ≈ I.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	o := gatherOptions(opts...)

	rows, cols := a.Rows(), a.Cols()
	var (
		i, j   int // loop iterators (deterministic order)
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if math.Abs(av-bv) > o.eps {
				return false, nil // first violation wins (fast negative path)
			}
		}
	}

	return true, nil
}
