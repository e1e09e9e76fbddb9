// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive (or that row data is ragged in NewDenseFromRows).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a square requirement violated.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, ingestion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a pivot falls under the configured
	// tolerance during inversion/LU in a non-pivoting scheme (intentional
	// for determinism and simplicity).
	ErrSingular = errors.New("matrix: singular matrix")
)
