// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel behind matcache:
// row-major float64 matrices, strict validators, and a deterministic
// LU-based inversion routine.
//
// 🚀 What is matcache/matrix?
//
//	The numeric boundary the memo package delegates to.  It offers:
//	  • Dense — a cache-friendly row-major matrix with safe At/Set accessors
//	  • Validators — canonical nil/shape/squareness checks returning sentinels
//	  • LU / Inverse — Doolittle factorization and A⁻¹ via triangular solves
//	  • Mul / AllClose — just enough algebra to verify A·A⁻¹ ≈ I
//
// ✨ Design rules:
//   - No panics on user input — every public entry returns sentinel errors
//     matched via errors.Is (ErrSingular, ErrDimensionMismatch, ...).
//   - Deterministic: fixed loop orders, no pivoting, no randomness; identical
//     inputs always produce bit-identical outputs.
//   - Numeric policy is explicit: NaN/Inf rejection and the singularity
//     tolerance are functional options with documented defaults.
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	inv, err := matrix.Inverse(a, matrix.WithPivotTolerance(1e-12))
//	if errors.Is(err, matrix.ErrSingular) {
//	  // a has no inverse under the configured tolerance
//	}
//
// Performance: LU and Inverse are O(n³) time, O(n²) space; accessors are O(1).
package matrix
