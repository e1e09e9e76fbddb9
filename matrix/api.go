// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and
//     neutral elements.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: use as a neutral element for inverses and as a verification target.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c).
func CloneMatrix(m Matrix) Matrix {
	// Delegate to polymorphic clone on the concrete implementation.
	return m.Clone()
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(r*c) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call NewDense with the same dimensions.
	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates squareness via the central validator.
func IdentityLike(m Matrix) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}
