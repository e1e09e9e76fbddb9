// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface.
// This file intentionally contains ONLY the interface; the concrete Dense
// implementation lives in dense.go, errors in errors.go, options in
// options.go per the package conventions.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// All implementations must keep accessors O(1) except Clone (O(r*c)) and
// must return sentinel errors instead of panicking on bad indices.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNaNInf when v violates
	// the numeric policy of the implementation.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
