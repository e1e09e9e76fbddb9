// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see linalg.go): operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable upstream.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (> 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements the public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and set numeric policy from opts.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - opts: numeric policy (WithNoValidateNaNInf to relax the finite guard).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Resolve numeric policy once at construction.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 literal.
// Implementation:
//   - Stage 1: validate non-empty, non-ragged rows; else ErrInvalidDimensions.
//   - Stage 2: copy values row by row through Set (numeric policy applies).
//
// Behavior highlights:
//   - Input slices are copied; the result shares no storage with rows.
//
// Inputs:
//   - rows: rectangular slice of slices; rows[i][j] becomes element (i,j).
//   - opts: numeric policy forwarded to the constructor.
//
// Returns:
//   - *Dense: newly allocated matrix with the copied values.
//
// Errors:
//   - ErrInvalidDimensions (empty or ragged input).
//   - ErrNaNInf (non-finite value under the default policy).
//
// Determinism:
//   - Fixed i→j copy order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - The natural way to lift test fixtures and literals into the package.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	// Allocate the target with the caller's numeric policy.
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}

	// Copy values with ragged-row detection.
	var i, j int // loop iterators (deterministic order)
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrInvalidDimensions // ragged input
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err // ErrNaNInf under strict policy
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset.
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange (wrapped with coordinates).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on bad indices; ErrNaNInf when v is non-finite and
// the matrix was built under the strict numeric policy.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	// Numeric policy: reject non-finite values when validation is enabled.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	// Assign value.
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix (policy included).
// Complexity: O(r*c) time and memory for the copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy.
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData, validateNaNInf: m.validateNaNInf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		b.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(fmtSep)
			}
		}
		b.WriteString(fmtRowClose)
	}

	return b.String()
}
