// SPDX-License-Identifier: MIT
// Package memo: sentinel error set.
// Resolution failures coming from the inversion capability (for example
// matrix.ErrSingular or matrix.ErrDimensionMismatch) are propagated verbatim
// and are NOT re-declared here; tests match them via errors.Is against the
// originating package.

package memo

import "errors"

// ErrNilHolder indicates that a nil *Holder was passed to the resolver.
var ErrNilHolder = errors.New("memo: nil holder")
