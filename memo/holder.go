// SPDX-License-Identifier: MIT

// Package memo - Holder: the mutable (base, derived) pair with
// invalidate-on-write discipline.
//
// Purpose:
//   - Encapsulate the base matrix and its cached inverse behind setters that
//     keep the cache-consistency invariant intact.
//   - Perform no computation here: the Holder is a pure state container; all
//     derivation lives in the resolver (resolve.go).

package memo

import "github.com/katalvlaran/matcache/matrix"

// Holder owns a base matrix and, when present, its cached inverse.
//
// Invariant: whenever derived != nil it equals the inverse of the base that
// was current at the moment derived was stored. SetBase re-establishes the
// invariant trivially by clearing derived in the same call.
//
// A nil derived field is the "not yet computed" marker; it is never exposed
// directly — Derived returns an explicit presence flag instead, so callers
// never compare interface values against nil.
//
// Holder is not safe for concurrent use (see the package documentation).
type Holder struct {
	base    matrix.Matrix // current source matrix (may be nil until SetBase)
	derived matrix.Matrix // cached inverse of base, nil when absent
}

// NewHolder creates a Holder around the given base with no cached inverse.
// A nil base is a legal placeholder: resolution against it surfaces
// matrix.ErrNilMatrix from the inversion capability.
// Complexity: O(1); the base is referenced, not copied.
func NewHolder(base matrix.Matrix) *Holder {
	return &Holder{base: base}
}

// SetBase replaces the base matrix and unconditionally discards the cached
// inverse. The write and the invalidation happen in one method body, so in
// the package's single-threaded model no observer can see the new base next
// to the old inverse.
// Complexity: O(1).
//
// AI-Hints:
//   - Always replace wholesale; mutating the stored matrix in place would
//     bypass invalidation and break the cache-consistency invariant.
func (h *Holder) SetBase(m matrix.Matrix) {
	h.base = m
	h.derived = nil // invalidate: the prior inverse no longer matches
}

// Base returns the current base matrix. No side effects.
// Complexity: O(1).
func (h *Holder) Base() matrix.Matrix {
	return h.base
}

// SetDerived replaces the cached inverse unconditionally; nil is the explicit
// absent marker. No cross-check against the base is performed — the caller
// (the resolver) is trusted to store only the inverse of the current base,
// immediately after computing it.
// Complexity: O(1).
func (h *Holder) SetDerived(m matrix.Matrix) {
	h.derived = m
}

// Derived returns the cached inverse and whether it is present.
// No side effects. Complexity: O(1).
func (h *Holder) Derived() (matrix.Matrix, bool) {
	return h.derived, h.derived != nil
}
