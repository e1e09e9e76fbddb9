// SPDX-License-Identifier: MIT

// Package memo - the resolver: the single read path that produces the
// inverse, preferring the cache.

package memo

import (
	"github.com/katalvlaran/matcache/matrix"
)

// Notice messages distinguishing the two resolution outcomes. Advisory only;
// kept as constants so logs stay grep-able.
const (
	noticeReused   = "reused cached inverse"
	noticeComputed = "computed fresh inverse"
)

// Inverse resolves the inverse of h's base matrix through the cache.
// Implementation:
//   - Stage 1: guard the holder; resolve options.
//   - Stage 2: cache hit — return the stored inverse as-is (same object,
//     no copy) and emit the "reused" notice.
//   - Stage 3: cache miss — invoke the inversion capability with the current
//     base and the configured inversion options, store the result via
//     SetDerived, emit the "computed" notice, return it.
//
// Behavior highlights:
//   - Freshness is structural, not temporal: correctness relies entirely on
//     SetBase having cleared the cache, never on timestamps or versions.
//   - On capability failure nothing is stored — the cache stays absent, so a
//     later call retries the computation instead of caching the failure.
//     Retry itself is the caller's responsibility.
//
// Inputs:
//   - h: the holder to resolve against (non-nil).
//   - opts: WithLogger / WithInverter / WithInverseOptions.
//
// Returns:
//   - matrix.Matrix: the cached or freshly computed inverse.
//
// Errors:
//   - ErrNilHolder when h is nil.
//   - Capability errors propagated unchanged: matrix.ErrNilMatrix,
//     matrix.ErrDimensionMismatch (non-square), matrix.ErrSingular.
//
// Determinism:
//   - Two calls without an intervening SetBase return the identical object;
//     the capability runs at most once between invalidations.
//
// Complexity:
//   - Hit: O(1). Miss: cost of the capability (O(n³) for matrix.Inverse).
//
// AI-Hints:
//   - Inject a counting InverterFunc via WithInverter to assert call counts
//     in tests without instrumenting the holder.
func Inverse(h *Holder, opts ...Option) (matrix.Matrix, error) {
	// Guard: the holder must exist; its fields are otherwise total.
	if h == nil {
		return nil, ErrNilHolder
	}
	o := gatherOptions(opts...)

	// Cache hit: return the stored value directly.
	if d, ok := h.Derived(); ok {
		o.logger.Info(noticeReused, "rows", d.Rows(), "cols", d.Cols())

		return d, nil
	}

	// Cache miss: compute through the capability boundary.
	inv, err := o.inverter(h.Base(), o.invOpts...)
	if err != nil {
		// Propagate unchanged; the cache stays absent and retry-friendly.
		return nil, err
	}

	// Store, announce, return.
	h.SetDerived(inv)
	o.logger.Info(noticeComputed, "rows", inv.Rows(), "cols", inv.Cols())

	return inv, nil
}
