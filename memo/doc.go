// SPDX-License-Identifier: MIT

// Package memo implements a lazily computed, invalidate-on-write matrix
// inverse: a Holder keeps a base matrix together with its cached inverse,
// and Inverse resolves the inverse through the cache.
//
// 🚀 What is matcache/memo?
//
//	The classic read-through memoization pattern for one derived value:
//	  • Holder — a mutable pair (base, derived) where replacing the base
//	    unconditionally clears the derived value
//	  • Inverse — the single read path: return the cached inverse when
//	    present, otherwise compute, store, and return it
//
// ✨ Guarantees:
//   - Whenever the cached inverse is present, it is the inverse of the base
//     that was current when it was stored; SetBase clears it in the same
//     call, so a stale entry can never be observed.
//   - A failed computation stores nothing — the cache stays absent and the
//     next resolution retries instead of replaying the failure.
//   - Resolution emits advisory "computed" / "reused" notices through a
//     structured logger; they never affect control flow.
//
// ⚠️ Scope:
//   - A Holder is NOT safe for concurrent use. If multiple goroutines need
//     one, guard every operation with a single mutex so that SetBase's
//     replace-and-invalidate pair stays atomic.
//   - Base matrices must be replaced wholesale via SetBase, never mutated
//     in place; in-place writes would bypass invalidation.
//
// ⚙️ Usage:
//
//	h := memo.NewHolder(base)
//	inv, err := memo.Inverse(h)                  // computes and caches
//	inv, err = memo.Inverse(h)                   // cache hit, no recompute
//	h.SetBase(next)                              // cache cleared
//	inv, err = memo.Inverse(h,
//	  memo.WithInverseOptions(matrix.WithPivotTolerance(1e-12)),
//	)
//
// The inversion itself is a pluggable capability (WithInverter) defaulting
// to matrix.Inverse; errors from it (matrix.ErrSingular, ...) propagate to
// the caller unchanged.
package memo
