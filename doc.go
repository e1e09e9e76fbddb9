// Package matcache is a small, deterministic "cached derived value"
// library: a holder of a base matrix plus its lazily computed,
// invalidate-on-write inverse.
//
// 🚀 What is matcache?
//
//	A memoized matrix inverse, split into two per-concern packages:
//		• memo   — Holder (base + cached inverse) and the read-through
//		  resolver Inverse: check the cache, compute on miss, store, return
//		• matrix — the dense numeric boundary: row-major Dense storage,
//		  strict validators, and LU-based inversion with sentinel errors
//
// ✨ Why choose matcache?
//
//   - Correct by construction — replacing the base clears the cached
//     inverse in the same call, so a stale entry can never be observed
//   - Failure-clean — a failed inversion stores nothing; the next
//     resolution retries instead of replaying a cached error
//   - Deterministic — fixed loop orders, no pivoting, no randomness;
//     identical inputs always yield identical results
//   - Observable — resolutions log advisory "computed" / "reused" notices
//     through a structured logger, never as control signals
//
// Quick example:
//
//	base, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	h := memo.NewHolder(base)
//	inv, err := memo.Inverse(h)   // fresh compute: [[0.5,0],[0,0.5]]
//	inv, err = memo.Inverse(h)    // cache hit: same object, no recompute
//	h.SetBase(other)              // invalidates the cache
//
// The holder is intentionally not safe for concurrent use; wrap every
// operation in one mutex if you need to share it across goroutines.
//
// A runnable demonstration lives in cmd/matcache.
//
//	go get github.com/katalvlaran/matcache
package matcache
