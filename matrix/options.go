// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the non-negative bound under which an LU pivot
	// is treated as zero and the input reported singular. Zero keeps the
	// strict "exact zero pivot" policy.
	DefaultPivotTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the tolerance used by AllClose-style comparisons.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the singularity bound used by LU and Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//
// Inputs:
//   - tol: non-negative finite bound; |pivot| ≤ tol ⇒ ErrSingular.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The default (0) only rejects exact zero pivots; raise it to guard
//     against numerically near-singular inputs.
//
// AI-Hints:
//   - 1e-12 is a sensible bound for well-scaled float64 data.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = tol }
}

// WithEpsilon sets the comparison tolerance used by AllClose.
// Inputs: eps — non-negative finite tolerance.
// Errors: panics with a stable message when eps is invalid.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// Affects newly created matrices via constructors; existing matrices keep
// their policy. Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Allows ±Inf/NaN to pass through on newly created matrices; intended only
// for ingesting external data with known placeholders. Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ---------- Resolution ----------

// NewMatrixOptions resolves opts into an immutable Options snapshot.
// Exposed for callers that need to inspect effective defaults; most public
// entry points accept ...Option and call gatherOptions themselves.
// Determinism: stable for a given sequence of opts.
// Complexity: O(k) for k=len(opts).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants (single source of truth).
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Determinism: stable for a given sequence of setters.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
// Kept as a tiny helper so option constructors and Set share one definition.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
