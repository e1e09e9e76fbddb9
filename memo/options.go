// SPDX-License-Identifier: MIT

// Package memo: functional configuration for the resolver.
// This file defines:
//   - InverterFunc, the pluggable inversion capability,
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals mirror the matrix package: deterministic behavior, unexported
// option state, panics reserved for programmer errors in constructors.

package memo

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/matcache/matrix"
)

// InverterFunc is the external inversion capability consumed by the resolver:
// given a matrix and inversion options it returns a freshly allocated inverse
// or an error (non-square, singular, nil input).
type InverterFunc func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger   = "memo: WithLogger: logger must be non-nil"
	panicNilInverter = "memo: WithInverter: fn must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective resolver configuration after applying Option
// setters. Fields are unexported; public entry points accept `...Option` and
// resolve them via gatherOptions.
type Options struct {
	logger   *log.Logger     // notice sink for advisory hit/miss messages
	inverter InverterFunc    // inversion capability; defaults to matrix.Inverse
	invOpts  []matrix.Option // pass-through options for the capability
}

// ---------- Constructors (WithX) ----------

// WithLogger directs the advisory cache-hit / computed notices to logger.
// Inputs: logger — non-nil structured logger.
// Errors: panics with a stable message when logger is nil.
// Complexity: O(1).
//
// AI-Hints:
//   - Pass log.New(io.Discard) to silence notices in benchmarks and tests.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// WithInverter swaps the inversion capability used on cache misses.
// The default is matrix.Inverse; tests inject counting or failing variants
// to observe resolution behavior without touching the holder.
// Errors: panics with a stable message when fn is nil.
// Complexity: O(1).
func WithInverter(fn InverterFunc) Option {
	if fn == nil {
		panic(panicNilInverter)
	}

	return func(o *Options) { o.inverter = fn }
}

// WithInverseOptions sets the options forwarded to the inversion capability
// on a cache miss (for example matrix.WithPivotTolerance). Successive calls
// replace, not append — the last writer wins, matching every other option.
// Complexity: O(1); the slice is referenced, not copied.
func WithInverseOptions(opts ...matrix.Option) Option {
	return func(o *Options) { o.invOpts = opts }
}

// ---------- Resolution ----------

// gatherOptions applies user-provided Option setters on top of defaults.
// Defaults: log.Default() for notices, matrix.Inverse as the capability,
// no extra inversion options.
// Determinism: stable for a given sequence of setters.
// Complexity: Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:   log.Default(),
		inverter: matrix.Inverse,
		invOpts:  nil,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
