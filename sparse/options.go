// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for kernel entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package sparse

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCompact controls whether binary/in-place results are compacted
	// (identity-valued entries removed) before being returned.
	// false ⇒ results are only trimmed to nnz (Compress(false)).
	DefaultCompact = false

	// DefaultExplicitZeros controls whether Union-policy merges keep emitted
	// values that equal the identity (e.g. 3 + (-3)).
	// false ⇒ cancellations are dropped at emission time.
	DefaultExplicitZeros = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger = "sparse: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	logger        *zap.Logger // diagnostics sink; never nil after gatherOptions
	compact       bool        // DefaultCompact
	explicitZeros bool        // DefaultExplicitZeros
}

// WithLogger routes kernel diagnostics (densification, cancellation,
// compaction counts) to l at Debug level.
//
// Behavior highlights:
//   - Panics on nil; use zap.NewNop() to silence explicitly.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithCompact requests that results be compacted (Compress(true)) before
// they are returned, restoring canonical minimal-nnz form.
func WithCompact() Option {
	return func(o *Options) { o.compact = true }
}

// WithExplicitZeros keeps identity-valued emissions in Union-policy merges,
// so the result pattern is exactly the union of both operand patterns.
//
// Notes:
//   - Intersection and Dense policies are unaffected.
//   - Combine with a later Compress(true) to observe the cancellation step.
func WithExplicitZeros() Option {
	return func(o *Options) { o.explicitZeros = true }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		logger:        zap.NewNop(),
		compact:       DefaultCompact,
		explicitZeros: DefaultExplicitZeros,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
