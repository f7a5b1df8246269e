// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text renderer. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFieldWidth is the minimum width every rendered cell is right-aligned to.
	DefaultFieldWidth = 8

	// DefaultPrecision is the number of significant digits used for floating
	// element kinds (trailing zeros trimmed). Integer kinds ignore it.
	DefaultPrecision = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFieldWidthInvalid = "matrix: WithFieldWidth: width must be >= 1"
	panicPrecisionInvalid  = "matrix: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	fieldWidth int // >= 1; DefaultFieldWidth
	precision  int // >= 0; DefaultPrecision
}

// FieldWidth reports the resolved minimum cell width.
func (o Options) FieldWidth() int { return o.fieldWidth }

// Precision reports the resolved significant-digit count for floating kinds.
func (o Options) Precision() int { return o.precision }

// WithFieldWidth sets the minimum width of each rendered cell.
// Panics when w < 1.
// Complexity: O(1).
func WithFieldWidth(w int) Option {
	if w < 1 {
		panic(panicFieldWidthInvalid)
	}

	return func(o *Options) { o.fieldWidth = w }
}

// WithPrecision sets the significant digits printed for floating element kinds.
// Panics when p < 0.
// Complexity: O(1).
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// NewRenderOptions resolves option setters against documented defaults.
// Last-writer-wins; stable for a given sequence of opts.
func NewRenderOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		fieldWidth: DefaultFieldWidth,
		precision:  DefaultPrecision,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
