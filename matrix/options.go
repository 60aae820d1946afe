// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the text renderer. This file defines:
//   - RenderOption / RenderOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherRenderOptions helper (internal) that applies them over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCellWidth is the fixed column width every rendered cell is
	// right-aligned in. Wider values overflow the column instead of being cut.
	DefaultCellWidth = 8

	// DefaultPrecision is the number of significant digits used for
	// floating-point cells (%g style).
	DefaultPrecision = 6
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCellWidthInvalid = "matrix: WithCellWidth: width must be >= 1"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 1"
)

// RenderOption mutates internal render options. Safe to apply repeatedly.
type RenderOption func(*RenderOptions)

// RenderOptions stores the effective renderer configuration after applying
// RenderOption setters. Fields are unexported; public entry points accept
// `...RenderOption`.
type RenderOptions struct {
	cellWidth int // >= 1; DefaultCellWidth
	precision int // >= 1; DefaultPrecision
}

// WithCellWidth sets the fixed column width. Panics when width < 1.
func WithCellWidth(width int) RenderOption {
	if width < 1 {
		panic(panicCellWidthInvalid)
	}

	return func(o *RenderOptions) { o.cellWidth = width }
}

// WithPrecision sets the significant digits used for floating-point cells.
// Integer cells ignore it. Panics when precision < 1.
func WithPrecision(precision int) RenderOption {
	if precision < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *RenderOptions) { o.precision = precision }
}

// gatherRenderOptions applies opts over the documented defaults.
// nil options are skipped.
func gatherRenderOptions(opts ...RenderOption) RenderOptions {
	o := RenderOptions{
		cellWidth: DefaultCellWidth,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
