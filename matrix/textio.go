// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define the textual boundary of Square: the order in which values are
//     expected to arrive (ParseFrom) and the grid they are printed as (RenderTo).
//
// Text contract:
//   - Parse consumes exactly n*n whitespace-separated tokens in row-major order.
//   - Render writes n lines of n fields; each field is right-aligned to the
//     configured width (default 8) with no extra delimiter; lines end in "\n".

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	ctxParse  = "ParseFrom"
	ctxRender = "RenderTo"
)

// isFloatKind reports whether T is a floating-point kind.
// Integer division truncates 1/2 to zero; floating division does not.
func isFloatKind[T Number]() bool {
	var one T = 1

	return one/2 != 0
}

// ParseFrom fills the matrix from r, reading n*n tokens row-major.
// MAIN DESCRIPTION:
//   - Staged read: values land in a scratch buffer and are committed only
//     after every token has been scanned.
//
// Behavior highlights:
//   - On any scan failure the matrix keeps its previous contents.
//   - An empty matrix consumes nothing.
//   - When several matrices are parsed from one stream, pass an io.RuneScanner
//     (e.g. *bufio.Reader) so no byte past a token is lost between calls.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrMalformedInput (wrapping the scan error) for missing or invalid tokens.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the staging buffer.
func (m *Square[T]) ParseFrom(r io.Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxParse, err)
	}
	n := m.n
	staged := make([]T, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if _, err := fmt.Fscan(r, &staged[i*n+j]); err != nil {
				return fmt.Errorf("Square.%s(%d,%d): %w: %w", ctxParse, i, j, ErrMalformedInput, err)
			}
		}
	}
	// Commit through the bounds-checked writer.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := m.Set(i, j, staged[i*n+j]); err != nil {
				return matrixErrorf(ctxParse, err)
			}
		}
	}

	return nil
}

// FormatElement renders a single value without padding.
// Integer kinds print in decimal; floating kinds print with the resolved
// Precision significant digits (%g style, trailing zeros trimmed).
// Complexity: O(1).
func FormatElement[T Number](v T, opts ...Option) string {
	return formatElement(v, gatherOptions(opts...))
}

// formatElement formats v with already resolved options.
func formatElement[T Number](v T, o Options) string {
	if isFloatKind[T]() {
		return strconv.FormatFloat(float64(v), 'g', o.precision, 64)
	}

	return fmt.Sprint(v)
}

// RenderTo writes the matrix as an aligned grid.
// MAIN DESCRIPTION:
//   - One line per row; every field right-aligned to the field width.
//
// Behavior highlights:
//   - Fields are FormatElement output; wider values overflow the width, no
//     delimiter is added.
//   - An empty or nil matrix writes nothing.
//
// Errors:
//   - Write errors from w, wrapped with the row being written.
//
// Complexity:
//   - Time O(n²); one buffered line per row.
func (m *Square[T]) RenderTo(w io.Writer, opts ...Option) error {
	o := gatherOptions(opts...)
	n := m.Dim()

	var line strings.Builder
	var i, j int
	var v T
	for i = 0; i < n; i++ {
		line.Reset()
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // in range by construction
			fmt.Fprintf(&line, "%*s", o.fieldWidth, formatElement(v, o))
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("Square.%s: row %d: %w", ctxRender, i, err)
		}
	}

	return nil
}
