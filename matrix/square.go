// SPDX-License-Identifier: MIT

// Package matrix - Square storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Route every cell access through indexOf so the bounds check lives in one place.
//   - Keep value semantics: every constructor and copy allocates independent storage.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set: O(1); Clone/Assign/ToRows: O(n²).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"          // method tag used in error wrappers
	ctxSet    = "Set"         // method tag used in error wrappers
	ctxUpdate = "Update"      // method tag used in error wrappers
	ctxRows   = "NewFromRows" // ctor tag
	ctxNew    = "New"         // ctor tag
	ctxAssign = "Assign"      // method tag used in error wrappers
)

// squareErrorf wraps an error with a uniform Square context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrIndexOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func squareErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Square.%s(%d,%d): %w", method, row, col, err)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Square[int])(nil)

// New creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict dimension validation.
//
// Implementation:
//   - Stage 1: validate n > 0 and that n*n fits in an int; else ErrInvalidDimension.
//   - Stage 2: allocate a zero-filled buffer of n*n elements.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Storage is always zero-initialized; no cell is ever read uninitialized.
//
// Errors:
//   - ErrInvalidDimension when n <= 0 or n*n overflows int.
//
// Complexity:
//   - Time O(n²), Space O(n²).
//
// Notes:
//   - Use NewEmpty (or the zero value) for the inert 0×0 matrix.
func New[T Number](n int) (*Square[T], error) {
	if n <= 0 || n > math.MaxInt/n {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, n, ErrInvalidDimension)
	}
	// make() zero-fills deterministically.
	return &Square[T]{n: n, data: make([]T, n*n)}, nil
}

// NewEmpty returns the inert 0×0 matrix. It is a valid value, not an error state.
// Complexity: O(1).
func NewEmpty[T Number]() *Square[T] { return &Square[T]{} }

// NewFromRows builds a matrix from nested rows; dimension = len(rows).
// MAIN DESCRIPTION:
//   - Copy a literal/collection of rows into fresh storage.
//
// Implementation:
//   - Stage 1: len(rows)==0 → empty matrix (accepted).
//   - Stage 2: every row must have exactly len(rows) elements.
//   - Stage 3: copy row-by-row into the flat buffer.
//
// Behavior highlights:
//   - The caller's slices are never retained; later edits to rows do not leak in.
//
// Errors:
//   - ErrInvalidDimension for ragged or non-square input.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows[T Number](rows [][]T) (*Square[T], error) {
	n := len(rows)
	if n == 0 {
		return NewEmpty[T](), nil
	}

	m := &Square[T]{n: n, data: make([]T, n*n)}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxRows, i, len(rows[i]), n, ErrInvalidDimension)
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// NewIdentity returns the n×n identity (1 on the main diagonal, 0 elsewhere).
// Errors: ErrInvalidDimension when n <= 0.
// Complexity: O(n²).
func NewIdentity[T Number](n int) (*Square[T], error) {
	m, err := New[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = m.Set(i, i, 1); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Dim returns the dimension n. A nil matrix reports 0.
// Complexity: O(1).
func (m *Square[T]) Dim() int {
	if m == nil {
		return 0
	}

	return m.n
}

// IsEmpty reports whether the matrix has dimension 0.
func (m *Square[T]) IsEmpty() bool { return m.Dim() == 0 }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - The single bounds-checked gateway into data; every cell read or write
//     in this package goes through it.
//
// Implementation:
//   - Stage 1: reject a nil receiver.
//   - Stage 2: validate 0 ≤ row < n and 0 ≤ col < n.
//   - Stage 3: compute row*n + col.
//
// Returns:
//   - (offset, nil) on success; (0, sentinel) otherwise. Callers wrap with context.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Square[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.n {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Square[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, squareErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// The matrix is untouched when an error is returned.
// Complexity: O(1).
func (m *Square[T]) Set(row, col int, v T) error { return m.store(ctxSet, row, col, v) }

// UpdateElement is Set under the name the demo program uses.
// Same bounds contract: ErrIndexOutOfRange, no mutation on failure.
func (m *Square[T]) UpdateElement(row, col int, v T) error { return m.store(ctxUpdate, row, col, v) }

// store is the shared body of Set and UpdateElement; tag names the caller in errors.
func (m *Square[T]) store(tag string, row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return squareErrorf(tag, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same dimension).
// MAIN DESCRIPTION:
//   - Produce an independent Square with identical contents.
//
// Behavior highlights:
//   - Independence: mutations of either value never affect the other.
//   - Cloning a nil or empty matrix yields a fresh empty matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square[T]) Clone() *Square[T] {
	if m.IsEmpty() {
		return NewEmpty[T]()
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Square[T]{n: m.n, data: cp}
}

// Assign replaces the entire state of m with a deep copy of src.
// MAIN DESCRIPTION:
//   - Value assignment: previously held storage is released, never reused
//     in a way that could alias src.
//
// Behavior highlights:
//   - Self-assignment is a no-op.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (m *Square[T]) Assign(src *Square[T]) error {
	if err := ValidateBinaryNotNil(m, src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	cp := src.Clone()
	m.n, m.data = cp.n, cp.data

	return nil
}

// ToRows returns the contents as freshly allocated nested rows.
// An empty matrix yields an empty (non-nil) slice.
// Complexity: O(n²).
func (m *Square[T]) ToRows() [][]T {
	n := m.Dim()
	out := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]T, n)
		for j = 0; j < n; j++ {
			out[i][j], _ = m.At(i, j) // indices are in range by construction
		}
	}

	return out
}

// Equal reports whether m and other have the same dimension and identical
// elements. Two nil or empty matrices are equal.
// Complexity: O(n²).
func (m *Square[T]) Equal(other *Square[T]) bool {
	n := m.Dim()
	if n != other.Dim() {
		return false
	}
	var i, j int
	var a, b T
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a, _ = m.At(i, j)
			b, _ = other.At(i, j)
			if a != b {
				return false
			}
		}
	}

	return true
}

// String renders the matrix with the default text options (see RenderTo).
// Intended for logs and debugging.
func (m *Square[T]) String() string {
	var b strings.Builder
	_ = m.RenderTo(&b) // strings.Builder never fails

	return b.String()
}
