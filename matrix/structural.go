// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Diagonal reductions and in-place row/column permutation on Square.
//
// Diagonal contracts (two, deliberately distinct):
//   - MainDiagonalSum / SecondaryDiagonalSum report each diagonal on its own,
//     with no correction.
//   - DiagonalSum reports one combined figure; for odd n the centre cell lies
//     on both diagonals and is counted once.
//
// Swaps are all-or-nothing: both indices are validated before any element moves.

package matrix

import "fmt"

const (
	ctxSwapRows = "SwapRows"
	ctxSwapCols = "SwapColumns"
)

// MainDiagonalSum returns Σ m[i][i] for i in [0, n). Empty → zero.
// Complexity: O(n).
func (m *Square[T]) MainDiagonalSum() T {
	var sum, v T
	n := m.Dim()
	for i := 0; i < n; i++ {
		v, _ = m.At(i, i) // in range by construction
		sum += v
	}

	return sum
}

// SecondaryDiagonalSum returns Σ m[i][n-1-i] for i in [0, n). Empty → zero.
// Complexity: O(n).
func (m *Square[T]) SecondaryDiagonalSum() T {
	var sum, v T
	n := m.Dim()
	for i := 0; i < n; i++ {
		v, _ = m.At(i, n-1-i)
		sum += v
	}

	return sum
}

// DiagonalSum returns main + secondary diagonal sums as a single figure.
// When n is odd the two diagonals meet at (n/2, n/2); that cell is subtracted
// once so it contributes exactly one time.
//
// Example: [[1,2,3],[4,5,6],[7,8,9]] → 15 + 15 - 5 = 25.
//
// Complexity: O(n).
func (m *Square[T]) DiagonalSum() T {
	sum := m.MainDiagonalSum() + m.SecondaryDiagonalSum()
	n := m.Dim()
	if n%2 == 1 {
		mid := n / 2
		centre, _ := m.At(mid, mid)
		sum -= centre
	}

	return sum
}

// SwapRows exchanges rows r1 and r2 in place.
// MAIN DESCRIPTION:
//   - Row permutation with a bounds pre-check on both indices.
//
// Behavior highlights:
//   - r1 == r2 is a harmless no-op.
//   - On error the matrix is unchanged (no half-applied swap).
//
// Errors:
//   - ErrIndexOutOfRange when either index is outside [0, n).
//
// Complexity:
//   - Time O(n), Space O(1).
func (m *Square[T]) SwapRows(r1, r2 int) error {
	if err := m.checkPair(r1, r2); err != nil {
		return fmt.Errorf("Square.%s(%d,%d): %w", ctxSwapRows, r1, r2, err)
	}
	if r1 == r2 {
		return nil
	}

	var a, b T
	var err error
	for j := 0; j < m.n; j++ {
		if a, err = m.At(r1, j); err != nil {
			return err
		}
		if b, err = m.At(r2, j); err != nil {
			return err
		}
		_ = m.Set(r1, j, b) // indices validated above
		_ = m.Set(r2, j, a)
	}

	return nil
}

// SwapColumns exchanges columns c1 and c2 in place.
// Same contract as SwapRows.
// Complexity: O(n).
func (m *Square[T]) SwapColumns(c1, c2 int) error {
	if err := m.checkPair(c1, c2); err != nil {
		return fmt.Errorf("Square.%s(%d,%d): %w", ctxSwapCols, c1, c2, err)
	}
	if c1 == c2 {
		return nil
	}

	var a, b T
	var err error
	for i := 0; i < m.n; i++ {
		if a, err = m.At(i, c1); err != nil {
			return err
		}
		if b, err = m.At(i, c2); err != nil {
			return err
		}
		_ = m.Set(i, c1, b)
		_ = m.Set(i, c2, a)
	}

	return nil
}

// checkPair validates the receiver and both swap indices.
func (m *Square[T]) checkPair(x, y int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateIndex(x, m.n); err != nil {
		return err
	}

	return ValidateIndex(y, m.n)
}
