// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Square values:
// element-wise addition and the standard matrix product. Both perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical binary kernels and their operation tags.
//   - Keep operands immutable: every result is a freshly allocated Square.
//
// Notes:
//   - Kernels read and write cells only through At/Set, so bounds checks stay
//     in indexOf (square.go).

package matrix

import (
	"fmt"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd = "Add"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResult allocates the output of a binary kernel. Two empty operands give
// an empty result; New would reject n == 0.
func newResult[T Number](n int) (*Square[T], error) {
	if n == 0 {
		return NewEmpty[T](), nil
	}

	return New[T](n)
}

// Add computes the element-wise sum C = A + B and returns a fresh Square.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and share a dimension.
//   - Stage 2: Fixed i→j loop; C[i,j] = A[i,j] + B[i,j].
//
// Behavior highlights:
//   - Deterministic loop order; no hidden aliasing; one allocation for the result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (dimension mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add[T Number](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	n := a.n
	res, err := newResult[T](n)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	var i, j int
	var av, bv T
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Mul performs the standard matrix product C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and equal dimension.
//   - Stage 2: Triple loop i→j→k, k innermost; the accumulator starts at the
//     zero value of T for every (i,j) cell.
//
// Behavior highlights:
//   - Accumulation order is fixed, so integer and float results are reproducible.
//   - Operands are never mutated; Mul(A, A) is safe.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (dimension mismatch).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul[T Number](a, b *Square[T]) (*Square[T], error) {
	if err := ValidateBinarySameDim(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res, err := newResult[T](n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k     int
		av, bv, acc T
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			var zero T
			acc = zero
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// Add returns m + other as a new matrix. See the package-level Add.
func (m *Square[T]) Add(other *Square[T]) (*Square[T], error) { return Add(m, other) }

// Mul returns m × other as a new matrix. See the package-level Mul.
func (m *Square[T]) Mul(other *Square[T]) (*Square[T], error) { return Mul(m, other) }
