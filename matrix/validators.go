// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/dimension/index checks here.
//  - Return wrapped sentinel errors so call sites can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → SameDim).

package matrix

import (
	"fmt"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Number](m *Square[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBinaryNotNil – Composite: NotNil(a) → NotNil(b).
// Complexity: O(1).
func ValidateBinaryNotNil[T Number](a, b *Square[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinaryNotNil", err)
	}

	return nil
}

// ValidateSameDim ensures a and b have equal dimension.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameDim[T Number](a, b *Square[T]) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameDim(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameDim – Composite: NotNil(a) → NotNil(b) → SameDim.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameDim[T Number](a, b *Square[T]) error {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameDim", err)
	}
	if err := ValidateSameDim(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameDim", err)
	}

	return nil
}

// ValidateIndex checks 0 ≤ idx < n; used to pre-check both indices of a swap
// before any element moves.
// Complexity: O(1).
func ValidateIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d) with dimension %d", idx, n), ErrIndexOutOfRange)
	}

	return nil
}
