// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation MUST return (or wrap) these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered conditions;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep
// once a caller prints them. Operations wrap with method context via
// squareErrorf / matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimension -> index -> input format.

var (
	// ErrInvalidDimension is returned when a matrix is constructed with a
	// non-positive explicit size or from a ragged (non-square) row set.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrIndexOutOfRange indicates that a row or column index is outside [0, n).
	// Public accessors (At/Set/Swap*) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that the operands of Add/Mul differ in dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Square was passed as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMalformedInput signals that ParseFrom could not read n*n scalar tokens.
	ErrMalformedInput = errors.New("matrix: malformed input")
)
