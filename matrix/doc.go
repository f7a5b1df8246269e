// SPDX-License-Identifier: MIT

// Package matrix offers a generic square-matrix value type.
//
// The matrix package provides:
//
//   - Square[T], an n×n matrix over any Number element type (integer or
//     floating kinds), stored row-major in storage it owns exclusively.
//   - Bounds-checked access (At, Set, UpdateElement) that returns
//     ErrIndexOutOfRange instead of panicking.
//   - Pure arithmetic (Add, Mul) that always allocates a fresh result.
//   - Diagonal reductions (MainDiagonalSum, SecondaryDiagonalSum and the
//     centre-corrected DiagonalSum) and in-place row/column swaps.
//   - A text contract (ParseFrom, RenderTo) used by the sqmatrix demo.
//
// Copying is explicit: Clone and Assign deep-copy; two Square values never
// share storage.
//
// See the examples in this package for usage patterns.
package matrix
