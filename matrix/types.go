// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the Square value type.
// This file contains ONLY the domain-facing types. Constructors and accessors
// live in square.go, arithmetic in arith.go, structural ops in structural.go
// and the text contract in textio.go.
package matrix

// Number is the set of element types a Square may hold.
// Every member supports +, * and has a zero value; the ~ forms admit
// named numeric types (e.g. type Celsius float64).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Square is an n×n matrix that exclusively owns its row-major storage.
//   - n is the dimension (>= 0; 0 means the inert empty matrix).
//   - data is a flat buffer of length n*n (offset = i*n + j).
//
// The zero value is a valid empty matrix. Distinct Square values never share
// storage: constructors, Clone, Assign and every binary operation allocate.
//
// Complexity notes: At/Set/Dim are O(1); Clone/Add are O(n²); Mul is O(n³).
type Square[T Number] struct {
	n    int // dimension (rows == cols)
	data []T // contiguous row-major storage (len == n*n)
}
