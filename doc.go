// SPDX-License-Identifier: MIT

// Package sqmatrix is a small, dependable square-matrix toolkit: a generic
// matrix value type plus a demonstration CLI that drives it.
//
// What is inside:
//
//	matrix/          - Square[T]: construction, bounds-checked access, Add, Mul,
//	                   diagonal sums, row/column swaps, text parse/render
//	internal/config/ - environment configuration for the CLI
//	internal/demo/   - the fixed demonstration sequence (read, compute, prompt, print)
//	cmd/sqmatrix/    - the command-line entry point
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows([][]int{{5, 6}, {7, 8}})
//	p, _ := a.Mul(b) // [[19 22] [43 50]]
//
//	go install github.com/katalvlaran/sqmatrix/cmd/sqmatrix@latest
package sqmatrix
