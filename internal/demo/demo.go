// SPDX-License-Identifier: MIT

// Package demo runs the fixed sqmatrix demonstration: read two matrices from
// an input stream, print their sum, product and combined diagonal sum, then
// swap rows, swap columns and update one element of the first matrix using
// indices read from a prompt stream.
//
// Input format:
//
//	N typeFlag          (typeFlag 0 = int elements, 1 = float64 elements)
//	N*N tokens          first matrix, row-major
//	N*N tokens          second matrix, row-major
//
// Every failure is returned to the caller; the command maps it to exit code 1.
package demo

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// TypeFlag selects the element type of both matrices.
type TypeFlag int

const (
	TypeInt   TypeFlag = 0 // int elements
	TypeFloat TypeFlag = 1 // float64 elements
)

var (
	// ErrBadHeader is returned when the first line does not hold two integers.
	ErrBadHeader = errors.New("demo: cannot read matrix size and type flag")

	// ErrInvalidTypeFlag is returned for a type flag other than 0 or 1.
	ErrInvalidTypeFlag = errors.New("demo: invalid type flag in input file, use 0 for int or 1 for double")

	// ErrPrompt is returned when an interactive answer cannot be read.
	ErrPrompt = errors.New("demo: cannot read interactive input")
)

// Prompt texts, in the order they are asked.
const (
	promptRows   = "Enter two row indices to swap in Matrix 1 (0-based index): "
	promptCols   = "Enter two column indices to swap in Matrix 1 (0-based index): "
	promptUpdate = "Enter row index, column index, and new value to update in Matrix 1: "
)

// Config carries the collaborators of a run.
type Config struct {
	// Logger receives debug traces of each phase. Nil means no logging.
	Logger *zap.Logger
	// Render options applied to every printed matrix and scalar.
	Render []matrix.Option
}

// Header is the parsed first line of the input.
type Header struct {
	N    int
	Type TypeFlag
}

// ReadHeader scans "N typeFlag" and validates the flag. N itself is checked
// by matrix.New so a non-positive size surfaces as matrix.ErrInvalidDimension.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	var flag int
	if _, err := fmt.Fscan(r, &h.N, &flag); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	h.Type = TypeFlag(flag)
	if h.Type != TypeInt && h.Type != TypeFloat {
		return Header{}, fmt.Errorf("type flag %d: %w", flag, ErrInvalidTypeFlag)
	}

	return h, nil
}

// Run executes the demonstration. input holds the matrix file, prompts the
// interactive answers and out receives every printed line.
func Run(cfg Config, input, prompts io.Reader, out io.Writer) error {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	in := bufio.NewReader(input)
	h, err := ReadHeader(in)
	if err != nil {
		return err
	}
	log.Debug("header read", zap.Int("n", h.N), zap.Int("type_flag", int(h.Type)))

	s := &session{
		log:     log,
		in:      in,
		prompts: bufio.NewReader(prompts),
		p:       &printer{w: out, opts: cfg.Render},
	}
	switch h.Type {
	case TypeInt:
		return runTyped[int](s, h.N)
	default:
		return runTyped[float64](s, h.N)
	}
}

// session bundles the streams shared by every step of a run.
type session struct {
	log     *zap.Logger
	in      *bufio.Reader
	prompts *bufio.Reader
	p       *printer
}

// runTyped is the whole sequence for one element type.
func runTyped[T matrix.Number](s *session, n int) error {
	m1, err := matrix.New[T](n)
	if err != nil {
		return err
	}
	m2, err := matrix.New[T](n)
	if err != nil {
		return err
	}
	if err = m1.ParseFrom(s.in); err != nil {
		return fmt.Errorf("matrix 1: %w", err)
	}
	if err = m2.ParseFrom(s.in); err != nil {
		return fmt.Errorf("matrix 2: %w", err)
	}
	s.log.Debug("matrices parsed", zap.Int("dim", n))

	printMatrix(s.p, "Matrix 1:", m1)
	printMatrix(s.p, "Matrix 2:", m2)

	sum, err := m1.Add(m2)
	if err != nil {
		return err
	}
	printMatrix(s.p, "Addition (Matrix 1 + Matrix 2):", sum)

	product, err := m1.Mul(m2)
	if err != nil {
		return err
	}
	printMatrix(s.p, "Multiplication (Matrix 1 * Matrix 2):", product)

	diag := m1.DiagonalSum()
	s.p.printf("Sum of main and secondary diagonals of Matrix 1: %s\n\n", matrix.FormatElement(diag, s.p.opts...))
	s.log.Debug("arithmetic done")

	var r1, r2 int
	if err = s.ask(promptRows, &r1, &r2); err != nil {
		return err
	}
	if err = m1.SwapRows(r1, r2); err != nil {
		return err
	}
	printMatrix(s.p, fmt.Sprintf("Matrix 1 after swapping rows %d and %d:", r1, r2), m1)

	var c1, c2 int
	if err = s.ask(promptCols, &c1, &c2); err != nil {
		return err
	}
	if err = m1.SwapColumns(c1, c2); err != nil {
		return err
	}
	printMatrix(s.p, fmt.Sprintf("Matrix 1 after swapping columns %d and %d:", c1, c2), m1)

	var row, col int
	var value T
	if err = s.ask(promptUpdate, &row, &col, &value); err != nil {
		return err
	}
	if err = m1.UpdateElement(row, col, value); err != nil {
		return err
	}
	printMatrix(s.p, fmt.Sprintf("Matrix 1 after updating element at (%d, %d):", row, col), m1)
	s.log.Debug("demo finished")

	return s.p.err
}

// ask prints a prompt and scans the answers into dst.
func (s *session) ask(prompt string, dst ...any) error {
	s.p.printf("%s", prompt)
	if s.p.err != nil {
		return s.p.err
	}
	if _, err := fmt.Fscan(s.prompts, dst...); err != nil {
		return fmt.Errorf("%w: %w", ErrPrompt, err)
	}

	return nil
}

// printer is a sticky-error writer: after the first failure every call is a no-op.
type printer struct {
	w    io.Writer
	opts []matrix.Option
	err  error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// printMatrix writes a title, the grid and a blank line.
func printMatrix[T matrix.Number](p *printer, title string, m *matrix.Square[T]) {
	p.printf("%s\n", title)
	if p.err != nil {
		return
	}
	if p.err = m.RenderTo(p.w, p.opts...); p.err != nil {
		return
	}
	p.printf("\n")
}
