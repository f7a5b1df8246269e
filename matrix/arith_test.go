// Package matrix_test verifies the Add/Mul kernels.
package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// TestAddMul2x2 pins the reference 2×2 results.
func TestAddMul2x2(t *testing.T) {
	a := MustSquare(t, [][]int{{1, 2}, {3, 4}})
	b := MustSquare(t, [][]int{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]int{{6, 8}, {10, 12}}, sum.ToRows()))

	prod, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]int{{19, 22}, {43, 50}}, prod.ToRows()))

	// operands untouched
	require.Empty(t, cmp.Diff([][]int{{1, 2}, {3, 4}}, a.ToRows()))
	require.Empty(t, cmp.Diff([][]int{{5, 6}, {7, 8}}, b.ToRows()))
}

// TestAddMulFloat covers the floating instantiation via the method forms.
func TestAddMulFloat(t *testing.T) {
	a := MustSquare(t, [][]float64{{0.5, 1}, {2, 0.25}})
	b := MustSquare(t, [][]float64{{2, 0}, {0, 4}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]float64{{2.5, 1}, {2, 4.25}}, sum.ToRows()))

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]float64{{1, 4}, {4, 1}}, prod.ToRows()))
}

// TestAddElementwiseAndCommutative checks C[i,j] = A[i,j] + B[i,j] and A+B == B+A.
func TestAddElementwiseAndCommutative(t *testing.T) {
	const n = 7
	a := RandomInt(t, n, 1)
	b := RandomInt(t, n, 2)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.Equal(t, MustAt(t, a, i, j)+MustAt(t, b, i, j), MustAt(t, ab, i, j))
		}
	}
}

// TestMulIdentity checks I·M == M and M·I == M.
func TestMulIdentity(t *testing.T) {
	id := MustSquare(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	for seed := int64(0); seed < 5; seed++ {
		m := RandomInt(t, 3, seed)

		left, err := matrix.Mul(id, m)
		require.NoError(t, err)
		require.True(t, left.Equal(m))

		right, err := matrix.Mul(m, id)
		require.NoError(t, err)
		require.True(t, right.Equal(m))
	}
}

// TestMulSelf makes sure an operand may appear on both sides.
func TestMulSelf(t *testing.T) {
	a := MustSquare(t, [][]int{{1, 2}, {3, 4}})
	sq, err := a.Mul(a)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]int{{7, 10}, {15, 22}}, sq.ToRows()))
	require.Empty(t, cmp.Diff([][]int{{1, 2}, {3, 4}}, a.ToRows()))
}

// TestDimensionMismatch ensures 2×2 vs 3×3 fails and neither operand is mutated.
func TestDimensionMismatch(t *testing.T) {
	a := MustSquare(t, [][]int{{1, 2}, {3, 4}})
	b := Seq3(t)
	aBefore, bBefore := a.ToRows(), b.ToRows()

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = b.Add(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = b.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.Empty(t, cmp.Diff(aBefore, a.ToRows()))
	require.Empty(t, cmp.Diff(bBefore, b.ToRows()))
}

// TestNilOperands checks ErrNilMatrix has priority over dimension checks.
func TestNilOperands(t *testing.T) {
	a := Seq3(t)
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestEmptyOperands verifies two empty matrices combine into an empty result.
func TestEmptyOperands(t *testing.T) {
	e := matrix.NewEmpty[float64]()
	sum, err := matrix.Add(e, e)
	require.NoError(t, err)
	require.True(t, sum.IsEmpty())

	prod, err := matrix.Mul(e, e)
	require.NoError(t, err)
	require.True(t, prod.IsEmpty())
}
