package elimination

import (
	"math"
	"testing"

	mat_ "github.com/aouyang1/go-gauss/mat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newDense(t *testing.T, x [][]float64) *mat.Dense {
	t.Helper()
	a, err := mat_.NewDenseFromArray(x)
	require.Nil(t, err)
	return a
}

func TestFindPivot(t *testing.T) {
	testData := map[string]struct {
		x        [][]float64
		col      int
		tol      float64
		expRow   int
		expFound bool
	}{
		"diagonal is largest": {
			x:        [][]float64{{5, 1}, {2, 3}},
			col:      0,
			tol:      1e-9,
			expRow:   0,
			expFound: true,
		},
		"largest below diagonal": {
			x:        [][]float64{{1, 2}, {-3, 4}},
			col:      0,
			tol:      1e-9,
			expRow:   1,
			expFound: true,
		},
		"ties keep earliest row": {
			x:        [][]float64{{0, 0, 0}, {2, 0, 0}, {-2, 0, 0}},
			col:      0,
			tol:      1e-9,
			expRow:   1,
			expFound: true,
		},
		"ignores rows above col": {
			x:        [][]float64{{0, 100}, {0, 1}},
			col:      1,
			tol:      1e-9,
			expRow:   1,
			expFound: true,
		},
		"below tolerance": {
			x:        [][]float64{{1e-10, 0}, {-1e-11, 1}},
			col:      0,
			tol:      1e-9,
			expRow:   0,
			expFound: false,
		},
		"nan pivot is accepted": {
			x:        [][]float64{{math.NaN(), 1}, {1, 1}},
			col:      0,
			tol:      1e-9,
			expRow:   0,
			expFound: true,
		},
		"exactly tolerance is accepted": {
			x:        [][]float64{{1e-9, 0}, {0, 1}},
			col:      0,
			tol:      1e-9,
			expRow:   0,
			expFound: true,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			row, found := FindPivot(newDense(t, td.x), td.col, td.tol)
			assert.Equal(t, td.expRow, row, "row")
			assert.Equal(t, td.expFound, found, "found")
		})
	}
}

func TestSwapRows(t *testing.T) {
	a := newDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	SwapRows(a, 0, 2)
	assert.Equal(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, mat_.ToArray(a))

	SwapRows(a, 1, 1)
	assert.Equal(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, mat_.ToArray(a))
}

func TestSwapRowsPaired(t *testing.T) {
	a := newDense(t, [][]float64{{1, 2}, {3, 4}})
	b, err := mat_.Identity(2)
	require.Nil(t, err)

	SwapRowsPaired(a, b, 0, 1)
	assert.Equal(t, [][]float64{{3, 4}, {1, 2}}, mat_.ToArray(a))
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, mat_.ToArray(b))
}

func TestScaleRowPaired(t *testing.T) {
	a := newDense(t, [][]float64{{2, 4}, {3, 5}})
	b, err := mat_.Identity(2)
	require.Nil(t, err)

	ScaleRowPaired(a, b, 0, 0.5)
	assert.Equal(t, [][]float64{{1, 2}, {3, 5}}, mat_.ToArray(a))
	assert.Equal(t, [][]float64{{0.5, 0}, {0, 1}}, mat_.ToArray(b))
}

func TestEliminateBelow(t *testing.T) {
	testData := map[string]struct {
		x              [][]float64
		col            int
		skipNegligible bool
		expected       [][]float64
	}{
		"first column": {
			x:        [][]float64{{2, 1, 1}, {4, 3, 3}, {-2, 5, 7}},
			col:      0,
			expected: [][]float64{{2, 1, 1}, {0, 1, 1}, {0, 6, 8}},
		},
		"only touches columns from col": {
			x:        [][]float64{{9, 9, 9}, {9, 2, 4}, {9, 1, 1}},
			col:      1,
			expected: [][]float64{{9, 9, 9}, {9, 2, 4}, {9, 0, -1}},
		},
		"skips negligible rows": {
			x:              [][]float64{{1, 1}, {1e-12, 5}},
			col:            0,
			skipNegligible: true,
			expected:       [][]float64{{1, 1}, {1e-12, 5}},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			a := newDense(t, td.x)
			EliminateBelow(a, td.col, 1e-9, td.skipNegligible)
			res := mat_.ToArray(a)
			for i := range td.expected {
				assert.InDeltaSlice(t, td.expected[i], res[i], 1e-12, "row %d", i)
			}
		})
	}
}

func TestEliminateRowPaired(t *testing.T) {
	a := newDense(t, [][]float64{{1, 2}, {3, 4}})
	b, err := mat_.Identity(2)
	require.Nil(t, err)

	EliminateRowPaired(a, b, 1, 0, 3)
	assert.Equal(t, [][]float64{{1, 2}, {0, -2}}, mat_.ToArray(a))
	assert.Equal(t, [][]float64{{1, 0}, {-3, 1}}, mat_.ToArray(b))
}
