package matio

import (
	"bytes"
	"testing"

	"github.com/aouyang1/go-gauss/elimination"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestWriteScalar(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteScalar(&buf, -2))
	assert.Equal(t, "-2.000000\n", buf.String())
}

func TestWriteMatrix(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteMatrix(&buf, mat.NewDense(2, 2, []float64{0.6, -0.7, -0.2, 0.4})))
	assert.Equal(t, "0.600000 -0.700000\n-0.200000 0.400000\n", buf.String())
}

func TestWriteRoots(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteRoots(&buf, []float64{5, 3}))
	assert.Equal(t, "5.000000 3.000000\n", buf.String())
}

func TestWriteNA(t *testing.T) {
	var buf bytes.Buffer
	require.Nil(t, WriteNA(&buf, false))
	assert.Equal(t, "n/a", buf.String())

	buf.Reset()
	require.Nil(t, WriteNA(&buf, true))
	assert.Equal(t, "n/a\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	det := -2.0
	res := &Result{
		Op:          "det",
		OK:          true,
		Determinant: &det,
		Pivots: []elimination.Pivot{
			{Col: 0, Row: 1, Value: 3, Swapped: true},
			{Col: 1, Row: 1, Value: 2.0 / 3.0},
		},
	}

	var buf bytes.Buffer
	require.Nil(t, WriteJSON(&buf, res))

	var next Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &next))
	assert.Equal(t, res, &next)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.NotContains(t, raw, "roots")
	assert.NotContains(t, raw, "reason")

	pivots, ok := raw["pivots"].([]any)
	require.True(t, ok)
	require.Len(t, pivots, 2)
	assert.Equal(t, map[string]any{"col": 0.0, "row": 1.0, "value": 3.0, "swapped": true}, pivots[0])
}

func TestNewMatrixResult(t *testing.T) {
	res := NewMatrixResult("invert", mat.NewDense(1, 2, []float64{1, 2}))
	assert.Equal(t, &Result{Op: "invert", OK: true, Matrix: [][]float64{{1, 2}}}, res)
}
