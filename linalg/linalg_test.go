package linalg

import (
	"math/rand"
	"testing"

	mat_ "github.com/aouyang1/go-gauss/mat"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newDense(t testing.TB, x [][]float64) *mat.Dense {
	t.Helper()
	a, err := mat_.NewDenseFromArray(x)
	require.Nil(t, err)
	return a
}

// generateWellConditioned returns a random diagonally dominant n x n matrix
func generateWellConditioned(n int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewSource(int64(seed)))
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			v := rng.Float64()*2.0 - 1.0
			a.Set(i, j, v)
			if v < 0 {
				rowSum -= v
			} else {
				rowSum += v
			}
		}
		a.Set(i, i, rowSum+1.0)
	}
	return a
}

func generateVector(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewSource(int64(seed)))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.Float64()*20.0 - 10.0
	}
	return x
}
