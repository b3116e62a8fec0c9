package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Residuals computes A*x - b for every row of the augmented matrix a given a
// candidate solution x.
func Residuals(a mat.Matrix, roots []float64) ([]float64, error) {
	n, err := checkAugmented(a)
	if err != nil {
		return nil, err
	}
	if len(roots) != n {
		return nil, fmt.Errorf("expected %d roots, got %d, %w", n, len(roots), ErrRootsLenMismatch)
	}

	res := make([]float64, n)
	row := make([]float64, n+1)
	for i := 0; i < n; i++ {
		mat.Row(row, i, a)
		res[i] = floats.Dot(row[:n], roots) - row[n]
	}
	return res, nil
}

// MaxAbsResidual returns the largest absolute residual of the solution x for
// the augmented matrix a.
func MaxAbsResidual(a mat.Matrix, roots []float64) (float64, error) {
	res, err := Residuals(a, roots)
	if err != nil {
		return 0.0, err
	}
	return floats.Norm(res, math.Inf(1)), nil
}
