// Package mat contains helpers for building and converting gonum dense matrices
// used by the elimination kernels.
package mat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty       = errors.New("matrix has no rows or columns")
	ErrColMismatch = errors.New("column size mismatch")
	ErrRowMismatch = errors.New("row size mismatch")
	ErrNonPositive = errors.New("dimensions must be positive")
)

// NewDenseFromArray copies a slice of rows into a row major dense matrix. Every
// row must have the same length.
func NewDenseFromArray(x [][]float64) (*mat.Dense, error) {
	m := len(x)

	n := -1
	for i, row := range x {
		if n >= 0 && len(row) != n {
			return nil, fmt.Errorf("at row %d, %w", i, ErrColMismatch)
		}
		if n < 0 {
			n = len(row)
		}
	}
	if m == 0 || n <= 0 {
		return nil, ErrEmpty
	}

	// flatten to row order
	data := make([]float64, 0, m*n)
	for _, row := range x {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data), nil
}

// ToArray returns a copy of the matrix as a slice of rows
func ToArray(a mat.Matrix) [][]float64 {
	r, _ := a.Dims()
	res := make([][]float64, r)
	for i := 0; i < r; i++ {
		res[i] = mat.Row(nil, i, a)
	}
	return res
}

// Identity returns an n x n identity matrix
func Identity(n int) (*mat.Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("identity of size %d, %w", n, ErrNonPositive)
	}
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1.0)
	}
	return id, nil
}

// Augment appends b as the right hand side column of a, returning the n x (n+1)
// matrix [a|b].
func Augment(a mat.Matrix, b []float64) (*mat.Dense, error) {
	if IsEmpty(a) {
		return nil, ErrEmpty
	}
	r, _ := a.Dims()
	if len(b) != r {
		return nil, fmt.Errorf("matrix has %d rows and right hand side has %d values, %w", r, len(b), ErrRowMismatch)
	}

	var aug mat.Dense
	aug.Augment(a, mat.NewDense(r, 1, append([]float64(nil), b...)))
	return &aug, nil
}

// IsEmpty reports whether a is nil or has a zero dimension. A zero value
// mat.Dense is empty.
func IsEmpty(a mat.Matrix) bool {
	if a == nil {
		return true
	}
	if d, ok := a.(*mat.Dense); ok {
		if d == nil || d.IsEmpty() {
			return true
		}
	}
	r, c := a.Dims()
	return r == 0 || c == 0
}
