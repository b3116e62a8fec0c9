package linalg

import (
	"fmt"

	"github.com/aouyang1/go-gauss/elimination"
	"gonum.org/v1/gonum/mat"
)

// Det computes the determinant of a square matrix by Gaussian elimination with
// partial pivoting. The input is not modified. On any failure the returned
// value is 0.0 together with an error describing why, so a genuinely zero
// determinant can be told apart from a non-square or singular input.
func (s *Solver) Det(a mat.Matrix) (float64, error) {
	n, err := checkSquare(a)
	if err != nil {
		return 0.0, err
	}
	tol := s.opt.tolerance(a)

	w := mat.DenseCopyOf(a)
	det := 1.0
	sign := 1.0
	for i := 0; i < n; i++ {
		pivotRow, ok := elimination.FindPivot(w, i, tol)
		if !ok {
			return 0.0, fmt.Errorf("pivot %g in column %d below tolerance %g, %w", w.At(pivotRow, i), i, tol, ErrSingular)
		}

		swapped := pivotRow != i
		if swapped {
			elimination.SwapRows(w, i, pivotRow)
			sign = -sign
		}
		s.opt.observe(elimination.Pivot{Col: i, Row: pivotRow, Value: w.At(i, i), Swapped: swapped})

		det *= w.At(i, i)
		elimination.EliminateBelow(w, i, tol, false)
	}
	return sign * det, nil
}
