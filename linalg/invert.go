package linalg

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-gauss/elimination"
	mat_ "github.com/aouyang1/go-gauss/mat"
	"gonum.org/v1/gonum/mat"
)

// Invert overwrites a with its inverse computed by Gauss-Jordan elimination.
// a is only written once the inverse has been fully computed; on failure it is
// left exactly as provided so callers can retry or fall back.
func (s *Solver) Invert(a *mat.Dense) error {
	if a == nil {
		return ErrNoMatrix
	}
	inv, err := s.Inverse(a)
	if err != nil {
		return err
	}
	a.Copy(inv)
	return nil
}

// Inverse returns the inverse of a square matrix as a new dense matrix without
// modifying the input.
func (s *Solver) Inverse(a mat.Matrix) (*mat.Dense, error) {
	n, err := checkSquare(a)
	if err != nil {
		return nil, err
	}
	tol := s.opt.tolerance(a)

	w := mat.DenseCopyOf(a)
	inv, err := mat_.Identity(n)
	if err != nil {
		return nil, err
	}

	if err := s.gaussJordanForward(w, inv, tol); err != nil {
		return nil, err
	}
	gaussJordanBackward(w, inv, tol)
	return inv, nil
}

// gaussJordanForward reduces w to upper triangular form with a unit diagonal,
// applying every row operation to inv as well.
func (s *Solver) gaussJordanForward(w, inv *mat.Dense, tol float64) error {
	n, _ := w.Dims()
	for i := 0; i < n; i++ {
		pivotRow, ok := elimination.FindPivot(w, i, tol)
		if !ok {
			return fmt.Errorf("pivot %g in column %d below tolerance %g, %w", w.At(pivotRow, i), i, tol, ErrSingular)
		}

		swapped := pivotRow != i
		if swapped {
			elimination.SwapRowsPaired(w, inv, i, pivotRow)
		}
		s.opt.observe(elimination.Pivot{Col: i, Row: pivotRow, Value: w.At(i, i), Swapped: swapped})

		elimination.ScaleRowPaired(w, inv, i, 1.0/w.At(i, i))

		// pivot is now 1 so the entry itself is the elimination factor
		for k := i + 1; k < n; k++ {
			if factor := w.At(k, i); math.Abs(factor) > tol {
				elimination.EliminateRowPaired(w, inv, k, i, factor)
			}
		}
	}
	return nil
}

// gaussJordanBackward clears the entries above the diagonal, leaving w as the
// identity and inv as the inverse.
func gaussJordanBackward(w, inv *mat.Dense, tol float64) {
	n, _ := w.Dims()
	for i := n - 1; i >= 0; i-- {
		for k := i - 1; k >= 0; k-- {
			if factor := w.At(k, i); math.Abs(factor) > tol {
				elimination.EliminateRowPaired(w, inv, k, i, factor)
			}
		}
	}
}
