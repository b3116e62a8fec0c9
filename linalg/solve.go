package linalg

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-gauss/elimination"
	mat_ "github.com/aouyang1/go-gauss/mat"
	"gonum.org/v1/gonum/mat"
)

// Solve returns the roots of the linear system described by the augmented
// n x (n+1) matrix a, where the last column holds the right hand side.
func (s *Solver) Solve(a mat.Matrix) ([]float64, error) {
	if mat_.IsEmpty(a) {
		return nil, ErrNoMatrix
	}
	n, _ := a.Dims()
	roots := make([]float64, n)
	if err := s.SolveInto(a, roots); err != nil {
		return nil, err
	}
	return roots, nil
}

// SolveInto solves the augmented system a and writes the roots into the
// caller allocated slice. roots is left untouched on failure.
func (s *Solver) SolveInto(a mat.Matrix, roots []float64) error {
	n, err := checkAugmented(a)
	if err != nil {
		return err
	}
	if len(roots) != n {
		return fmt.Errorf("expected %d roots, got %d, %w", n, len(roots), ErrRootsLenMismatch)
	}
	tol := s.opt.tolerance(a)

	w := mat.DenseCopyOf(a)
	if err := s.forwardElimination(w, tol); err != nil {
		return err
	}
	if err := checkConsistency(w, tol); err != nil {
		return err
	}

	x, err := backSubstitution(w, tol)
	if err != nil {
		return err
	}
	copy(roots, x)
	return nil
}

func (s *Solver) forwardElimination(w *mat.Dense, tol float64) error {
	n, _ := w.Dims()
	for i := 0; i < n; i++ {
		pivotRow, ok := elimination.FindPivot(w, i, tol)
		if !ok {
			return fmt.Errorf("no unique solution, pivot %g in column %d below tolerance %g, %w", w.At(pivotRow, i), i, tol, ErrSingular)
		}

		swapped := pivotRow != i
		if swapped {
			elimination.SwapRows(w, i, pivotRow)
		}
		s.opt.observe(elimination.Pivot{Col: i, Row: pivotRow, Value: w.At(i, i), Swapped: swapped})

		elimination.EliminateBelow(w, i, tol, true)
	}
	return nil
}

// checkConsistency rejects rows that reduced to 0 = b with a non-negligible b
func checkConsistency(w *mat.Dense, tol float64) error {
	n, _ := w.Dims()
	for i := 0; i < n; i++ {
		row := w.RawRowView(i)
		allZero := true
		for j := 0; j < n; j++ {
			if math.Abs(row[j]) > tol {
				allZero = false
				break
			}
		}
		if allZero && math.Abs(row[n]) > tol {
			return fmt.Errorf("row %d reduces to 0 = %g, %w", i, row[n], ErrInconsistent)
		}
	}
	return nil
}

func backSubstitution(w *mat.Dense, tol float64) ([]float64, error) {
	n, _ := w.Dims()
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		row := w.RawRowView(i)
		if math.Abs(row[i]) < tol {
			return nil, fmt.Errorf("diagonal %g at row %d below tolerance %g, %w", row[i], i, tol, ErrSingular)
		}

		x[i] = row[n]
		for j := i + 1; j < n; j++ {
			x[i] -= row[j] * x[j]
		}
		x[i] /= row[i]
	}
	return x, nil
}
