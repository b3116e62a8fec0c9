// Package linalg implements the dense Gaussian elimination kernels: the
// determinant by partial pivoting, inversion by Gauss-Jordan elimination and
// the solution of a linear system given as an augmented matrix.
//
// Every kernel works on its own copy of the input. Only Invert writes back to
// the caller's matrix and it does so only after the inverse was fully computed.
package linalg

import (
	"fmt"

	mat_ "github.com/aouyang1/go-gauss/mat"
	"gonum.org/v1/gonum/mat"
)

// Solver runs the elimination kernels with a fixed set of options. It holds no
// mutable state and can be shared across goroutines as long as each call gets
// its own matrices.
type Solver struct {
	opt *Options
}

// New returns a Solver using the provided options. If no options are provided
// the defaults are used.
func New(opt *Options) (*Solver, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, err
	}
	return &Solver{opt: opt}, nil
}

// Options returns a copy of the options used by the solver
func (s *Solver) Options() Options {
	return *s.opt
}

// Tolerance returns the singularity threshold the solver applies to a
func (s *Solver) Tolerance(a mat.Matrix) float64 {
	return s.opt.tolerance(a)
}

func defaultSolver() *Solver {
	return &Solver{opt: NewDefaultOptions()}
}

// Det computes the determinant of a square matrix with the default options
func Det(a mat.Matrix) (float64, error) {
	return defaultSolver().Det(a)
}

// Invert replaces a with its inverse using the default options
func Invert(a *mat.Dense) error {
	return defaultSolver().Invert(a)
}

// Inverse returns the inverse of a using the default options
func Inverse(a mat.Matrix) (*mat.Dense, error) {
	return defaultSolver().Inverse(a)
}

// Solve returns the roots of the augmented system a using the default options
func Solve(a mat.Matrix) ([]float64, error) {
	return defaultSolver().Solve(a)
}

func checkSquare(a mat.Matrix) (int, error) {
	if mat_.IsEmpty(a) {
		return 0, ErrNoMatrix
	}
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("got %d rows and %d columns, %w", r, c, ErrNotSquare)
	}
	return r, nil
}

func checkAugmented(a mat.Matrix) (int, error) {
	if mat_.IsEmpty(a) {
		return 0, ErrNoMatrix
	}
	r, c := a.Dims()
	if c != r+1 {
		return 0, fmt.Errorf("got %d rows and %d columns, %w", r, c, ErrNotAugmented)
	}
	return r, nil
}
