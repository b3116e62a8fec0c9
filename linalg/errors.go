package linalg

import (
	"errors"
)

var (
	ErrNoMatrix         = errors.New("no matrix or matrix is empty")
	ErrNotSquare        = errors.New("matrix is not square")
	ErrNotAugmented     = errors.New("matrix is not augmented, expected n rows and n+1 columns")
	ErrSingular         = errors.New("matrix is singular")
	ErrInconsistent     = errors.New("linear system is inconsistent")
	ErrRootsLenMismatch = errors.New("roots length does not match number of unknowns")
	ErrInvalidTolerance = errors.New("tolerance must be a non-negative number")
)
