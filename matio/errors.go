package matio

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is wrapped by every input parsing error so callers can
// detect bad input without caring about the exact reason.
var ErrMalformedInput = errors.New("malformed input")

var (
	ErrBadHeader      = fmt.Errorf("expected two integer dimensions, %w", ErrMalformedInput)
	ErrNonPositiveDim = fmt.Errorf("dimensions must be positive, %w", ErrMalformedInput)
	ErrBadValue       = fmt.Errorf("unparsable numeric value, %w", ErrMalformedInput)
	ErrMissingValues  = fmt.Errorf("fewer values than dimensions require, %w", ErrMalformedInput)
	ErrRaggedRows     = fmt.Errorf("rows have different lengths, %w", ErrMalformedInput)
	ErrTooLarge       = fmt.Errorf("dimensions exceed the allowed number of elements, %w", ErrMalformedInput)
	ErrRHSMismatch    = fmt.Errorf("right hand side length differs from the number of rows, %w", ErrMalformedInput)
)
