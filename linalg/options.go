package linalg

import (
	"log/slog"
	"math"

	"github.com/aouyang1/go-gauss/elimination"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is the absolute magnitude below which a pivot is treated as zero
const DefaultTolerance = 1e-9

// Options configures the singularity threshold used by every kernel
type Options struct {
	// Tolerance is the absolute pivot magnitude under which a matrix is considered singular.
	// Entries with a magnitude not greater than Tolerance are also skipped during elimination.
	// A zero value uses DefaultTolerance.
	Tolerance float64 `json:"tolerance"`

	// ScaleTolerance multiplies Tolerance by the infinity norm of the input matrix so the
	// threshold follows the magnitude of the data instead of being a fixed epsilon.
	ScaleTolerance bool `json:"scale_tolerance"`

	// OnPivot is called once per elimination column with the pivot that was selected.
	OnPivot func(elimination.Pivot) `json:"-"`
}

// NewDefaultOptions returns options matching the fixed 1e-9 absolute epsilon
func NewDefaultOptions() *Options {
	return &Options{
		Tolerance: DefaultTolerance,
	}
}

// Validate runs basic validation on the options and returns a copy with defaults filled in
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		o = NewDefaultOptions()
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return nil, ErrInvalidTolerance
	}
	opt := *o
	if opt.Tolerance == 0 {
		opt.Tolerance = DefaultTolerance
	}
	return &opt, nil
}

// tolerance resolves the threshold for a specific input matrix
func (o *Options) tolerance(a mat.Matrix) float64 {
	if !o.ScaleTolerance {
		return o.Tolerance
	}
	norm := mat.Norm(a, math.Inf(1))
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		slog.Warn("non-finite matrix norm, using absolute tolerance", "tolerance", o.Tolerance)
		return o.Tolerance
	}
	if norm == 0 {
		return o.Tolerance
	}
	return o.Tolerance * norm
}

func (o *Options) observe(p elimination.Pivot) {
	if o.OnPivot != nil {
		o.OnPivot(p)
	}
}
