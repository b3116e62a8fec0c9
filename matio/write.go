package matio

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/aouyang1/go-gauss/elimination"
	mat_ "github.com/aouyang1/go-gauss/mat"
	"gonum.org/v1/gonum/mat"
)

// NA is the failure sentinel printed by the text renderers
const NA = "n/a"

// WriteScalar prints a single value with six decimals followed by a newline
func WriteScalar(w io.Writer, v float64) error {
	_, err := fmt.Fprintf(w, "%.6f\n", v)
	return err
}

// WriteMatrix prints one row per line with six decimal, space separated values
func WriteMatrix(w io.Writer, a mat.Matrix) error {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sep := " "
			if j == c-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%.6f%s", a.At(i, j), sep); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteRoots prints the roots space separated with six decimals and a trailing newline
func WriteRoots(w io.Writer, roots []float64) error {
	for i, v := range roots {
		sep := " "
		if i == len(roots)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%.6f%s", v, sep); err != nil {
			return err
		}
	}
	return nil
}

// WriteNA prints the failure sentinel, optionally followed by a newline
func WriteNA(w io.Writer, newline bool) error {
	out := NA
	if newline {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// Result is the structured outcome of a single kernel invocation. Exactly one
// of Determinant, Matrix or Roots is set on success. Reason classifies the
// failure when OK is false.
type Result struct {
	Op          string      `json:"op"`
	OK          bool        `json:"ok"`
	Reason      string      `json:"reason,omitempty"`
	Error       string      `json:"error,omitempty"`
	Determinant *float64    `json:"determinant,omitempty"`
	Matrix      [][]float64 `json:"matrix,omitempty"`
	Roots       []float64   `json:"roots,omitempty"`

	// Pivots lists the pivot chosen at each elimination column, up to the
	// point of failure.
	Pivots []elimination.Pivot `json:"pivots,omitempty"`
}

// NewMatrixResult builds a successful result holding a matrix
func NewMatrixResult(op string, a mat.Matrix) *Result {
	return &Result{
		Op:     op,
		OK:     true,
		Matrix: mat_.ToArray(a),
	}
}

// WriteJSON encodes the result as an indented JSON document
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
