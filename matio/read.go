// Package matio reads matrices from the whitespace separated text format used by
// the command line tools, reads and writes the JSON format, and renders results
// in the legacy fixed six decimal text layout.
package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	mat_ "github.com/aouyang1/go-gauss/mat"
	"gonum.org/v1/gonum/mat"
)

// MaxElements bounds n*m so a corrupt header cannot request an enormous allocation
const MaxElements = 1 << 24

// Read parses a matrix in the text format: two positive integers n and m
// followed by n*m real numbers in row order. Tokens may be separated by any
// whitespace. Tokens following the last value are ignored. No matrix is
// returned if the input is malformed.
func Read(r io.Reader) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := readDim(sc, "rows")
	if err != nil {
		return nil, err
	}
	m, err := readDim(sc, "columns")
	if err != nil {
		return nil, err
	}
	if n > MaxElements/m {
		return nil, fmt.Errorf("%d x %d, %w", n, m, ErrTooLarge)
	}

	data := make([]float64, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("reading row %d column %d, %w", i, j, err)
				}
				return nil, fmt.Errorf("at row %d column %d, %w", i, j, ErrMissingValues)
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return nil, fmt.Errorf("%q at row %d column %d, %w", sc.Text(), i, j, ErrBadValue)
			}
			data[i*m+j] = v
		}
	}
	return mat.NewDense(n, m, data), nil
}

func readDim(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("reading %s, %w", name, err)
		}
		return 0, fmt.Errorf("missing %s, %w", name, ErrBadHeader)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%s %q, %w", name, sc.Text(), ErrBadHeader)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s %d, %w", name, v, ErrNonPositiveDim)
	}
	return v, nil
}

// Matrix is the JSON representation of a dense matrix as a list of rows. RHS
// optionally carries the right hand side of a linear system separately from
// the coefficients.
type Matrix struct {
	Rows [][]float64 `json:"rows"`
	RHS  []float64   `json:"rhs,omitempty"`
}

// ReadJSON parses a matrix from a JSON document of the form {"rows": [[...], ...]}.
// When "rhs" is present it is appended as the last column, producing the
// augmented matrix [rows|rhs].
func ReadJSON(r io.Reader) (*mat.Dense, error) {
	var doc Matrix
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrMalformedInput)
	}

	a, err := mat_.NewDenseFromArray(doc.Rows)
	switch {
	case errors.Is(err, mat_.ErrColMismatch):
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrRaggedRows)
	case errors.Is(err, mat_.ErrEmpty):
		return nil, fmt.Errorf("no rows, %w", ErrNonPositiveDim)
	case err != nil:
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrMalformedInput)
	}
	if len(doc.RHS) == 0 {
		return a, nil
	}

	aug, err := mat_.Augment(a, doc.RHS)
	if err != nil {
		if errors.Is(err, mat_.ErrRowMismatch) {
			return nil, fmt.Errorf("%s, %w", err.Error(), ErrRHSMismatch)
		}
		return nil, fmt.Errorf("%s, %w", err.Error(), ErrMalformedInput)
	}
	return aug, nil
}
