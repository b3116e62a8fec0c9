// Package elimination holds the row primitives shared by the Gaussian
// elimination kernels: pivot search, row swaps, row scaling and row
// elimination. All functions mutate dense working copies in place and assume
// the caller already validated indices.
package elimination

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Pivot describes the pivot chosen for a single elimination column
type Pivot struct {
	Col     int     `json:"col"`
	Row     int     `json:"row"`
	Value   float64 `json:"value"`
	Swapped bool    `json:"swapped"`
}

// FindPivot scans rows col..r-1 of column col and returns the row holding the
// largest absolute value. Ties keep the earliest row. ok is false when the
// largest magnitude is below tol. A NaN pivot is not rejected, so NaN entries
// propagate into the result.
func FindPivot(a *mat.Dense, col int, tol float64) (int, bool) {
	r, _ := a.Dims()
	pivotRow := col
	best := math.Abs(a.At(col, col))
	for k := col + 1; k < r; k++ {
		if v := math.Abs(a.At(k, col)); v > best {
			pivotRow = k
			best = v
		}
	}
	return pivotRow, !(best < tol)
}

// SwapRows exchanges two full rows of a
func SwapRows(a *mat.Dense, r1, r2 int) {
	if r1 == r2 {
		return
	}
	row1 := a.RawRowView(r1)
	row2 := a.RawRowView(r2)
	for j := range row1 {
		row1[j], row2[j] = row2[j], row1[j]
	}
}

// SwapRowsPaired exchanges the same two rows in a and b
func SwapRowsPaired(a, b *mat.Dense, r1, r2 int) {
	SwapRows(a, r1, r2)
	SwapRows(b, r1, r2)
}

// ScaleRow multiplies every entry of a row by factor
func ScaleRow(a *mat.Dense, row int, factor float64) {
	floats.Scale(factor, a.RawRowView(row))
}

// ScaleRowPaired multiplies the same row of a and b by factor
func ScaleRowPaired(a, b *mat.Dense, row int, factor float64) {
	ScaleRow(a, row, factor)
	ScaleRow(b, row, factor)
}

// EliminateBelow zeroes column col beneath the pivot row col by subtracting
// factor = a[k][col] / a[col][col] times the pivot row from every row k > col.
// Only columns col onward are touched. When skipNegligible is set, rows whose
// entry in col is not greater than tol in magnitude are left as is.
func EliminateBelow(a *mat.Dense, col int, tol float64, skipNegligible bool) {
	r, _ := a.Dims()
	pivotRow := a.RawRowView(col)[col:]
	pivot := pivotRow[0]
	for k := col + 1; k < r; k++ {
		row := a.RawRowView(k)[col:]
		if skipNegligible && math.Abs(row[0]) <= tol {
			continue
		}
		factor := row[0] / pivot
		floats.AddScaled(row, -factor, pivotRow)
	}
}

// EliminateRowPaired subtracts factor times the pivot row from the target row
// across the full width of both a and b.
func EliminateRowPaired(a, b *mat.Dense, target, pivot int, factor float64) {
	floats.AddScaled(a.RawRowView(target), -factor, a.RawRowView(pivot))
	floats.AddScaled(b.RawRowView(target), -factor, b.RawRowView(pivot))
}
