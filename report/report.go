// Package report renders elimination diagnostics as echarts HTML pages
package report

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/aouyang1/go-gauss/elimination"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PivotChart generates a line chart of the absolute pivot value chosen for each
// elimination column along with the singularity tolerance. Pivots approaching
// the tolerance line indicate an ill conditioned input.
func PivotChart(title string, pivots []elimination.Pivot, tol float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	cols := make([]string, 0, len(pivots))
	lineDataPivot := make([]opts.LineData, 0, len(pivots))
	lineDataTol := make([]opts.LineData, 0, len(pivots))
	for _, p := range pivots {
		cols = append(cols, strconv.Itoa(p.Col))

		// label pivots that required a row swap with the source row
		var name string
		if p.Swapped {
			name = "swapped from row " + strconv.Itoa(p.Row)
		}
		lineDataPivot = append(lineDataPivot, opts.LineData{Name: name, Value: math.Abs(p.Value)})
		lineDataTol = append(lineDataTol, opts.LineData{Value: tol})
	}

	line.SetXAxis(cols).
		AddSeries("|Pivot|", lineDataPivot).
		AddSeries("Tolerance", lineDataTol)
	return line
}

// Render writes all charts to a single HTML page at path
func Render(path string, lines ...*charts.Line) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return RenderTo(file, lines...)
}

// RenderTo writes all charts to a single HTML page
func RenderTo(w io.Writer, lines ...*charts.Line) error {
	page := components.NewPage()
	for _, line := range lines {
		page.AddCharts(line)
	}
	return page.Render(w)
}
