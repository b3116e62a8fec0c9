// Package cli implements the batch command line tools for the determinant,
// inversion and linear system kernels. All three read a matrix from stdin and
// print either the legacy six decimal text layout or a JSON result. Every
// failure is rendered as "n/a" in text mode and the exit code is always 0.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/aouyang1/go-gauss/elimination"
	"github.com/aouyang1/go-gauss/linalg"
	mat_ "github.com/aouyang1/go-gauss/mat"
	"github.com/aouyang1/go-gauss/matio"
	"github.com/aouyang1/go-gauss/report"
	"github.com/pkg/profile"
	"gonum.org/v1/gonum/mat"
)

// Op names one of the kernels exposed on the command line
type Op string

const (
	OpDet    Op = "det"
	OpInvert Op = "invert"
	OpSolve  Op = "sle"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrNonFinite = errors.New("result is not finite")
)

// Reasons reported in JSON results, one per failure class
const (
	ReasonMalformedInput = "malformed_input"
	ReasonShape          = "shape"
	ReasonSingular       = "singular"
	ReasonInconsistent   = "inconsistent"
	ReasonNonFinite      = "non_finite"
	ReasonConfig         = "config"
	ReasonInternal       = "internal"
)

// Reason classifies an error into the failure reasons surfaced in JSON results
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, matio.ErrMalformedInput):
		return ReasonMalformedInput
	case errors.Is(err, linalg.ErrNoMatrix),
		errors.Is(err, linalg.ErrNotSquare),
		errors.Is(err, linalg.ErrNotAugmented):
		return ReasonShape
	case errors.Is(err, linalg.ErrSingular):
		return ReasonSingular
	case errors.Is(err, linalg.ErrInconsistent):
		return ReasonInconsistent
	case errors.Is(err, ErrNonFinite):
		return ReasonNonFinite
	case errors.Is(err, ErrConfig):
		return ReasonConfig
	default:
		return ReasonInternal
	}
}

// Run executes op with the command line arguments args, reading the matrix from
// stdin. It returns the process exit code, which is 0 for every kernel outcome
// and 2 only when the flags themselves cannot be parsed.
func Run(op Op, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(string(op), flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a JSON configuration file")
	format := fs.String("format", FormatText, "output format, text or json")
	inputFormat := fs.String("input-format", FormatText, "input format, text or json")
	tol := fs.Float64("tol", linalg.DefaultTolerance, "absolute pivot magnitude treated as zero")
	scaleTol := fs.Bool("scale-tol", false, "scale the tolerance by the infinity norm of the input")
	reportPath := fs.String("report", "", "write an HTML chart of the elimination pivots to this path")
	profileDir := fs.String("cpuprofile", "", "write a CPU profile to this directory")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if *profileDir != "" {
		// profile.Start exits the process when it cannot create its output
		if err := prepareProfileDir(*profileDir); err != nil {
			logger.Error("cpu profile disabled", "path", *profileDir, "error", err.Error())
		} else {
			defer profile.Start(
				profile.CPUProfile,
				profile.ProfilePath(*profileDir),
				profile.NoShutdownHook,
				profile.Quiet,
			).Stop()
		}
	}

	cfg := NewDefaultConfig()
	var cfgErr error
	if *configPath != "" {
		cfg, cfgErr = LoadConfig(*configPath)
	}
	if cfgErr == nil {
		// flags explicitly set on the command line win over the config file
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "format":
				cfg.Format = *format
			case "input-format":
				cfg.InputFormat = *inputFormat
			case "tol":
				cfg.Solver.Tolerance = *tol
			case "scale-tol":
				cfg.Solver.ScaleTolerance = *scaleTol
			case "report":
				cfg.ReportPath = *reportPath
			}
		})
		cfg, cfgErr = cfg.Validate()
	}

	r := &runner{op: op, logger: logger}
	var res *matio.Result
	if cfgErr != nil {
		res = r.fail(cfgErr)
		// an invalid config may carry an unknown format, fall back to the legacy layout
		cfg = NewDefaultConfig()
		if *format == FormatJSON {
			cfg.Format = FormatJSON
		}
	} else {
		r.cfg = cfg
		res = r.run(stdin)
	}

	if err := write(stdout, op, cfg.Format, res); err != nil {
		logger.Error("unable to write result", "op", op, "error", err.Error())
	}
	return 0
}

type runner struct {
	op     Op
	cfg    *Config
	logger *slog.Logger

	pivots []elimination.Pivot
}

func (r *runner) run(stdin io.Reader) *matio.Result {
	a, err := r.read(stdin)
	if err != nil {
		return r.fail(err)
	}
	rows, cols := a.Dims()
	r.logger.Debug("read matrix", "op", r.op, "rows", rows, "cols", cols)

	opt := r.cfg.Solver
	opt.OnPivot = func(p elimination.Pivot) {
		r.pivots = append(r.pivots, p)
	}
	s, err := linalg.New(&opt)
	if err != nil {
		return r.fail(fmt.Errorf("%w, %w", err, ErrConfig))
	}
	defer r.writeReport(s.Tolerance(a))

	res, err := r.execute(s, a)
	if err != nil {
		res = r.fail(err)
	}
	res.Pivots = r.pivots
	return res
}

func (r *runner) read(stdin io.Reader) (*mat.Dense, error) {
	if r.cfg.InputFormat == FormatJSON {
		return matio.ReadJSON(stdin)
	}
	return matio.Read(stdin)
}

func (r *runner) execute(s *linalg.Solver, a *mat.Dense) (*matio.Result, error) {
	switch r.op {
	case OpDet:
		det, err := s.Det(a)
		if err != nil {
			return nil, err
		}
		if !finite(det) {
			return nil, fmt.Errorf("determinant %g, %w", det, ErrNonFinite)
		}
		return &matio.Result{Op: string(r.op), OK: true, Determinant: &det}, nil

	case OpInvert:
		if err := s.Invert(a); err != nil {
			return nil, err
		}
		res := matio.NewMatrixResult(string(r.op), a)
		for i, row := range res.Matrix {
			if !finite(row...) {
				return nil, fmt.Errorf("inverse row %d, %w", i, ErrNonFinite)
			}
		}
		return res, nil

	case OpSolve:
		roots, err := s.Solve(a)
		if err != nil {
			return nil, err
		}
		if !finite(roots...) {
			return nil, fmt.Errorf("roots %v, %w", roots, ErrNonFinite)
		}
		if maxRes, err := linalg.MaxAbsResidual(a, roots); err == nil {
			r.logger.Debug("solved linear system", "max_abs_residual", maxRes)
		}
		return &matio.Result{Op: string(r.op), OK: true, Roots: roots}, nil
	}
	return nil, fmt.Errorf("%q, %w", r.op, ErrUnknownOp)
}

// finite reports whether every value can be rendered as a number. Overflowed
// or NaN results are reported as failures instead.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func prepareProfileDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, "cpu.pprof"))
	if err != nil {
		return err
	}
	return f.Close()
}

func (r *runner) fail(err error) *matio.Result {
	reason := Reason(err)
	r.logger.Debug("operation failed", "op", r.op, "reason", reason, "error", err.Error())
	return &matio.Result{
		Op:     string(r.op),
		Reason: reason,
		Error:  err.Error(),
	}
}

func (r *runner) writeReport(tol float64) {
	if r.cfg.ReportPath == "" {
		return
	}
	title := fmt.Sprintf("%s pivots", r.op)
	if err := report.Render(r.cfg.ReportPath, report.PivotChart(title, r.pivots, tol)); err != nil {
		r.logger.Error("unable to write pivot report", "path", r.cfg.ReportPath, "error", err.Error())
		return
	}
	r.logger.Debug("wrote pivot report", "path", r.cfg.ReportPath, "pivots", len(r.pivots))
}

func write(w io.Writer, op Op, format string, res *matio.Result) error {
	if format == FormatJSON {
		return matio.WriteJSON(w, res)
	}

	if !res.OK {
		// only the determinant tool terminates the sentinel with a newline
		return matio.WriteNA(w, op == OpDet)
	}
	switch {
	case res.Determinant != nil:
		return matio.WriteScalar(w, *res.Determinant)
	case res.Matrix != nil:
		a, err := mat_.NewDenseFromArray(res.Matrix)
		if err != nil {
			return err
		}
		return matio.WriteMatrix(w, a)
	default:
		return matio.WriteRoots(w, res.Roots)
	}
}
