package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/aouyang1/go-gauss/linalg"
	"github.com/goccy/go-json"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	ErrConfig        = errors.New("invalid configuration")
	ErrUnknownFormat = fmt.Errorf("unknown format, %w", ErrConfig)
)

// Config holds every setting of a command line run. It can be loaded from a
// JSON file and individual fields overridden by flags.
type Config struct {
	Solver linalg.Options `json:"solver"`

	// Format selects the output layout, text for the fixed legacy layout or json
	// for a structured result.
	Format string `json:"format"`

	// InputFormat selects how stdin is parsed, text or json.
	InputFormat string `json:"input_format"`

	// ReportPath writes an HTML chart of the elimination pivots when set.
	ReportPath string `json:"report_path"`
}

// NewDefaultConfig returns the configuration matching the legacy tools
func NewDefaultConfig() *Config {
	return &Config{
		Solver:      *linalg.NewDefaultOptions(),
		Format:      FormatText,
		InputFormat: FormatText,
	}
}

// LoadConfig reads a JSON configuration file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s, %w, %w", path, err, ErrConfig)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s, %w, %w", path, err, ErrConfig)
	}
	return cfg, nil
}

// Validate checks the formats and solver options
func (c *Config) Validate() (*Config, error) {
	if c == nil {
		c = NewDefaultConfig()
	}
	if !validFormat(c.Format) {
		return nil, fmt.Errorf("output format %q, %w", c.Format, ErrUnknownFormat)
	}
	if !validFormat(c.InputFormat) {
		return nil, fmt.Errorf("input format %q, %w", c.InputFormat, ErrUnknownFormat)
	}
	if _, err := c.Solver.Validate(); err != nil {
		return nil, fmt.Errorf("%w, %w", err, ErrConfig)
	}
	return c, nil
}

func validFormat(f string) bool {
	return f == FormatText || f == FormatJSON
}
