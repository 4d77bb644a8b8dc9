// Package config parses command-line flags and SUMBENCH_* environment
// variables into an AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/sumbench/internal/bench"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/memory"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SUMBENCH_"

// Report formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// Default benchmark matrix.
var (
	DefaultSizes   = bench.DefaultMatrix().Sizes
	DefaultThreads = bench.DefaultMatrix().Threads
)

// DefaultTimeout bounds a whole run.
const DefaultTimeout = 5 * time.Minute

// AppConfig is the resolved configuration of one run.
type AppConfig struct {
	Sizes       []int
	Threads     []int
	Seed        uint64
	Format      string
	GCMode      memory.GCMode
	MetricsFile string
	Timeout     time.Duration
	TUI         bool
	Quiet       bool
	Verbose     bool
	NoColor     bool
}

// intList is a flag.Value for comma separated integers.
type intList struct {
	values *[]int
}

func (l intList) String() string {
	if l.values == nil {
		return ""
	}
	return JoinInts(*l.values)
}

func (l intList) Set(s string) error {
	parsed, err := ParseIntList(s)
	if err != nil {
		return err
	}
	*l.values = parsed
	return nil
}

// ParseIntList parses "1,4, 8" into []int{1, 4, 8}.
func ParseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ReplaceAll(p, "_", ""))
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", p)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

// JoinInts is the inverse of ParseIntList.
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Priority is CLI flags, then environment variables, then defaults.
// flag.ErrHelp is returned unchanged when -h/--help is given.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{
		Sizes:   append([]int(nil), DefaultSizes...),
		Threads: append([]int(nil), DefaultThreads...),
	}
	var gcMode string

	fs.Var(intList{&config.Sizes}, "sizes", "Comma-separated array sizes to benchmark.")
	fs.Var(intList{&config.Threads}, "threads", "Comma-separated thread counts; 1 runs the sequential sum.")
	fs.Uint64Var(&config.Seed, "seed", 0, "Random seed for array contents (0 = entropy).")
	fs.StringVar(&config.Format, "format", FormatText, "Report format: text, table or csv.")
	fs.StringVar(&gcMode, "gc", string(memory.GCModeAuto), "GC control during trials: auto, aggressive or disabled.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the interactive dashboard.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print result lines only.")
	fs.BoolVar(&config.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\nBenchmarks sequential versus parallel summation of random arrays.\n\nFlags:\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	config.GCMode = memory.GCMode(gcMode)
	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks value ranges and enumerations.
func (c AppConfig) Validate() error {
	if len(c.Sizes) == 0 {
		return apperrors.NewConfigError("at least one array size is required")
	}
	for _, s := range c.Sizes {
		if s < 0 {
			return apperrors.NewConfigError("array size must be non-negative, got %d", s)
		}
	}
	if len(c.Threads) == 0 {
		return apperrors.NewConfigError("at least one thread count is required")
	}
	for _, k := range c.Threads {
		if k < 1 {
			return apperrors.NewConfigError("thread count must be at least 1, got %d", k)
		}
	}
	switch c.Format {
	case FormatText, FormatTable, FormatCSV:
	default:
		return apperrors.NewConfigError("unknown format %q (want text, table or csv)", c.Format)
	}
	if _, err := memory.ParseGCMode(string(c.GCMode)); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("--quiet and --tui are mutually exclusive")
	}
	return nil
}

// Matrix returns the benchmark matrix described by the configuration.
func (c AppConfig) Matrix() bench.Matrix {
	return bench.Matrix{Sizes: c.Sizes, Threads: c.Threads}
}
