package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/sumbench/internal/arraysum"
	"github.com/agbru/sumbench/internal/bench"
	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/tui"
	"github.com/agbru/sumbench/internal/ui"
)

// Application represents the sumbench application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	recorder  *metrics.Recorder
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "sumbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	return &Application{Config: cfg, ErrWriter: errWriter, recorder: metrics.NewRecorder()}, nil
}

// Run executes the benchmark and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var code int
	if a.Config.TUI {
		code = tui.Run(ctx, a.newRunner(logging.NewZerologAdapter(zerolog.Nop())), a.Config.Matrix(), Version)
	} else {
		code = a.runBenchmark(ctx, out)
	}

	if err := a.writeMetrics(); err != nil {
		fmt.Fprintf(a.ErrWriter, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
		if code == apperrors.ExitSuccess {
			code = apperrors.ExitErrorGeneric
		}
	}
	return code
}

// runBenchmark runs the matrix with the configured command-line reporter.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	logger := logging.NewConsoleLogger(a.ErrWriter, "bench")
	matrix := a.Config.Matrix()

	reporter, stopProgress := cli.NewReporter(out, cli.OutputConfig{
		Format:      a.Config.Format,
		Quiet:       a.Config.Quiet,
		Verbose:     a.Config.Verbose,
		Progress:    a.progressEnabled(out),
		ProgressOut: a.ErrWriter,
		Trials:      matrix.Trials(),
	})
	summary, err := a.newRunner(logger).Run(ctx, matrix, reporter)
	stopProgress()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: "benchmark", Limit: a.Config.Timeout}
		}
		fmt.Fprintf(a.ErrWriter, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), err)
		return apperrors.ExitCodeFor(err)
	}
	if len(summary.Mismatches) > 0 {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

func (a *Application) newRunner(logger logging.Logger) *bench.Runner {
	opts := []bench.RunnerOption{
		bench.WithLogger(logger),
		bench.WithRecorder(a.recorder),
		bench.WithGCMode(a.Config.GCMode),
	}
	if a.Config.Seed != 0 {
		opts = append(opts, bench.WithArrayOptions(arraysum.WithSeed(a.Config.Seed)))
	}
	return bench.NewRunner(opts...)
}

// progressEnabled shows the spinner only when stderr is a terminal and it
// would not interleave with line output on the same terminal.
func (a *Application) progressEnabled(out io.Writer) bool {
	errFile, ok := a.ErrWriter.(*os.File)
	if !ok || !cli.IsTerminal(errFile) {
		return false
	}
	if outFile, ok := out.(*os.File); ok && cli.IsTerminal(outFile) {
		return a.Config.Format == config.FormatTable
	}
	return true
}

func (a *Application) writeMetrics() error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	return a.recorder.WriteTextfile(a.Config.MetricsFile)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
