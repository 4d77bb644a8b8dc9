package bench

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/sumbench/internal/arraysum"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/memory"
)

const tracerName = "github.com/agbru/sumbench/internal/bench"

// Runner executes a benchmark Matrix. Trials run strictly one after another
// so that their timings do not interfere.
type Runner struct {
	logger      logging.Logger
	gcLogger    zerolog.Logger
	recorder    TrialRecorder
	arrayOpts   []arraysum.Option
	gcMode      memory.GCMode
	tracer      trace.Tracer
	now         func() time.Time
	environment func() Environment
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithLogger sets the logger for trial events. A zerolog-backed logger is
// also used for GC controller events.
func WithLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
		if z, ok := l.(*logging.ZerologAdapter); ok {
			r.gcLogger = z.Zerolog()
		}
	}
}

// WithRecorder sets the metrics sink.
func WithRecorder(rec TrialRecorder) RunnerOption {
	return func(r *Runner) { r.recorder = rec }
}

// WithArrayOptions passes options to every arraysum.New call, e.g. a fixed seed.
func WithArrayOptions(opts ...arraysum.Option) RunnerOption {
	return func(r *Runner) { r.arrayOpts = append(r.arrayOpts, opts...) }
}

// WithGCMode selects how the garbage collector is handled around trials.
func WithGCMode(mode memory.GCMode) RunnerOption {
	return func(r *Runner) { r.gcMode = mode }
}

// WithClock replaces time.Now for measuring trials.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// WithEnvironment replaces DetectEnvironment.
func WithEnvironment(detect func() Environment) RunnerOption {
	return func(r *Runner) { r.environment = detect }
}

// WithTracer replaces the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) RunnerOption {
	return func(r *Runner) { r.tracer = t }
}

// NewRunner creates a Runner with the given options.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger:      logging.NewZerologAdapter(zerolog.Nop()),
		gcLogger:    zerolog.Nop(),
		recorder:    nopRecorder{},
		gcMode:      memory.GCModeAuto,
		now:         time.Now,
		environment: DetectEnvironment,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}
	return r
}

// Run executes every trial of m in order and reports each event to rep.
//
// For each size one array is built and reused for all thread counts. A
// thread count of 1 times SequentialSum, any other count times ParallelSum.
// ctx is checked between trials only; a running trial always completes.
// On cancellation the results gathered so far are returned with the error.
func (r *Runner) Run(ctx context.Context, m Matrix, rep Reporter) (Summary, error) {
	start := r.now()
	rep.ReportEnvironment(r.environment())

	var (
		results []Result
		gcStats memory.GCStats
	)
	partial := func() Summary {
		return Summary{Results: results, GC: gcStats, Elapsed: r.now().Sub(start)}
	}

	for idx, size := range m.Sizes {
		if err := ctx.Err(); err != nil {
			return partial(), apperrors.WrapError(err, "benchmark stopped before size %d", size)
		}

		arr, err := arraysum.New(size, r.arrayOpts...)
		if err != nil {
			return partial(), apperrors.BenchmarkError{Size: size, Cause: err}
		}
		r.recorder.ObserveArray(size)
		r.logger.Debug("array generated", logging.Int("size", size))
		rep.ReportSizeStart(size)

		for _, threads := range m.Threads {
			if err := ctx.Err(); err != nil {
				return partial(), apperrors.WrapError(err, "benchmark stopped before size %d threads %d", size, threads)
			}

			res, stats, err := r.runTrial(ctx, arr, threads, rep)
			if err != nil {
				r.logger.Error("trial failed", err, logging.Int("size", size), logging.Int("threads", threads))
				return partial(), apperrors.BenchmarkError{Size: size, Threads: threads, Cause: err}
			}
			res.Array = idx
			gcStats = gcStats.Add(stats)
			results = append(results, res)
			r.recorder.ObserveTrial(res.Size, res.Threads, res.Sum, res.Seconds())
			r.logger.Debug("trial finished",
				logging.Int("size", res.Size),
				logging.Int("threads", res.Threads),
				logging.Int64("sum", res.Sum),
				logging.Duration("elapsed", res.Duration))
			rep.ReportTrial(res)
		}
	}

	summary := partial()
	summary.Mismatches = Analyze(results)
	for _, mm := range summary.Mismatches {
		r.logger.Error("sum mismatch", nil,
			logging.Int("array", mm.Array),
			logging.Int("size", mm.Size),
			logging.Int("threads", mm.Got.Threads),
			logging.Int64("expected", mm.Expected.Sum),
			logging.Int64("got", mm.Got.Sum))
	}
	rep.ReportSummary(summary)
	return summary, nil
}

// runTrial times exactly one reduction call.
func (r *Runner) runTrial(ctx context.Context, arr *arraysum.ArraySum, threads int, rep Reporter) (Result, memory.GCStats, error) {
	_, span := r.tracer.Start(ctx, "bench.trial", trace.WithAttributes(
		attribute.Int("size", arr.Len()),
		attribute.Int("threads", threads),
	))
	defer span.End()

	gc := memory.NewGCController(r.gcMode, arr.Len())
	gc.SetLogger(r.gcLogger)

	rep.ReportTrialStart(arr.Len(), threads)
	r.logger.Debug("trial started", logging.Int("size", arr.Len()), logging.Int("threads", threads))

	var (
		sum  int64
		err  error
		mode = ModeSequential
	)
	gc.Begin()
	start := r.now()
	if threads == 1 {
		sum = arr.SequentialSum()
	} else {
		mode = ModeParallel
		sum, err = arr.ParallelSum(threads)
	}
	elapsed := r.now().Sub(start)
	gc.End()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, memory.GCStats{}, err
	}
	span.SetAttributes(attribute.Int64("sum", sum), attribute.String("mode", mode))

	return Result{
		Size:     arr.Len(),
		Threads:  threads,
		Sum:      sum,
		Duration: elapsed,
		Mode:     mode,
	}, gc.Stats(), nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveArray(int)                      {}
func (nopRecorder) ObserveTrial(int, int, int64, float64) {}
