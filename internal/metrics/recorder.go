package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Recorder accumulates per-trial benchmark metrics in a private Prometheus
// registry.
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.GaugeVec
	sum      *prometheus.GaugeVec
	trials   prometheus.Counter
	arrays   prometheus.Counter
}

// NewRecorder creates a Recorder with Go runtime and process collectors
// registered alongside the benchmark metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sumbench",
			Name:      "trial_duration_seconds",
			Help:      "Wall-clock duration of a single reduction.",
		}, []string{"size", "threads"}),
		sum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sumbench",
			Name:      "trial_sum",
			Help:      "Sum returned by a single reduction.",
		}, []string{"size", "threads"}),
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sumbench",
			Name:      "trials_total",
			Help:      "Number of completed trials.",
		}),
		arrays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sumbench",
			Name:      "arrays_total",
			Help:      "Number of arrays generated.",
		}),
	}
	r.registry.MustRegister(
		r.duration, r.sum, r.trials, r.arrays,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveArray counts a generated array.
func (r *Recorder) ObserveArray(size int) {
	r.arrays.Inc()
}

// ObserveTrial records the outcome of one trial.
func (r *Recorder) ObserveTrial(size, threads int, sum int64, seconds float64) {
	labels := prometheus.Labels{"size": strconv.Itoa(size), "threads": strconv.Itoa(threads)}
	r.duration.With(labels).Set(seconds)
	r.sum.With(labels).Set(float64(sum))
	r.trials.Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp handlers.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the node_exporter textfile
// format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
