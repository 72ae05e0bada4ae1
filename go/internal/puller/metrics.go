package puller

import (
	"strconv"

	"github.com/mcdev12/formulated/go/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records puller runs in Prometheus
type Metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	items    *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewMetrics registers the puller collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formulated",
			Subsystem: "sync",
			Name:      "runs_total",
			Help:      "Puller runs by kind and outcome",
		}, []string{"kind", "success"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "formulated",
			Subsystem: "sync",
			Name:      "duration_seconds",
			Help:      "Wall time of puller runs, pacing included",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400},
		}, []string{"kind"}),
		items: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formulated",
			Subsystem: "sync",
			Name:      "items_total",
			Help:      "Records fetched, created and updated by pullers",
		}, []string{"kind", "action"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formulated",
			Subsystem: "sync",
			Name:      "errors_total",
			Help:      "Error messages recorded by puller runs",
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveRun(run *models.SyncRun) {
	kind := string(run.Kind)
	m.runs.WithLabelValues(kind, strconv.FormatBool(run.Success)).Inc()
	m.duration.WithLabelValues(kind).Observe(run.FinishedAt.Sub(run.StartedAt).Seconds())
	for action, n := range run.Counts {
		m.items.WithLabelValues(kind, action).Add(float64(n))
	}
	m.errors.WithLabelValues(kind).Add(float64(len(run.Errors)))
}
