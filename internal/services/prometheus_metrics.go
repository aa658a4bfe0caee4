package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by MetricsRecorderInterface.
const (
	MetricStatementGenerated    = "statement.generated"
	MetricStatementGeneration   = "statement.generation"
	MetricBalanceRecalculation  = "balance.recalculation"
	MetricResultPublished       = "result.published"
	MetricResultDeleted         = "result.deleted"
	MetricJobRun                = "job.run"
	MetricJobDuration           = "job.duration"
	MetricCircuitBreakerState   = "circuit_breaker.state"
	MetricAPIError              = "api.error"
	MetricOptimisticLockFailure = "optimistic_lock.conflict"
)

type PrometheusMetrics struct {
	statementsGenerated    *prometheus.CounterVec
	generationDuration     prometheus.Histogram
	balanceRecalculations  *prometheus.CounterVec
	resultsPublished       *prometheus.CounterVec
	resultsDeleted         prometheus.Counter
	jobRuns                *prometheus.CounterVec
	jobDuration            *prometheus.HistogramVec
	circuitBreakerState    *prometheus.GaugeVec
	apiErrors              *prometheus.CounterVec
	optimisticLockFailures *prometheus.CounterVec
}

// NewPrometheusMetrics registers the engine's collectors with reg. A nil reg
// means the default registry, which accepts one registration per process.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		statementsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of account statements generated",
			},
			[]string{"product_type", "status"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_duration_milliseconds",
				Help:    "Batch statement generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		balanceRecalculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_recalculations_total",
				Help: "Total number of daily balance recalculations by outcome",
			},
			[]string{"status"},
		),
		resultsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_results_published_total",
				Help: "Total number of statement results published",
			},
			[]string{"publish_type", "status"},
		),
		resultsDeleted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "statement_results_deleted_total",
				Help: "Total number of superseded statement results deleted",
			},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_job_runs_total",
				Help: "Total number of scheduled job runs",
			},
			[]string{"job", "status"},
		),
		jobDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "statement_job_duration_seconds",
				Help:    "Scheduled job run duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"job"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		apiErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code",
			},
			[]string{"code", "status"},
		),
		optimisticLockFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "optimistic_lock_conflicts_total",
				Help: "Total number of optimistic version conflicts",
			},
			[]string{"entity"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricStatementGenerated:
		m.statementsGenerated.WithLabelValues(tags["product_type"], status).Inc()
	case MetricBalanceRecalculation:
		if status != "" {
			m.balanceRecalculations.WithLabelValues(status).Inc()
		}
	case MetricResultPublished:
		m.resultsPublished.WithLabelValues(tags["publish_type"], status).Inc()
	case MetricResultDeleted:
		m.resultsDeleted.Inc()
	case MetricJobRun:
		m.jobRuns.WithLabelValues(tags["job"], status).Inc()
	case MetricAPIError:
		m.apiErrors.WithLabelValues(tags["code"], status).Inc()
	case MetricOptimisticLockFailure:
		m.optimisticLockFailures.WithLabelValues(tags["entity"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricStatementGeneration:
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	case MetricJobDuration + ".balance_snapshot":
		m.jobDuration.WithLabelValues(JobBalanceSnapshot).Observe(duration.Seconds())
	case MetricJobDuration + ".due_statements":
		m.jobDuration.WithLabelValues(JobDueStatements).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
