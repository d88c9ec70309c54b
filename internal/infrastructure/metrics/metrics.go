package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abdoulayediaw-ops/orsre/internal/application/inventory"
	"github.com/abdoulayediaw-ops/orsre/internal/application/usecase"
)

const namespace = "orsre"

var (
	_ inventory.Metrics = (*Recorder)(nil)
	_ usecase.AIMetrics = (*Recorder)(nil)
)

// Recorder contadores de negocio sobre un registro propio (uno por proceso, uno por test).
type Recorder struct {
	registry *prometheus.Registry

	movementsCreated    *prometheus.CounterVec
	movementsResolved   *prometheus.CounterVec
	insightResults      *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New registra los contadores y los colectores de runtime de Go.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		movementsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "movements_created_total",
			Help:      "Movements registered as PENDING, by type.",
		}, []string{"type"}),
		movementsResolved: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "movements_resolved_total",
			Help:      "Approve/reject attempts, by decision and result.",
		}, []string{"decision", "result"}),
		insightResults: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ai",
			Name:      "insights_total",
			Help:      "Narrative summary requests, by result.",
		}, []string{"result"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) MovementCreated(movementType string) {
	r.movementsCreated.WithLabelValues(movementType).Inc()
}

func (r *Recorder) MovementResolved(decision, result string) {
	r.movementsResolved.WithLabelValues(decision, result).Inc()
}

func (r *Recorder) InsightResult(result string) {
	r.insightResults.WithLabelValues(result).Inc()
}

// ObserveHTTP lo llama el middleware de logging al terminar cada request.
func (r *Recorder) ObserveHTTP(method, route, status string, seconds float64) {
	r.httpRequests.WithLabelValues(method, route, status).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// Handler expone el registro en formato Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry acceso directo (tests).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
