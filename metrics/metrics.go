package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry содержит все метрики приложения
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SessionsCreated     prometheus.Counter
	SessionBatchesTotal *prometheus.CounterVec
	ExpiredTokensPurged prometheus.Counter
}

// NewRegistry создает новый реестр метрик
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route"},
		),
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "court_sessions_created_total",
			Help: "Sessions inserted by the batch creation workflow",
		}),
		SessionBatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "court_session_batches_total",
				Help: "Session batch creation attempts by outcome",
			},
			[]string{"outcome"},
		),
		ExpiredTokensPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "refresh_tokens_purged_total",
			Help: "Expired refresh tokens removed by the cleanup job",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		r.SessionsCreated,
		r.SessionBatchesTotal,
		r.ExpiredTokensPurged,
	)
	return r
}

// Исходы пакетного создания сессий.
const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func (r *Registry) ObserveSessionBatch(outcome string, sessions int) {
	r.SessionBatchesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeCreated {
		r.SessionsCreated.Add(float64(sessions))
	}
}

func (r *Registry) ObserveTokensPurged(n int64) {
	if n > 0 {
		r.ExpiredTokensPurged.Add(float64(n))
	}
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Middleware records count and latency per chi route pattern.
func (r *Registry) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		r.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
