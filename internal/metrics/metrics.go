package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "skill_insight"

type Metrics struct {
	registry *prometheus.Registry

	viewRenders  *prometheus.CounterVec
	viewDuration *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	postings     prometheus.Gauge
}

// New registers collectors on a private registry so tests and the CLI can
// build as many instances as they need.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		viewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_renders_total",
			Help:      "Dashboard view renders by view and outcome.",
		}, []string{"view", "outcome"}),
		viewDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_render_duration_seconds",
			Help:      "Time spent computing a dashboard view.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"view"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "view_cache_lookups_total",
			Help:      "View cache lookups by view and result.",
		}, []string{"view", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		postings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_postings",
			Help:      "Number of postings in the loaded dataset.",
		}),
	}
	reg.MustRegister(m.viewRenders, m.viewDuration, m.cacheLookups, m.httpRequests, m.postings)
	return m
}

func (m *Metrics) ObserveView(view string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.viewRenders.WithLabelValues(view, outcome).Inc()
	m.viewDuration.WithLabelValues(view).Observe(d.Seconds())
}

func (m *Metrics) CacheLookup(view string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(view, result).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) SetPostings(n int) {
	if m == nil {
		return
	}
	m.postings.Set(float64(n))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
