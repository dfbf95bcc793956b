package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for rendering and serving. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	renders        *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	requests       *prometheus.CounterVec
	gatherer       prometheus.Gatherer
}

// New registers the collectors on reg. Pass a fresh registry in tests.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isotodo_renders_total",
			Help: "Page renders by page pattern and outcome",
		}, []string{"page", "outcome"}),
		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "isotodo_render_duration_seconds",
			Help:    "Time spent rendering a page into the layout",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"page"}),
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "isotodo_http_requests_total",
			Help: "HTTP requests by handler and status code",
		}, []string{"handler", "code"}),
		gatherer: reg,
	}
}

func (m *Metrics) ObserveRender(page string, d time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.renders.WithLabelValues(page, outcome).Inc()
	m.renderDuration.WithLabelValues(page).Observe(d.Seconds())
}

func (m *Metrics) ObserveRequest(handler string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
