package metrics

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_backend_requests_total",
			Help: "Total number of calls to the analysis backend",
		},
		[]string{"endpoint", "status"}, // status: success|api_error|error
	)

	BackendLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_backend_latency_seconds",
			Help:    "Analysis backend call latency in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"endpoint"},
	)

	Renders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_renders_total",
			Help: "Total number of container renders",
		},
		[]string{"container", "outcome"}, // outcome: success|error|stale|redraw
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_active_sessions",
			Help: "Number of page sessions held in memory",
		},
	)
)

var registerOnce sync.Once

// Init registers all metrics with Prometheus
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(BackendRequests)
		prometheus.MustRegister(BackendLatency)
		prometheus.MustRegister(Renders)
		prometheus.MustRegister(ActiveSessions)
	})
}

// Handler exposes the default registry for echo.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
