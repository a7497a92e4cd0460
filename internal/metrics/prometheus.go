package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bakery_dashboard_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bakery_dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
		[]string{"method", "path"},
	)

	DatasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bakery_dashboard_dataset_rows",
			Help: "Rows loaded into the snapshot, per table",
		},
		[]string{"table"},
	)

	RenderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bakery_dashboard_render_duration_seconds",
			Help:    "Time spent rendering the dashboard page",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	registerOnce sync.Once
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
		prometheus.MustRegister(DatasetRows)
		prometheus.MustRegister(RenderDuration)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
