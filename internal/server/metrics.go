package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stackqr_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stackqr_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Layer generation metrics
	layerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stackqr_layer_requests_total",
			Help: "Total number of layer generation requests",
		},
		[]string{"status"}, // status: ok, error
	)

	layerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stackqr_layer_generation_duration_seconds",
			Help:    "Layer generation duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)

	symbolVersions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stackqr_symbol_version",
			Help:    "QR symbol versions selected by the encoder",
			Buckets: []float64{1, 2, 5, 10, 20, 40},
		},
	)
)
