// Package server exposes layer generation over HTTP: POST /v1/layers
// encodes text and returns the n layer images inline as base64 PNGs.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server handles layer generation requests.
type Server struct {
	corsOrigin string
	maxBodyKB  int64
	timeoutSec int
}

// Config holds server configuration.
type Config struct {
	Host       string
	Port       int
	CORSOrigin string
	MaxBodyKB  int64
	TimeoutSec int
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// LayersRequest is the JSON body of POST /v1/layers.
type LayersRequest struct {
	Text     string `json:"text"`
	Total    int    `json:"n"`
	Required int    `json:"k"`
	BoxSize  int    `json:"box_size,omitempty"`
	Border   int    `json:"border,omitempty"`
	Seed     uint64 `json:"seed,omitempty"`
}

// LayerImage is one generated layer in a LayersResponse.
type LayerImage struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	PNG      string `json:"png_base64"`
}

// LayersResult carries the generation outcome.
type LayersResult struct {
	SymbolVersion  int          `json:"symbol_version"`
	MatrixSize     int          `json:"matrix_size"`
	ApproxGeometry bool         `json:"approx_geometry,omitempty"`
	Layers         []LayerImage `json:"layers"`
	Processing     struct {
		TotalTimeMs int64 `json:"total_time_ms"`
	} `json:"processing"`
}

// LayersResponse is the JSON envelope of POST /v1/layers.
type LayersResponse struct {
	Success bool         `json:"success"`
	Result  LayersResult `json:"result,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// NewServer creates a new layer generation server instance.
func NewServer(config Config) *Server {
	return &Server{
		corsOrigin: config.CORSOrigin,
		maxBodyKB:  config.MaxBodyKB,
		timeoutSec: config.TimeoutSec,
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))

	var layersRoute http.Handler = http.HandlerFunc(s.corsMiddleware(s.layersHandler))
	if s.timeoutSec > 0 {
		layersRoute = http.TimeoutHandler(layersRoute, time.Duration(s.timeoutSec)*time.Second, "Request timed out")
	}
	mux.Handle("/v1/layers", layersRoute)

	mux.Handle("/metrics", promhttp.Handler())
}
