package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/stackqr/stackqr/internal/config"
	"github.com/stackqr/stackqr/internal/layers"
	"github.com/stackqr/stackqr/internal/render"
	"github.com/stackqr/stackqr/internal/symbol"
	"github.com/stackqr/stackqr/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// layersHandler generates layer images for a text payload.
func (s *Server) layersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyKB*1024)

	var req LayersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		s.writeErrorResponse(w, "Missing text to encode", http.StatusBadRequest)
		return
	}
	if req.Total == 0 || req.Required == 0 {
		s.writeErrorResponse(w, "Missing layer counts n and k", http.StatusBadRequest)
		return
	}

	defaults := config.DefaultConfig().Output
	if req.BoxSize == 0 {
		req.BoxSize = defaults.BoxSize
	}
	if req.Border == 0 {
		req.Border = defaults.Border
	}

	start := time.Now()
	result, status, err := s.generateLayers(req)
	layerDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		layerRequestsTotal.WithLabelValues("error").Inc()
		s.writeErrorResponse(w, err.Error(), status)
		return
	}
	layerRequestsTotal.WithLabelValues("ok").Inc()
	symbolVersions.Observe(float64(result.SymbolVersion))
	result.Processing.TotalTimeMs = time.Since(start).Milliseconds()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(LayersResponse{Success: true, Result: *result}); err != nil {
		slog.Error("Failed to encode layers response", "error", err)
	}
}

func (s *Server) generateLayers(req LayersRequest) (*LayersResult, int, error) {
	sym, err := symbol.Encode(req.Text)
	if err != nil {
		if errors.Is(err, symbol.ErrEncodingTooLarge) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusInternalServerError, err
	}

	ls, err := layers.Distribute(sym.Matrix, sym.Version, req.Total, req.Required, layers.Options{Seed: req.Seed})
	if err != nil {
		if errors.Is(err, layers.ErrInvalidThreshold) || errors.Is(err, layers.ErrEmptyMatrix) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}
	if ls.ApproxGeometry {
		slog.Warn("Alignment pattern centers approximated", "version", sym.Version)
	}

	result := &LayersResult{
		SymbolVersion:  int(sym.Version),
		MatrixSize:     sym.Matrix.Size(),
		ApproxGeometry: ls.ApproxGeometry,
		Layers:         make([]LayerImage, 0, ls.Layers()),
	}
	for i, mask := range ls.Masks {
		img, rErr := render.Rasterize(mask, req.BoxSize, req.Border)
		if rErr != nil {
			return nil, http.StatusBadRequest, rErr
		}
		var buf bytes.Buffer
		if encErr := png.Encode(&buf, img); encErr != nil {
			return nil, http.StatusInternalServerError, encErr
		}
		result.Layers = append(result.Layers, LayerImage{
			Index:    i,
			Filename: render.LayerFilename("qr_layer_", i, ls.Layers()),
			PNG:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
	}
	return result, http.StatusOK, nil
}

// writeErrorResponse writes a JSON error envelope.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(LayersResponse{Success: false, Error: message}); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding error response: %v\n", err)
	}
}
