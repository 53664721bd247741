// Package server exposes the processing pipeline, review store and export
// projector over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"receipts-digest/internal/common"
	"receipts-digest/internal/export"
	"receipts-digest/internal/pipeline"
	"receipts-digest/internal/repository"
)

type Server struct {
	source    pipeline.Source
	processor *pipeline.Processor
	receipts  repository.ReceiptRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewServer(
	source pipeline.Source,
	processor *pipeline.Processor,
	receipts repository.ReceiptRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		source:    source,
		processor: processor,
		receipts:  receipts,
		exporter:  exporter,
		logger:    logger,
	}
}

// Handler wires the routes and the CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/drive/files", s.handleListFiles)
	mux.HandleFunc("POST /api/process/batch", s.handleProcessBatch)
	mux.HandleFunc("GET /api/receipts", s.handleListReceipts)
	mux.HandleFunc("PATCH /api/receipts/{id}", s.handleUpdateReceipt)
	mux.HandleFunc("POST /api/export", s.handleExport)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("http.write.failed", "err", err)
	}
}

// writeError maps the three error classes onto status codes: input errors to
// 400, missing resources to 404, unavailable upstreams to 502, the rest to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrUpstream):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("http.request.failed", "err", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
