package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"receipts-digest/internal/common"
	"receipts-digest/internal/drive"
	"receipts-digest/internal/entity"
	"receipts-digest/internal/export"
	"receipts-digest/internal/repository"
)

// maxRequestBody caps JSON payloads read off the wire.
const maxRequestBody = 1 << 20

// handleListFiles resolves a folder URL or bare id and lists its PDF files.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	folder := r.URL.Query().Get("folder")
	if folder == "" {
		s.writeError(w, common.InvalidInputError("folder query parameter is required"))
		return
	}
	folderID, ok := drive.ExtractFolderID(folder)
	if !ok {
		s.writeError(w, common.InvalidInputError("could not extract folder id from URL"))
		return
	}
	if s.source == nil {
		s.writeError(w, common.NewAppError("INTERNAL", "drive source is not configured", common.ErrInternal))
		return
	}

	files, err := s.source.List(r.Context(), folderID)
	if err != nil {
		s.writeError(w, common.UpstreamError("drive", err))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

type processBatchRequest struct {
	FileIDs []string `json:"file_ids"`
}

// handleProcessBatch runs the pipeline over the requested files and persists
// the successes before responding.
func (s *Server) handleProcessBatch(w http.ResponseWriter, r *http.Request) {
	var req processBatchRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.writeError(w, common.InvalidInputError("invalid JSON body"))
		return
	}

	result, err := s.processor.ProcessBatch(r.Context(), req.FileIDs)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.receipts.SaveBatch(r.Context(), result.Receipts); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListReceipts(w http.ResponseWriter, r *http.Request) {
	receipts, err := s.receipts.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if receipts == nil {
		receipts = []*entity.ProcessedReceipt{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"receipts": receipts})
}

func (s *Server) handleUpdateReceipt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.writeError(w, common.InvalidInputError("receipt id is required"))
		return
	}

	var req repository.UpdateReceiptRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.writeError(w, common.InvalidInputError("invalid JSON body"))
		return
	}

	updated, err := s.receipts.UpdateFields(r.Context(), id, &req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

type exportRequest struct {
	ReceiptIDs []string             `json:"receipt_ids"`
	Fields     []entity.ExportField `json:"fields"`
}

// handleExport validates the payload against the export schema, loads the
// selected receipts (all of them when no ids are given) and streams back the
// workbook as an attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, common.InvalidInputError("could not read request body"))
		return
	}

	var req exportRequest
	if len(body) > 0 {
		schema := export.BuildExportRequestJSONSchema(entity.AllExportFieldKeys())
		if err := export.ValidateJSONAgainstSchema(schema, body); err != nil {
			s.writeError(w, common.NewAppError("VALIDATION", err.Error(), common.ErrValidation))
			return
		}
		if err := json.Unmarshal(body, &req); err != nil {
			s.writeError(w, common.InvalidInputError("invalid JSON body"))
			return
		}
	}

	var receipts []*entity.ProcessedReceipt
	if len(req.ReceiptIDs) > 0 {
		receipts, err = s.receipts.GetByIDs(r.Context(), req.ReceiptIDs)
	} else {
		receipts, err = s.receipts.List(r.Context())
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := s.exporter.BuildXLSX(receipts, req.Fields)
	if err != nil {
		s.writeError(w, err)
		return
	}

	fileName := fmt.Sprintf("receipts-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("export.write.failed", "err", err)
	}
}
