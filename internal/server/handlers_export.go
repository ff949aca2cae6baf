package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openresume/resume-builder/internal/export"
	"github.com/openresume/resume-builder/internal/rendering"
	"github.com/openresume/resume-builder/internal/storage"
)

// handleExportJSON serves the working resume as a downloadable JSON file.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	data := s.adapter.LoadResume(r.Context())

	payload, err := storage.ExportJSON(data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to serialize resume: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", storage.JSONFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload); err != nil {
		s.log.WithError(err).Error("failed to write JSON export")
	}
}

// handleExportHTML serves the rendered document for the working resume, as
// shown in the print preview.
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	data := s.adapter.LoadResume(r.Context())

	html, err := rendering.Render(data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Rendering failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := fmt.Fprint(w, html); err != nil {
		s.log.WithError(err).Error("failed to write HTML export")
	}
}

// handleExportPDF prints the working resume to PDF. Only one print runs at a
// time; a second request while one is in flight gets 409 Conflict.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data := s.adapter.LoadResume(r.Context())

	pdf, err := s.exporter.Export(r.Context(), data)
	if err != nil {
		if errors.Is(err, export.ErrExportInFlight) {
			s.errorResponse(w, http.StatusConflict, err.Error())
			return
		}
		s.errorResponse(w, HTTPStatus(err), "PDF generation failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.PDFFilename(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.log.WithError(err).Error("failed to write PDF export")
	}
}
