package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/openresume/resume-builder/internal/parsing"
	"github.com/openresume/resume-builder/internal/storage"
	"github.com/openresume/resume-builder/internal/types"
)

// ImportLinkedInRequest represents the request body for /import/linkedin.
// Exactly one of text or html should be set; html is reduced to text first.
type ImportLinkedInRequest struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
}

// ImportLinkedInResponse carries both the intermediate parse and the
// converted record, so a client can show what was recognized.
type ImportLinkedInResponse struct {
	Profile *types.ParsedProfile `json:"profile"`
	Resume  *types.ResumeData    `json:"resume"`
}

// handleImportLinkedIn parses pasted LinkedIn profile text into a resume and
// makes it the working resume.
func (s *Server) handleImportLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req ImportLinkedInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	text := req.Text
	if text == "" && req.HTML != "" {
		extracted, err := parsing.ExtractText(req.HTML)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to extract text from HTML: "+err.Error())
			return
		}
		text = extracted
	}
	if text == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either text or html is required")
		return
	}

	profile := parsing.Parse(text)
	data := parsing.Convert(profile)
	s.adapter.SaveResume(r.Context(), data)

	s.jsonResponse(w, http.StatusOK, ImportLinkedInResponse{
		Profile: profile,
		Resume:  data,
	})
}

// handleImportJSON replaces the working resume with an uploaded JSON export.
func (s *Server) handleImportJSON(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	data, err := storage.ImportJSON(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.adapter.SaveResume(r.Context(), data)
	s.jsonResponse(w, http.StatusOK, data)
}
