package server

import (
	"encoding/json"
	"net/http"

	"github.com/openresume/resume-builder/internal/schemas"
	"github.com/openresume/resume-builder/internal/types"
)

// TemplateResponse describes one entry of the template registry.
type TemplateResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Premium      bool   `json:"premium"`
	PreviewColor string `json:"previewColor"`
}

// handleGetResume returns the working resume. A ?template= query parameter
// preselects that template on the stored record before it is returned, so a
// gallery link lands the user in the editor with the choice applied.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	data := s.adapter.LoadResume(r.Context())

	if param := r.URL.Query().Get("template"); param != "" {
		if types.IsKnownTemplate(types.TemplateName(param)) {
			data.Template = types.TemplateName(param)
			s.adapter.SaveResume(r.Context(), data)
		}
	}

	s.jsonResponse(w, http.StatusOK, data)
}

// handlePutResume replaces the working resume with the request body.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	var data types.ResumeData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	schemas.ApplyDefaults(&data)
	s.adapter.SaveResume(r.Context(), &data)
	s.jsonResponse(w, http.StatusOK, &data)
}

// handleListTemplates returns the template registry.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	infos := types.Templates()
	resp := make([]TemplateResponse, 0, len(infos))
	for _, info := range infos {
		resp = append(resp, TemplateResponse{
			ID:           string(info.ID),
			Name:         info.Name,
			Description:  info.Description,
			Premium:      info.Premium,
			PreviewColor: info.PreviewColor,
		})
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
