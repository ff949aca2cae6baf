package server

import (
	"encoding/json"
	"net/http"

	"github.com/openresume/resume-builder/internal/types"
)

// CreateSnapshotRequest represents the request body for POST /snapshots.
type CreateSnapshotRequest struct {
	Name string `json:"name"`
}

// handleListSnapshots returns all saved resume snapshots.
func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	saved := s.adapter.LoadSavedResumes(r.Context())
	s.jsonResponse(w, http.StatusOK, saved)
}

// handleCreateSnapshot saves the working resume under a name.
func (s *Server) handleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	var req CreateSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	data := s.adapter.LoadResume(r.Context())
	snapshot := types.NewSavedResume(req.Name, *data)

	saved := s.adapter.LoadSavedResumes(r.Context())
	saved = append(saved, snapshot)
	s.adapter.SaveSavedResumes(r.Context(), saved)

	s.jsonResponse(w, http.StatusCreated, snapshot)
}

// handleGetSnapshot returns one snapshot by ID.
func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snapshot, _, found := s.findSnapshot(r, id)
	if !found {
		err := &ErrSnapshotNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}

// handleRestoreSnapshot makes a snapshot the working resume.
func (s *Server) handleRestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snapshot, _, found := s.findSnapshot(r, id)
	if !found {
		err := &ErrSnapshotNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data := snapshot.Data
	s.adapter.SaveResume(r.Context(), &data)
	s.jsonResponse(w, http.StatusOK, &data)
}

// handleDeleteSnapshot removes a snapshot.
func (s *Server) handleDeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	saved := s.adapter.LoadSavedResumes(r.Context())

	index := -1
	for i, snapshot := range saved {
		if snapshot.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		err := &ErrSnapshotNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	saved = append(saved[:index], saved[index+1:]...)
	s.adapter.SaveSavedResumes(r.Context(), saved)
	w.WriteHeader(http.StatusNoContent)
}

// findSnapshot looks up a snapshot by ID in the saved list.
func (s *Server) findSnapshot(r *http.Request, id string) (types.SavedResume, int, bool) {
	saved := s.adapter.LoadSavedResumes(r.Context())
	for i, snapshot := range saved {
		if snapshot.ID == id {
			return snapshot, i, true
		}
	}
	return types.SavedResume{}, -1, false
}
