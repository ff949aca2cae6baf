package types

import "time"

// SavedResume is a labeled snapshot of a resume kept in the saved-resumes
// slot, separate from the active editing record.
type SavedResume struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Data      ResumeData `json:"data"`
	UpdatedAt string     `json:"updatedAt"`
}

// NewSavedResume labels a snapshot of data with a fresh ID and the current
// time.
func NewSavedResume(name string, data ResumeData) SavedResume {
	return SavedResume{
		ID:        NewID(),
		Name:      name,
		Data:      data,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
