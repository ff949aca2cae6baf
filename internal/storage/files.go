package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/openresume/resume-builder/internal/schemas"
	"github.com/openresume/resume-builder/internal/types"
)

// ErrInvalidJSON is returned when an imported file does not contain a JSON
// resume record. The message is part of the import contract.
var ErrInvalidJSON = errors.New("Invalid JSON") //nolint:staticcheck // fixed message, surfaced verbatim

// JSONFilename derives the export file name from the given time:
// resume-<epoch-ms>.json.
func JSONFilename(now time.Time) string {
	return fmt.Sprintf("resume-%d.json", now.UnixMilli())
}

// ExportJSON serializes a record as pretty-printed JSON, round-trippable via
// ImportReader.
func ExportJSON(data *types.ResumeData) ([]byte, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize resume: %w", err)
	}
	return raw, nil
}

// ExportFile writes the record into dir as a timestamped JSON download and
// returns the full path.
func ExportFile(data *types.ResumeData, dir string) (string, error) {
	raw, err := ExportJSON(data)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, JSONFilename(time.Now()))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

// ImportReader parses a JSON resume record from r. Malformed JSON yields
// ErrInvalidJSON. Structurally incomplete records are accepted and repaired
// with the defaulting pass rather than rejected.
func ImportReader(r io.Reader) (*types.ResumeData, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import data: %w", err)
	}
	return ImportJSON(raw)
}

// ImportJSON parses raw bytes per the ImportReader contract.
func ImportJSON(raw []byte) (*types.ResumeData, error) {
	var resume types.ResumeData
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, ErrInvalidJSON
	}
	schemas.ApplyDefaults(&resume)
	return &resume, nil
}

// ImportFile reads and parses a JSON resume file from disk.
func ImportFile(path string) (*types.ResumeData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ImportReader(f)
}
