package export

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openresume/resume-builder/internal/types"
)

func TestPDFFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		expected string
	}{
		{
			name:     "simple name",
			fullName: "John Doe",
			expected: "John_Doe_resume.pdf",
		},
		{
			name:     "multiple spaces collapse",
			fullName: "John   Doe",
			expected: "John_Doe_resume.pdf",
		},
		{
			name:     "tabs and newlines",
			fullName: "John\tQ.\nDoe",
			expected: "John_Q._Doe_resume.pdf",
		},
		{
			name:     "empty name falls back",
			fullName: "",
			expected: "resume_resume.pdf",
		},
		{
			name:     "single word",
			fullName: "Madonna",
			expected: "Madonna_resume.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := types.NewDefaultResume()
			data.Personal.FullName = tt.fullName
			assert.Equal(t, tt.expected, PDFFilename(data))
		})
	}
}

func TestPDFFilenameNilData(t *testing.T) {
	assert.Equal(t, "resume_resume.pdf", PDFFilename(nil))
}
