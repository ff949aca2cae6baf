package export

import (
	"regexp"

	"github.com/openresume/resume-builder/internal/types"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// PDFFilename derives the download name from the resume owner's full name.
// Whitespace runs become underscores; a blank name falls back to "resume".
func PDFFilename(data *types.ResumeData) string {
	name := "resume"
	if data != nil && data.Personal.FullName != "" {
		name = whitespaceRe.ReplaceAllString(data.Personal.FullName, "_")
	}
	return name + "_resume.pdf"
}
