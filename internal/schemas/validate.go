// Package schemas provides JSON Schema validation and structural defaulting
// for resume records crossing the import boundary.
//
// Imported JSON is accepted even when structurally incomplete; Validate
// produces an advisory report and ApplyDefaults fills the gaps from the
// default-record constructor so downstream code always sees a well-formed
// record.
package schemas

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/openresume/resume-builder/internal/types"
)

//go:embed resume.schema.json
var resumeSchemaJSON string

// FieldError represents a single validation finding at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SchemaLoadError represents errors parsing the embedded schema itself.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load resume schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load resume schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks raw imported JSON against the resume schema and returns the
// list of findings. The report is advisory: callers import the record either
// way and rely on ApplyDefaults for structural repair.
func Validate(rawJSON []byte) ([]FieldError, error) {
	schemaLoader := gojsonschema.NewStringLoader(resumeSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(rawJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{Message: "validation failed", Cause: err}
	}

	if result.Valid() {
		return nil, nil
	}

	findings := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		findings = append(findings, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return findings, nil
}

// ApplyDefaults fills structural gaps in a deserialized resume from the
// default-record constructor: nil slices become empty, experience and
// education get at least one blank entry, entries without IDs are assigned
// fresh ones, bullets get the single empty placeholder the form expects, and
// unknown template or paper size selectors fall back to the defaults.
func ApplyDefaults(r *types.ResumeData) {
	if r == nil {
		return
	}

	if len(r.Experience) == 0 {
		r.Experience = []types.Experience{types.NewBlankExperience()}
	}
	for i := range r.Experience {
		if r.Experience[i].ID == "" {
			r.Experience[i].ID = types.NewID()
		}
		if len(r.Experience[i].Bullets) == 0 {
			r.Experience[i].Bullets = []string{""}
		}
	}

	if len(r.Education) == 0 {
		r.Education = []types.Education{types.NewBlankEducation()}
	}
	for i := range r.Education {
		if r.Education[i].ID == "" {
			r.Education[i].ID = types.NewID()
		}
	}

	for i := range r.Certifications {
		if r.Certifications[i].ID == "" {
			r.Certifications[i].ID = types.NewID()
		}
	}
	for i := range r.Projects {
		if r.Projects[i].ID == "" {
			r.Projects[i].ID = types.NewID()
		}
	}

	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []types.Certification{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.Projects == nil {
		r.Projects = []types.Project{}
	}

	r.Template = types.NormalizeTemplate(r.Template)
	r.PaperSize = types.NormalizePaperSize(r.PaperSize)
}
