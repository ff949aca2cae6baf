// Package rendering maps a resume record onto one of six independent HTML
// layout strategies sharing only the data contract.
package rendering

import "fmt"

// TemplateError represents an error executing a layout template
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error in %s: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error in %s: %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
