package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/openresume/resume-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer is a single layout strategy: a pure mapping from a resume record
// and a paper size to a standalone HTML document.
type Renderer interface {
	Name() types.TemplateName
	Render(data *types.ResumeData, size types.PaperSize) (string, error)
}

type htmlRenderer struct {
	name types.TemplateName
	tmpl *template.Template
}

// strategies holds one parsed layout per template identifier. Templates are
// embedded, so a parse failure is a build defect and panics at init.
var strategies = func() map[types.TemplateName]*htmlRenderer {
	m := make(map[types.TemplateName]*htmlRenderer, len(types.Templates()))
	for _, info := range types.Templates() {
		file := fmt.Sprintf("templates/%s.tmpl", info.ID)
		m[info.ID] = &htmlRenderer{
			name: info.ID,
			tmpl: template.Must(template.ParseFS(templateFS, file)),
		}
	}
	return m
}()

// ForTemplate returns the layout strategy for name. Unknown identifiers fall
// back to the default strategy rather than failing.
func ForTemplate(name types.TemplateName) Renderer {
	return strategies[types.NormalizeTemplate(name)]
}

// Render renders a record using its embedded template and paper size
// selectors.
func Render(data *types.ResumeData) (string, error) {
	if data == nil {
		data = types.NewDefaultResume()
	}
	return ForTemplate(data.Template).Render(data, data.PaperSize)
}

// Name implements Renderer.
func (r *htmlRenderer) Name() types.TemplateName {
	return r.name
}

// Render implements Renderer.
func (r *htmlRenderer) Render(data *types.ResumeData, size types.PaperSize) (string, error) {
	view := NewView(data, size)

	var buf strings.Builder
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", &TemplateError{
			Template: string(r.name),
			Message:  "failed to execute layout",
			Cause:    err,
		}
	}
	return buf.String(), nil
}
