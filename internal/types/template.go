package types

// TemplateName identifies one of the six fixed layout strategies.
type TemplateName string

// The closed set of template identifiers. Unknown values fall back to
// TemplateCleanModern at normalization and dispatch time.
const (
	TemplateCleanModern TemplateName = "clean-modern"
	TemplateTwoColumn   TemplateName = "two-column"
	TemplateMinimal     TemplateName = "minimal"
	TemplateExecutive   TemplateName = "executive"
	TemplateCreative    TemplateName = "creative"
	TemplateTechnical   TemplateName = "technical"
)

// DefaultTemplate is the fallback layout strategy.
const DefaultTemplate = TemplateCleanModern

// PaperSize selects one of the two physical page dimensions.
type PaperSize string

// Supported paper sizes. Unknown values fall back to PaperA4.
const (
	PaperA4     PaperSize = "a4"
	PaperLetter PaperSize = "letter"
)

// DefaultPaperSize is the fallback page dimension.
const DefaultPaperSize = PaperA4

// TemplateInfo describes a layout strategy for template pickers.
type TemplateInfo struct {
	ID           TemplateName `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Premium      bool         `json:"premium"`
	PreviewColor string       `json:"previewColor"`
}

// Templates returns the fixed registry of the six layout strategies in
// display order.
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{ID: TemplateCleanModern, Name: "Clean Modern", Description: "Single column, whitespace, sans-serif.", Premium: false, PreviewColor: "#1a1a1a"},
		{ID: TemplateTwoColumn, Name: "Two Column", Description: "Sidebar with contact/skills, main area for experience.", Premium: false, PreviewColor: "#2563eb"},
		{ID: TemplateMinimal, Name: "Minimal", Description: "Just typography, no lines or boxes.", Premium: false, PreviewColor: "#666666"},
		{ID: TemplateExecutive, Name: "Executive", Description: "Serif fonts, subtle horizontal rules.", Premium: true, PreviewColor: "#1e3a5f"},
		{ID: TemplateCreative, Name: "Creative", Description: "Accent color sidebar, modern feel.", Premium: true, PreviewColor: "#7c3aed"},
		{ID: TemplateTechnical, Name: "Technical", Description: "Monospace section headers, code-inspired.", Premium: true, PreviewColor: "#059669"},
	}
}

// IsKnownTemplate reports whether name is one of the six template identifiers.
func IsKnownTemplate(name TemplateName) bool {
	switch name {
	case TemplateCleanModern, TemplateTwoColumn, TemplateMinimal,
		TemplateExecutive, TemplateCreative, TemplateTechnical:
		return true
	}
	return false
}

// NormalizeTemplate maps unknown template values to the default strategy.
func NormalizeTemplate(name TemplateName) TemplateName {
	if IsKnownTemplate(name) {
		return name
	}
	return DefaultTemplate
}

// NormalizePaperSize maps unknown paper size values to the default size.
func NormalizePaperSize(size PaperSize) PaperSize {
	switch size {
	case PaperA4, PaperLetter:
		return size
	}
	return DefaultPaperSize
}

// Dimensions returns the physical page size in inches, as consumed by the
// PDF print pipeline.
func (p PaperSize) Dimensions() (widthInches, heightInches float64) {
	switch NormalizePaperSize(p) {
	case PaperLetter:
		return 8.5, 11.0
	default:
		// A4: 210mm x 297mm
		return 8.27, 11.69
	}
}
