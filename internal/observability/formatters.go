// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/openresume/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedProfile outputs a human-readable summary of a parsed LinkedIn
// profile, so the user can eyeball what the import recognized.
func (p *Printer) PrintParsedProfile(profile *types.ParsedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.FullName))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	if profile.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", profile.Location))
	}
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", exp.JobTitle))
			if exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", exp.Company))
			}
			sb.WriteString("\n")
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			edu := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.School))
			if edu.Degree != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Degree))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		count := min(len(profile.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(profile.Skills[:count], ", ")))
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("PARSED LINKEDIN PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintResumeSummary outputs a one-box overview of the working resume.
func (p *Printer) PrintResumeSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	name := data.Personal.FullName
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:       %s\n", name))
	sb.WriteString(fmt.Sprintf("Template:   %s\n", types.NormalizeTemplate(data.Template)))
	sb.WriteString(fmt.Sprintf("Paper:      %s\n", types.NormalizePaperSize(data.PaperSize)))

	filled := 0
	for _, exp := range data.Experience {
		if exp.HasContent() {
			filled++
		}
	}
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", filled))

	filled = 0
	for _, edu := range data.Education {
		if edu.HasContent() {
			filled++
		}
	}
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", filled))
	sb.WriteString(fmt.Sprintf("Skills:     %d", len(data.Skills)))

	p.printBox("RESUME", sb.String())
}

// PrintSnapshots outputs the saved resume list.
func (p *Printer) PrintSnapshots(saved []types.SavedResume) {
	if len(saved) == 0 {
		p.printBox("SAVED RESUMES", "(none)")
		return
	}

	var sb strings.Builder
	for _, snapshot := range saved {
		sb.WriteString(fmt.Sprintf("%s\n", snapshot.Name))
		sb.WriteString(fmt.Sprintf("  id: %s  updated: %s\n", snapshot.ID, snapshot.UpdatedAt))
	}

	p.printBox("SAVED RESUMES", strings.TrimRight(sb.String(), "\n"))
}
