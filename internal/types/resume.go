// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// PersonalInfo holds the contact header of a resume. Empty string means absent.
type PersonalInfo struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	LinkedinURL  string `json:"linkedinUrl"`
	PortfolioURL string `json:"portfolioUrl"`
}

// Experience represents a single work entry with a stable ID used for list
// diffing only; the ID carries no relational meaning.
type Experience struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	JobTitle  string   `json:"jobTitle"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	IsPresent bool     `json:"isPresent"`
	Bullets   []string `json:"bullets"`
}

// Education represents a single education entry. All fields are free text;
// dates are never parsed.
type Education struct {
	ID             string `json:"id"`
	School         string `json:"school"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa"`
	Honors         string `json:"honors"`
}

// Certification is a small free-text record with its own stable ID.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Project is a small free-text record with its own stable ID.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ResumeData is the root aggregate holding all user-entered resume content
// and presentation selectors. It is owned by a single editing session and
// replaced wholesale on each edit.
type ResumeData struct {
	Personal           PersonalInfo    `json:"personal"`
	Summary            string          `json:"summary"`
	Experience         []Experience    `json:"experience"`
	Education          []Education     `json:"education"`
	Skills             []string        `json:"skills"`
	Certifications     []Certification `json:"certifications"`
	Languages          []string        `json:"languages"`
	Projects           []Project       `json:"projects"`
	ShowCertifications bool            `json:"showCertifications"`
	ShowLanguages      bool            `json:"showLanguages"`
	ShowProjects       bool            `json:"showProjects"`
	Template           TemplateName    `json:"template"`
	PaperSize          PaperSize       `json:"paperSize"`
}

// NewID returns a fresh unique identifier for list entries.
func NewID() string {
	return uuid.NewString()
}

// NewBlankExperience returns an empty experience entry with one empty bullet,
// matching the shape the editing form expects.
func NewBlankExperience() Experience {
	return Experience{
		ID:      NewID(),
		Bullets: []string{""},
	}
}

// NewBlankEducation returns an empty education entry.
func NewBlankEducation() Education {
	return Education{ID: NewID()}
}

// NewDefaultResume constructs a fresh resume: one blank experience entry, one
// blank education entry, empty lists elsewhere, optional sections off, default
// template and paper size.
func NewDefaultResume() *ResumeData {
	return &ResumeData{
		Experience:     []Experience{NewBlankExperience()},
		Education:      []Education{NewBlankEducation()},
		Skills:         []string{},
		Certifications: []Certification{},
		Languages:      []string{},
		Projects:       []Project{},
		Template:       TemplateCleanModern,
		PaperSize:      PaperA4,
	}
}

// AddSkill appends a skill in insertion order. Exact-match duplicates are
// rejected and leave the list unchanged. Returns true if the skill was added.
func (r *ResumeData) AddSkill(skill string) bool {
	if added, list := appendUnique(r.Skills, skill); added {
		r.Skills = list
		return true
	}
	return false
}

// AddLanguage appends a language with the same dedup rule as AddSkill.
func (r *ResumeData) AddLanguage(lang string) bool {
	if added, list := appendUnique(r.Languages, lang); added {
		r.Languages = list
		return true
	}
	return false
}

func appendUnique(list []string, s string) (bool, []string) {
	for _, existing := range list {
		if existing == s {
			return false, list
		}
	}
	return true, append(list, s)
}

// SetPresent flips the isPresent flag on the experience entry at index i.
// Setting it true clears the stored end date; the two are mutually exclusive.
// Out-of-range indexes are ignored.
func (r *ResumeData) SetPresent(i int, present bool) {
	if i < 0 || i >= len(r.Experience) {
		return
	}
	r.Experience[i].IsPresent = present
	if present {
		r.Experience[i].EndDate = ""
	}
}

// HasContent reports whether an experience entry has a non-blank primary
// identifying field (job title or company). Renderers filter entries that
// fail this check; storage keeps them as-is.
func (e Experience) HasContent() bool {
	return strings.TrimSpace(e.JobTitle) != "" || strings.TrimSpace(e.Company) != ""
}

// HasContent reports whether an education entry names a school.
func (e Education) HasContent() bool {
	return strings.TrimSpace(e.School) != ""
}
