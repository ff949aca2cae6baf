package rendering

import (
	"strings"

	"github.com/openresume/resume-builder/internal/types"
)

// View is the data contract every layout strategy consumes. It carries the
// record with the shared display rules already applied: blank placeholder
// entries filtered, date ranges formatted, derived strings joined without
// dangling separators, and optional sections gated by their show flags.
type View struct {
	Name     string
	Personal types.PersonalInfo
	Contacts []string
	Links    []Link
	Summary  string

	ShowExperience bool
	Experience     []ExperienceView

	ShowEducation bool
	Education     []EducationView

	ShowSkills bool
	Skills     []string

	ShowCertifications bool
	Certifications     []CertificationView

	ShowLanguages bool
	Languages     []string
	LanguagesLine string

	ShowProjects bool
	Projects     []ProjectView

	Page PageView
}

// Link pairs display text with a clickable destination.
type Link struct {
	Label string
	Href  string
}

// ExperienceView is a work entry ready for display.
type ExperienceView struct {
	JobTitle  string
	Company   string
	DateRange string
	Bullets   []string
}

// EducationView is an education entry ready for display.
type EducationView struct {
	School         string
	GraduationDate string
	Detail         string
}

// CertificationView is a certification line ready for display.
type CertificationView struct {
	Name   string
	Issuer string
	Title  string
	Date   string
}

// ProjectView is a project entry ready for display.
type ProjectView struct {
	Name        string
	URL         string
	Href        string
	Description string
}

// PageView carries the physical page dimensions as CSS lengths.
type PageView struct {
	Width  string
	Height string
}

// NewView applies the shared rendering rules to a record. The paper size is
// passed separately so callers can override the embedded selector.
func NewView(data *types.ResumeData, size types.PaperSize) View {
	if data == nil {
		data = types.NewDefaultResume()
	}

	v := View{
		Name:     data.Personal.FullName,
		Personal: data.Personal,
		Summary:  data.Summary,
		Page:     pageView(size),
	}
	if v.Name == "" {
		v.Name = "Your Name"
	}

	for _, c := range []string{data.Personal.Email, data.Personal.Phone, data.Personal.Location} {
		if c != "" {
			v.Contacts = append(v.Contacts, c)
		}
	}
	for _, u := range []string{data.Personal.LinkedinURL, data.Personal.PortfolioURL} {
		if u != "" {
			v.Links = append(v.Links, Link{Label: u, Href: Href(u)})
		}
	}

	for _, exp := range data.Experience {
		if !exp.HasContent() {
			continue
		}
		v.Experience = append(v.Experience, ExperienceView{
			JobTitle:  exp.JobTitle,
			Company:   exp.Company,
			DateRange: DateRange(exp.StartDate, exp.EndDate, exp.IsPresent),
			Bullets:   nonEmpty(exp.Bullets),
		})
	}
	v.ShowExperience = len(v.Experience) > 0

	for _, edu := range data.Education {
		if !edu.HasContent() {
			continue
		}
		v.Education = append(v.Education, EducationView{
			School:         edu.School,
			GraduationDate: edu.GraduationDate,
			Detail:         educationDetail(edu),
		})
	}
	v.ShowEducation = len(v.Education) > 0

	v.Skills = nonEmpty(data.Skills)
	v.ShowSkills = len(v.Skills) > 0

	if data.ShowCertifications {
		for _, cert := range data.Certifications {
			v.Certifications = append(v.Certifications, CertificationView{
				Name:   cert.Name,
				Issuer: cert.Issuer,
				Title:  joinPresent(" — ", cert.Name, cert.Issuer),
				Date:   cert.Date,
			})
		}
	}
	v.ShowCertifications = data.ShowCertifications && len(v.Certifications) > 0

	if data.ShowLanguages {
		v.Languages = nonEmpty(data.Languages)
	}
	v.ShowLanguages = data.ShowLanguages && len(v.Languages) > 0
	v.LanguagesLine = strings.Join(v.Languages, ", ")

	if data.ShowProjects {
		for _, proj := range data.Projects {
			pv := ProjectView{
				Name:        proj.Name,
				URL:         proj.URL,
				Description: proj.Description,
			}
			if proj.URL != "" {
				pv.Href = Href(proj.URL)
			}
			v.Projects = append(v.Projects, pv)
		}
	}
	v.ShowProjects = data.ShowProjects && len(v.Projects) > 0

	return v
}

// DateRange formats "start — end", substituting "Present" for the end while
// the role is ongoing. A stored end date is ignored in that case regardless
// of its content. When either side is blank the separator is omitted.
func DateRange(start, end string, isPresent bool) string {
	if isPresent {
		end = "Present"
	}
	if start != "" && end != "" {
		return start + " — " + end
	}
	return start + end
}

// educationDetail joins degree, field of study, GPA and honors with fixed
// separators, skipping absent parts so no punctuation dangles.
func educationDetail(edu types.Education) string {
	degree := edu.Degree
	if degree != "" && edu.FieldOfStudy != "" {
		degree = degree + " in " + edu.FieldOfStudy
	} else if edu.FieldOfStudy != "" {
		degree = edu.FieldOfStudy
	}

	gpa := ""
	if edu.GPA != "" {
		gpa = "GPA: " + edu.GPA
	}

	return joinPresent(" — ", degree, gpa, edu.Honors)
}

// Href prefixes bare domains with https:// so links stay clickable.
func Href(url string) string {
	if strings.HasPrefix(url, "http") {
		return url
	}
	return "https://" + url
}

func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func pageView(size types.PaperSize) PageView {
	switch types.NormalizePaperSize(size) {
	case types.PaperLetter:
		return PageView{Width: "8.5in", Height: "11in"}
	default:
		return PageView{Width: "210mm", Height: "297mm"}
	}
}
