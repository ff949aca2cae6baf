package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openresume/resume-builder/internal/types"
)

func TestDateRange(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		isPresent bool
		want      string
	}{
		{"Both sides", "Jan 2020", "Dec 2022", false, "Jan 2020 — Dec 2022"},
		{"Present overrides stored end date", "Jan 2020", "Dec 2022", true, "Jan 2020 — Present"},
		{"Present with empty end", "Jan 2020", "", true, "Jan 2020 — Present"},
		{"Only start", "Jan 2020", "", false, "Jan 2020"},
		{"Only end", "", "Dec 2022", false, "Dec 2022"},
		{"Both empty", "", "", false, ""},
		{"Present with no start", "", "", true, "Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRange(tt.start, tt.end, tt.isPresent))
		})
	}
}

func TestEducationDetail(t *testing.T) {
	tests := []struct {
		name string
		edu  types.Education
		want string
	}{
		{
			name: "All parts",
			edu:  types.Education{Degree: "B.S.", FieldOfStudy: "Computer Science", GPA: "3.9", Honors: "summa cum laude"},
			want: "B.S. in Computer Science — GPA: 3.9 — summa cum laude",
		},
		{
			name: "Degree only",
			edu:  types.Education{Degree: "B.S."},
			want: "B.S.",
		},
		{
			name: "Field without degree",
			edu:  types.Education{FieldOfStudy: "Computer Science"},
			want: "Computer Science",
		},
		{
			name: "GPA without degree has no leading separator",
			edu:  types.Education{GPA: "3.9"},
			want: "GPA: 3.9",
		},
		{
			name: "Empty entry",
			edu:  types.Education{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, educationDetail(tt.edu))
		})
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "https://example.com", Href("example.com"))
	assert.Equal(t, "https://example.com", Href("https://example.com"))
	assert.Equal(t, "http://example.com", Href("http://example.com"))
}

func TestNewViewFiltersBlankEntries(t *testing.T) {
	data := types.NewDefaultResume()
	data.Experience = []types.Experience{
		{ID: types.NewID(), JobTitle: "Engineer", Company: "Acme", Bullets: []string{"Did work", "", "More work"}},
		{ID: types.NewID(), Bullets: []string{""}},
	}
	data.Education = []types.Education{
		{ID: types.NewID(), School: "MIT"},
		{ID: types.NewID(), Degree: "dangling degree without school"},
	}
	data.Skills = []string{"Go", "", "  ", "Rust"}

	v := NewView(data, types.PaperA4)

	require.Len(t, v.Experience, 1, "blank experience entries filtered")
	assert.Equal(t, []string{"Did work", "More work"}, v.Experience[0].Bullets)
	require.Len(t, v.Education, 1, "education without school filtered")
	assert.Equal(t, []string{"Go", "Rust"}, v.Skills)
	assert.True(t, v.ShowExperience)
	assert.True(t, v.ShowEducation)
}

func TestNewViewEmptySequencesTolerated(t *testing.T) {
	data := types.NewDefaultResume()
	data.Experience = nil
	data.Education = nil

	v := NewView(data, types.PaperA4)
	assert.False(t, v.ShowExperience)
	assert.False(t, v.ShowEducation)
}

func TestNewViewOptionalSectionGating(t *testing.T) {
	tests := []struct {
		name     string
		flag     bool
		projects []types.Project
		want     bool
	}{
		{"Flag off with entries", false, []types.Project{{ID: "1", Name: "thing"}}, false},
		{"Flag on with empty list", true, nil, false},
		{"Flag on with entries", true, []types.Project{{ID: "1", Name: "thing"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := types.NewDefaultResume()
			data.ShowProjects = tt.flag
			data.Projects = tt.projects
			v := NewView(data, types.PaperA4)
			assert.Equal(t, tt.want, v.ShowProjects)
		})
	}
}

func TestNewViewPlaceholderName(t *testing.T) {
	v := NewView(types.NewDefaultResume(), types.PaperA4)
	assert.Equal(t, "Your Name", v.Name)
}

func TestNewViewPageDimensions(t *testing.T) {
	v := NewView(types.NewDefaultResume(), types.PaperA4)
	assert.Equal(t, PageView{Width: "210mm", Height: "297mm"}, v.Page)

	v = NewView(types.NewDefaultResume(), types.PaperLetter)
	assert.Equal(t, PageView{Width: "8.5in", Height: "11in"}, v.Page)

	// Unrecognized sizes default to the first.
	v = NewView(types.NewDefaultResume(), "tabloid")
	assert.Equal(t, PageView{Width: "210mm", Height: "297mm"}, v.Page)
}

func TestNewViewNilData(t *testing.T) {
	assert.NotPanics(t, func() { NewView(nil, types.PaperA4) })
}

func TestNewViewLanguagesLine(t *testing.T) {
	data := types.NewDefaultResume()
	data.ShowLanguages = true
	data.Languages = []string{"English", "Spanish"}
	v := NewView(data, types.PaperA4)
	assert.Equal(t, "English, Spanish", v.LanguagesLine)
	assert.True(t, v.ShowLanguages)
}

func TestNewViewCertificationTitle(t *testing.T) {
	data := types.NewDefaultResume()
	data.ShowCertifications = true
	data.Certifications = []types.Certification{
		{ID: "1", Name: "AWS SA", Issuer: "Amazon", Date: "2021"},
		{ID: "2", Name: "CKA"},
	}
	v := NewView(data, types.PaperA4)
	require.Len(t, v.Certifications, 2)
	assert.Equal(t, "AWS SA — Amazon", v.Certifications[0].Title)
	assert.Equal(t, "CKA", v.Certifications[1].Title, "no dangling separator without issuer")
}
