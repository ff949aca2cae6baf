package parsing

import (
	"testing"

	"github.com/openresume/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSampleProfile(t *testing.T) {
	resume := Convert(Parse(sampleProfile))
	require.NotNil(t, resume)

	assert.Equal(t, "John Doe", resume.Personal.FullName)
	assert.Equal(t, "San Francisco, CA", resume.Personal.Location)
	assert.Equal(t, "Senior Software Engineer at Acme Corp", resume.Summary)
	assert.Equal(t, []string{"React", "Node.js", "Python"}, resume.Skills)

	require.Len(t, resume.Experience, 1)
	exp := resume.Experience[0]
	assert.NotEmpty(t, exp.ID)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.True(t, exp.IsPresent, `"Present" end date marks the entry ongoing`)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "MIT", resume.Education[0].School)
	assert.Equal(t, "2018", resume.Education[0].GraduationDate)
}

func TestConvertPresentDetection(t *testing.T) {
	tests := []struct {
		name        string
		endDate     string
		wantPresent bool
	}{
		{"Present", "Present", true},
		{"present lowercase", "present", true},
		{"Current", "Current", true},
		{"CURRENT uppercase", "CURRENT", true},
		{"Plain year", "2021", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := &types.ParsedProfile{
				Experience: []types.ParsedExperience{{Company: "Acme", EndDate: tt.endDate}},
			}
			resume := Convert(parsed)
			require.Len(t, resume.Experience, 1)
			assert.Equal(t, tt.wantPresent, resume.Experience[0].IsPresent)
		})
	}
}

func TestConvertEmptyProfileKeepsDefaults(t *testing.T) {
	resume := Convert(&types.ParsedProfile{})

	// No parsed entries: the default blank experience/education survive.
	require.Len(t, resume.Experience, 1)
	assert.False(t, resume.Experience[0].HasContent())
	require.Len(t, resume.Education, 1)
	assert.False(t, resume.Education[0].HasContent())
	assert.Empty(t, resume.Skills)
	assert.Equal(t, types.DefaultTemplate, resume.Template)
}

func TestConvertNilProfile(t *testing.T) {
	resume := Convert(nil)
	require.NotNil(t, resume)
	require.Len(t, resume.Experience, 1)
}

func TestConvertEmptyBulletsGetPlaceholder(t *testing.T) {
	parsed := &types.ParsedProfile{
		Experience: []types.ParsedExperience{{Company: "Acme", JobTitle: "Engineer"}},
	}
	resume := Convert(parsed)
	require.Len(t, resume.Experience, 1)
	assert.Equal(t, []string{""}, resume.Experience[0].Bullets,
		"entries without bullets get one empty bullet for the form")
}
