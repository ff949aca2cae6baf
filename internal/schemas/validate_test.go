package schemas

import (
	"testing"

	"github.com/openresume/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantFindings bool
	}{
		{
			name:         "Empty object is structurally valid",
			json:         `{}`,
			wantFindings: false,
		},
		{
			name:         "Wrong field type reported",
			json:         `{"skills": "Go"}`,
			wantFindings: true,
		},
		{
			name:         "Wrong nested type reported",
			json:         `{"experience": [{"bullets": [1, 2]}]}`,
			wantFindings: true,
		},
		{
			name:         "Unknown fields tolerated",
			json:         `{"futureField": true}`,
			wantFindings: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings, err := Validate([]byte(tt.json))
			require.NoError(t, err)
			if tt.wantFindings {
				assert.NotEmpty(t, findings)
			} else {
				assert.Empty(t, findings)
			}
		})
	}
}

func TestApplyDefaultsEmptyRecord(t *testing.T) {
	var r types.ResumeData
	ApplyDefaults(&r)

	require.Len(t, r.Experience, 1)
	assert.NotEmpty(t, r.Experience[0].ID)
	assert.Equal(t, []string{""}, r.Experience[0].Bullets)

	require.Len(t, r.Education, 1)
	assert.NotEmpty(t, r.Education[0].ID)

	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Certifications)
	assert.NotNil(t, r.Languages)
	assert.NotNil(t, r.Projects)

	assert.Equal(t, types.DefaultTemplate, r.Template)
	assert.Equal(t, types.DefaultPaperSize, r.PaperSize)
}

func TestApplyDefaultsPreservesContent(t *testing.T) {
	r := types.ResumeData{
		Experience: []types.Experience{{
			Company: "Acme",
			Bullets: []string{"Did things"},
		}},
		Skills:    []string{"Go"},
		Template:  types.TemplateTechnical,
		PaperSize: types.PaperLetter,
	}
	ApplyDefaults(&r)

	require.Len(t, r.Experience, 1)
	assert.Equal(t, "Acme", r.Experience[0].Company)
	assert.NotEmpty(t, r.Experience[0].ID, "missing ID assigned")
	assert.Equal(t, []string{"Did things"}, r.Experience[0].Bullets)
	assert.Equal(t, []string{"Go"}, r.Skills)
	assert.Equal(t, types.TemplateTechnical, r.Template)
	assert.Equal(t, types.PaperLetter, r.PaperSize)
}

func TestApplyDefaultsUnknownSelectors(t *testing.T) {
	r := types.ResumeData{Template: "fancy", PaperSize: "legal"}
	ApplyDefaults(&r)
	assert.Equal(t, types.DefaultTemplate, r.Template)
	assert.Equal(t, types.DefaultPaperSize, r.PaperSize)
}

func TestApplyDefaultsNil(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
