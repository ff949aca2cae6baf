package parsing

import (
	"regexp"

	"github.com/openresume/resume-builder/internal/types"
)

var presentRe = regexp.MustCompile(`(?i)present|current`)

// Convert maps a ParsedProfile onto a fresh ResumeData: headline becomes the
// summary, skills carry over verbatim, and parsed experience/education
// replace the default blank entries when present. Entries whose end date
// reads "present" or "current" are marked ongoing.
func Convert(parsed *types.ParsedProfile) *types.ResumeData {
	resume := types.NewDefaultResume()
	if parsed == nil {
		return resume
	}

	resume.Personal.FullName = parsed.FullName
	resume.Personal.Location = parsed.Location
	resume.Personal.Email = parsed.Email
	resume.Summary = parsed.Headline
	if len(parsed.Skills) > 0 {
		resume.Skills = append([]string{}, parsed.Skills...)
	}

	if len(parsed.Experience) > 0 {
		resume.Experience = make([]types.Experience, 0, len(parsed.Experience))
		for _, exp := range parsed.Experience {
			bullets := exp.Bullets
			if len(bullets) == 0 {
				bullets = []string{""}
			}
			entry := types.Experience{
				ID:        types.NewID(),
				Company:   exp.Company,
				JobTitle:  exp.JobTitle,
				StartDate: exp.StartDate,
				EndDate:   exp.EndDate,
				IsPresent: presentRe.MatchString(exp.EndDate),
				Bullets:   bullets,
			}
			resume.Experience = append(resume.Experience, entry)
		}
	}

	if len(parsed.Education) > 0 {
		resume.Education = make([]types.Education, 0, len(parsed.Education))
		for _, edu := range parsed.Education {
			resume.Education = append(resume.Education, types.Education{
				ID:             types.NewID(),
				School:         edu.School,
				Degree:         edu.Degree,
				FieldOfStudy:   edu.FieldOfStudy,
				GraduationDate: edu.GraduationDate,
			})
		}
	}

	return resume
}
