// Package parsing converts unstructured pasted LinkedIn profile text into a
// structured ParsedProfile using a line-oriented heuristic scanner.
//
// The scanner is a single pass with no backtracking and no error signaling:
// atypical input silently yields a partially or incorrectly populated result.
// In particular, a new experience entry is anchored on a date-range line and
// takes the two immediately preceding lines as job title and company; when
// the source text omits either line the attribution is wrong. The mitigation
// is the human-reviewable preview step before the imported data is committed.
package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/openresume/resume-builder/internal/types"
)

const (
	// maxLocationScanLines bounds the header region searched for a
	// location-shaped line.
	maxLocationScanLines = 10
	// maxSkills caps the deduplicated skill list.
	maxSkills = 20
	// looseBulletMinLength is the threshold above which an unmarked line
	// inside the experience section is treated as continuation bullet text.
	looseBulletMinLength = 20
	// maxFieldOfStudyLength bounds lines accepted as a field of study.
	maxFieldOfStudyLength = 60
	// maxWholeSkillLength bounds lines accepted whole as a single skill.
	maxWholeSkillLength = 50
)

var (
	locationRe = regexp.MustCompile(`(?i),\s*(united states|usa|uk|canada|australia|germany|france|india|[A-Z]{2})`)
	zipRe      = regexp.MustCompile(`\b\d{5}\b`)
	// dateRangeRe matches "<Month Year|Year> - <Month Year|Year|present|current>"
	// with a hyphen, en dash, or em dash separator.
	dateRangeRe   = regexp.MustCompile(`(?i)(\w+\s+\d{4}|\d{4})\s*[-–—]\s*(\w+\s+\d{4}|\d{4}|present|current)`)
	yearRe        = regexp.MustCompile(`\d{4}`)
	bulletGlyphRe = regexp.MustCompile(`^[•\-·]\s*`)
)

// Section header strings, compared case-insensitively against whole lines.
var (
	experienceHeaders = []string{"experience", "work experience", "professional experience"}
	educationHeaders  = []string{"education"}
	skillHeaders      = []string{"skills", "top skills", "skills & endorsements"}
	// otherHeaders terminate the current section; content after them is
	// discarded until a recognized header appears again.
	otherHeaders = []string{
		"licenses & certifications", "certifications", "volunteer",
		"publications", "honors", "languages", "interests",
		"recommendations", "courses", "projects",
	}
)

type section int

const (
	sectionNone section = iota
	sectionExperience
	sectionEducation
	sectionSkills
)

// Parse scans pasted LinkedIn profile text into a ParsedProfile. It never
// fails; fields the heuristics cannot identify are left empty.
func Parse(text string) *types.ParsedProfile {
	result := &types.ParsedProfile{
		Experience: []types.ParsedExperience{},
		Education:  []types.ParsedEducation{},
		Skills:     []string{},
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return result
	}

	// First line is usually the name, second the headline. Taken
	// unconditionally; there is nothing to validate against.
	result.FullName = lines[0]
	if len(lines) > 1 {
		result.Headline = lines[1]
	}
	result.Location = findLocation(lines)

	current := sectionNone
	var curExp *types.ParsedExperience
	var curEdu *types.ParsedEducation

	flushExp := func() {
		if curExp != nil {
			result.Experience = append(result.Experience, *curExp)
			curExp = nil
		}
	}
	flushEdu := func() {
		if curEdu != nil {
			result.Education = append(result.Education, *curEdu)
			curEdu = nil
		}
	}

	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsString(experienceHeaders, lower) {
			current = sectionExperience
			continue
		}
		if containsString(educationHeaders, lower) {
			flushExp()
			current = sectionEducation
			continue
		}
		if containsString(skillHeaders, lower) {
			flushExp()
			flushEdu()
			current = sectionSkills
			continue
		}
		if containsString(otherHeaders, lower) {
			flushExp()
			flushEdu()
			current = sectionNone
			continue
		}

		switch current {
		case sectionExperience:
			scanExperienceLine(lines, i, &curExp, result)
		case sectionEducation:
			scanEducationLine(line, &curEdu, result)
		case sectionSkills:
			result.Skills = append(result.Skills, splitSkills(line)...)
		}
	}

	flushExp()
	flushEdu()

	result.Skills = dedupeSkills(result.Skills, maxSkills)
	return result
}

// splitLines breaks input into trimmed non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// findLocation scans the first few lines for a location-shaped line: a
// trailing country name or two-letter code, or a 5-digit postal code. First
// match wins.
func findLocation(lines []string) string {
	limit := len(lines)
	if limit > maxLocationScanLines {
		limit = maxLocationScanLines
	}
	for _, line := range lines[:limit] {
		if locationRe.MatchString(line) || zipRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// scanExperienceLine handles one line inside the experience section. A
// date-range line starts a new entry using the two preceding lines as job
// title and company; bullet-glyph lines and long unmarked lines extend the
// current entry's bullets.
func scanExperienceLine(lines []string, i int, curExp **types.ParsedExperience, result *types.ParsedProfile) {
	line := lines[i]

	if m := dateRangeRe.FindStringSubmatch(line); m != nil {
		if *curExp != nil {
			result.Experience = append(result.Experience, **curExp)
		}
		var jobTitle, company string
		if i > 0 {
			jobTitle = lines[i-1]
		}
		if i > 1 {
			company = lines[i-2]
		}
		*curExp = &types.ParsedExperience{
			Company:   company,
			JobTitle:  jobTitle,
			StartDate: m[1],
			EndDate:   m[2],
			Bullets:   []string{},
		}
		return
	}

	if *curExp == nil {
		return
	}
	if bulletGlyphRe.MatchString(line) {
		(*curExp).Bullets = append((*curExp).Bullets, bulletGlyphRe.ReplaceAllString(line, ""))
	} else if utf8.RuneCountInString(line) > looseBulletMinLength {
		// Unmarked continuation text; loose heuristic.
		(*curExp).Bullets = append((*curExp).Bullets, line)
	}
}

// scanEducationLine handles one line inside the education section: first line
// becomes the school, the second the degree, then a 4-digit year commits the
// entry; a short enough line seen beforehand is taken as the field of study.
func scanEducationLine(line string, curEdu **types.ParsedEducation, result *types.ParsedProfile) {
	switch {
	case *curEdu == nil:
		*curEdu = &types.ParsedEducation{School: line}
	case (*curEdu).Degree == "":
		(*curEdu).Degree = line
	default:
		if year := yearRe.FindString(line); year != "" {
			(*curEdu).GraduationDate = year
			result.Education = append(result.Education, **curEdu)
			*curEdu = nil
		} else if utf8.RuneCountInString(line) < maxFieldOfStudyLength {
			(*curEdu).FieldOfStudy = line
		}
	}
}

// splitSkills fragments a skills line on "·", else on ",", else takes the
// whole line when it is short enough to plausibly be a single skill.
func splitSkills(line string) []string {
	switch {
	case strings.Contains(line, "·"):
		return trimmedFields(strings.Split(line, "·"))
	case strings.Contains(line, ","):
		return trimmedFields(strings.Split(line, ","))
	case utf8.RuneCountInString(line) < maxWholeSkillLength:
		return []string{line}
	}
	return nil
}

func trimmedFields(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// dedupeSkills removes exact duplicates keeping first-seen order, capped at
// limit entries.
func dedupeSkills(skills []string, limit int) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
