package types

// ParsedProfile is the best-effort extraction result from pasted LinkedIn
// profile text, prior to conversion into a ResumeData. Fields the scanner
// could not identify are left empty; the importer never signals errors.
type ParsedProfile struct {
	FullName   string             `json:"fullName"`
	Headline   string             `json:"headline"`
	Location   string             `json:"location"`
	Email      string             `json:"email"`
	Experience []ParsedExperience `json:"experience"`
	Education  []ParsedEducation  `json:"education"`
	Skills     []string           `json:"skills"`
}

// ParsedExperience is a work entry extracted by the heuristic scanner.
type ParsedExperience struct {
	Company   string   `json:"company"`
	JobTitle  string   `json:"jobTitle"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Bullets   []string `json:"bullets"`
}

// ParsedEducation is an education entry extracted by the heuristic scanner.
type ParsedEducation struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	FieldOfStudy   string `json:"fieldOfStudy"`
	GraduationDate string `json:"graduationDate"`
}
