package models

type Education struct {
	ID           string `json:"id,omitempty"`
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
	Grade        string `json:"grade"`
	CreatedAt    string `json:"createdAt"`
}

// EducationSummary is the condensed entry shown at the top of the about page.
type EducationSummary struct {
	Degree       string   `json:"degree"`
	University   string   `json:"university"`
	Year         string   `json:"year"`
	Achievements []string `json:"achievements"`
}
