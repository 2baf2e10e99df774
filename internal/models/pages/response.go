package models

import (
	portfolio "io.winapps.portfolio/internal/models/portfolio"
	"io.winapps.portfolio/internal/site"
)

type HomePage struct {
	Personal site.PersonalInfo   `json:"personal"`
	Featured []portfolio.Project `json:"featured"`
	Tags     []string            `json:"tags"`
}

type AboutPage struct {
	Personal         site.PersonalInfo           `json:"personal"`
	Experience       []portfolio.Experience      `json:"experience"`
	Education        *portfolio.EducationSummary `json:"education"`
	EducationHistory []portfolio.Education       `json:"educationHistory"`
	Hobbies          []string                    `json:"hobbies"`
	Profile          map[string]interface{}      `json:"profile,omitempty"`
	Skills           []string                    `json:"skills"`
}

// ProjectsPage is the filtered project grid. Tags always starts with the
// "all" filter.
type ProjectsPage struct {
	Projects  []portfolio.Project `json:"projects"`
	Tags      []string            `json:"tags"`
	ActiveTag string              `json:"activeTag"`
}

type ProjectDetailPage struct {
	Project      portfolio.Project `json:"project"`
	OverviewHTML string            `json:"overviewHtml"`
}

type ContactPage struct {
	Contact site.ContactInfo `json:"contact"`
}
