package models

// ProjectForm mirrors the admin project form. Challenges is free text in the
// "problem=>solution|problem=>solution" notation.
type ProjectForm struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Overview    string   `json:"overview"`
	Features    []string `json:"features"`
	Challenges  string   `json:"challenges"`
	Client      string   `json:"client"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	URL         string   `json:"url"`
	Github      string   `json:"github"`
	Gallery     []string `json:"gallery"`
}

type ExperienceForm struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type EducationForm struct {
	Degree       string `json:"degree"`
	Institution  string `json:"institution"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
	Grade        string `json:"grade"`
}

type HobbyForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}
