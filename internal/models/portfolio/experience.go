package models

type Experience struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	CreatedAt   string   `json:"createdAt"`
}
