package models

// Project is stored at projects/<id>. The id is the database key and is
// only filled in when a record is read back.
type Project struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Tags        []string       `json:"tags"`
	CreatedAt   string         `json:"createdAt"`
	Details     ProjectDetails `json:"details"`
}

type ProjectDetails struct {
	Overview   string      `json:"overview"`
	Features   []string    `json:"features"`
	Challenges []Challenge `json:"challenges"`
	Client     string      `json:"client"`
	Date       string      `json:"date"`
	Category   string      `json:"category"`
	URL        string      `json:"url"`
	Github     string      `json:"github"`
	Gallery    []string    `json:"gallery"`
}

type Challenge struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

// HasTag reports whether tag is one of the project's tags.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
