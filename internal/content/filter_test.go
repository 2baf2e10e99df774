package content

import (
	"reflect"
	"testing"

	models "io.winapps.portfolio/internal/models/portfolio"
)

func projectsWithTags() []models.Project {
	return []models.Project{
		{ID: "shop", Tags: []string{"React", "Node.js"}, CreatedAt: "2022-03-01T00:00:00.000Z"},
		{ID: "pm", Tags: []string{"Next.js", "Firebase"}, CreatedAt: "2023-01-01T00:00:00.000Z"},
		{ID: "health", Tags: []string{"React", "D3.js"}, CreatedAt: "2021-09-01T00:00:00.000Z"},
		{ID: "untagged", CreatedAt: "2024-06-01T00:00:00.000Z"},
	}
}

func ids(projects []models.Project) []string {
	out := []string{}
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByTag(t *testing.T) {
	projects := projectsWithTags()
	tests := []struct {
		tag  string
		want []string
	}{
		{"all", []string{"shop", "pm", "health", "untagged"}},
		{"", []string{"shop", "pm", "health", "untagged"}},
		{"React", []string{"shop", "health"}},
		{"Firebase", []string{"pm"}},
		{"react", []string{}},
		{"Go", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got := ids(FilterByTag(projects, tt.tag))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterByTag(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestAllTagsKeepsFirstSeenOrder(t *testing.T) {
	got := AllTags(projectsWithTags())
	want := []string{"React", "Node.js", "Next.js", "Firebase", "D3.js"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AllTags() = %v, want %v", got, want)
	}
}

func TestRecent(t *testing.T) {
	projects := projectsWithTags()
	got := ids(Recent(projects, 3))
	want := []string{"untagged", "pm", "shop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Recent(3) = %v, want %v", got, want)
	}
	if projects[0].ID != "shop" {
		t.Error("Recent must not reorder its input")
	}
}

func TestSummarizeEducation(t *testing.T) {
	if SummarizeEducation(nil) != nil {
		t.Error("no entries should give no summary")
	}

	got := SummarizeEducation([]models.Education{
		{Degree: "BSc Computer Science", Institution: "University of Technology", StartDate: "2012", Description: "Graduated with honors"},
		{Degree: "MSc", Institution: "Elsewhere", StartDate: "2017", EndDate: "2019"},
	})
	want := &models.EducationSummary{
		Degree:       "BSc Computer Science",
		University:   "University of Technology",
		Year:         "2012",
		Achievements: []string{"Graduated with honors"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SummarizeEducation() = %+v, want %+v", got, want)
	}

	withEnd := SummarizeEducation([]models.Education{{Degree: "MSc", StartDate: "2017", EndDate: "2019"}})
	if withEnd.Year != "2019" || len(withEnd.Achievements) != 0 {
		t.Errorf("SummarizeEducation() = %+v, want year 2019 and no achievements", withEnd)
	}
}
