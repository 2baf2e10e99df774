package content

import (
	"sort"

	models "io.winapps.portfolio/internal/models/portfolio"
)

// AllTagsFilter selects every project.
const AllTagsFilter = "all"

// FilterByTag returns the projects carrying tag, or all of them for "all"
// and the empty filter.
func FilterByTag(projects []models.Project, tag string) []models.Project {
	if tag == "" || tag == AllTagsFilter {
		return projects
	}
	filtered := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AllTags returns each tag once, in the order it is first seen.
func AllTags(projects []models.Project) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range projects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// Recent returns up to n projects, newest createdAt first.
func Recent(projects []models.Project, n int) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt > sorted[j].CreatedAt
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
