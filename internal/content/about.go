package content

import models "io.winapps.portfolio/internal/models/portfolio"

// SummarizeEducation condenses the first education entry for the about page.
func SummarizeEducation(entries []models.Education) *models.EducationSummary {
	if len(entries) == 0 {
		return nil
	}
	first := entries[0]
	year := first.EndDate
	if year == "" {
		year = first.StartDate
	}
	summary := &models.EducationSummary{
		Degree:       first.Degree,
		University:   first.Institution,
		Year:         year,
		Achievements: []string{},
	}
	if first.Description != "" {
		summary.Achievements = append(summary.Achievements, first.Description)
	}
	return summary
}

func HobbyTitles(hobbies []models.Hobby) []string {
	titles := make([]string, 0, len(hobbies))
	for _, h := range hobbies {
		titles = append(titles, h.Title)
	}
	return titles
}
