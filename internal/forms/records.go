package forms

import (
	"strings"
	"time"

	formmodels "io.winapps.portfolio/internal/models/admin_forms"
	models "io.winapps.portfolio/internal/models/portfolio"
)

// Timestamp formats t the way the records' createdAt field is stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ProjectRecord builds the document written to projects/<id>.
func ProjectRecord(f formmodels.ProjectForm, now time.Time) models.Project {
	return models.Project{
		Title:       f.Title,
		Description: f.Description,
		Image:       strings.TrimSpace(f.Image),
		Tags:        CleanList(f.Tags),
		CreatedAt:   Timestamp(now),
		Details: models.ProjectDetails{
			Overview:   f.Overview,
			Features:   CleanList(f.Features),
			Challenges: ParseChallenges(f.Challenges),
			Client:     f.Client,
			Date:       f.Date,
			Category:   f.Category,
			URL:        strings.TrimSpace(f.URL),
			Github:     strings.TrimSpace(f.Github),
			Gallery:    CleanList(f.Gallery),
		},
	}
}

// ProjectKey is the database key a project form is written under.
func ProjectKey(f formmodels.ProjectForm) string {
	return strings.TrimSpace(f.ID)
}

func ExperienceRecord(f formmodels.ExperienceForm, now time.Time) models.Experience {
	return models.Experience{
		Title:       f.Title,
		Company:     f.Company,
		Type:        f.Type,
		Location:    f.Location,
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Current:     f.Current,
		Description: f.Description,
		Skills:      CleanList(f.Skills),
		CreatedAt:   Timestamp(now),
	}
}

func EducationRecord(f formmodels.EducationForm, now time.Time) models.Education {
	return models.Education{
		Degree:       f.Degree,
		Institution:  f.Institution,
		FieldOfStudy: f.FieldOfStudy,
		StartDate:    f.StartDate,
		EndDate:      f.EndDate,
		Current:      f.Current,
		Description:  f.Description,
		Grade:        f.Grade,
		CreatedAt:    Timestamp(now),
	}
}

func HobbyRecord(f formmodels.HobbyForm, now time.Time) models.Hobby {
	return models.Hobby{
		Title:       f.Title,
		Description: f.Description,
		Icon:        f.Icon,
		Category:    f.Category,
		CreatedAt:   Timestamp(now),
	}
}
