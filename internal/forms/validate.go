package forms

import (
	"strings"

	models "io.winapps.portfolio/internal/models/admin_forms"
)

type requirement struct {
	name  string
	empty bool
}

func text(name, value string) requirement {
	return requirement{name: name, empty: strings.TrimSpace(value) == ""}
}

func list(name string, values []string) requirement {
	return requirement{name: name, empty: len(CleanList(values)) == 0}
}

func check(reqs ...requirement) error {
	var missing []string
	for _, r := range reqs {
		if r.empty {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}

// ValidateProject requires id, title, description, image and at least one tag.
func ValidateProject(f models.ProjectForm) error {
	if err := check(
		text("id", f.ID),
		text("title", f.Title),
		text("description", f.Description),
		text("image", f.Image),
		list("tags", f.Tags),
	); err != nil {
		return err
	}
	if strings.ContainsAny(strings.TrimSpace(f.ID), ".#$[]/") {
		return ErrInvalidKey
	}
	return nil
}

func ValidateExperience(f models.ExperienceForm) error {
	return check(
		text("title", f.Title),
		text("company", f.Company),
		text("startDate", f.StartDate),
		text("description", f.Description),
	)
}

func ValidateEducation(f models.EducationForm) error {
	return check(
		text("degree", f.Degree),
		text("institution", f.Institution),
		text("startDate", f.StartDate),
	)
}

func ValidateHobby(f models.HobbyForm) error {
	return check(
		text("title", f.Title),
		text("description", f.Description),
	)
}
