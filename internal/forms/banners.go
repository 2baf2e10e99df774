package forms

import (
	models "io.winapps.portfolio/internal/models/admin_forms"
)

// Kind names an admin form.
type Kind string

const (
	KindProject    Kind = "project"
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
	KindHobby      Kind = "hobby"
)

var kindLabels = map[Kind]string{
	KindProject:    "Project",
	KindExperience: "Experience",
	KindEducation:  "Education",
	KindHobby:      "Hobby",
}

func SuccessBanner(k Kind) models.Banner {
	return models.Banner{Text: kindLabels[k] + " added successfully!", Type: models.BannerSuccess}
}

func FailureBanner(k Kind) models.Banner {
	return models.Banner{Text: "Error adding " + string(k) + ". Please try again.", Type: models.BannerError}
}

func RequiredBanner() models.Banner {
	return models.Banner{Text: "Please fill in all required fields.", Type: models.BannerError}
}
