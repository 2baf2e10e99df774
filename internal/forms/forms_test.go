package forms

import (
	"errors"
	"reflect"
	"testing"
	"time"

	formmodels "io.winapps.portfolio/internal/models/admin_forms"
	models "io.winapps.portfolio/internal/models/portfolio"
)

func validProjectForm() formmodels.ProjectForm {
	return formmodels.ProjectForm{
		ID:          "ecommerce-platform",
		Title:       "E-commerce Platform",
		Description: "Online store with cart and payments",
		Image:       "https://images.example.com/store.png",
		Tags:        []string{"React", "Node.js"},
	}
}

func TestValidateProjectAcceptsCompleteForm(t *testing.T) {
	if err := ValidateProject(validProjectForm()); err != nil {
		t.Fatalf("ValidateProject() = %v, want nil", err)
	}
}

func TestValidateProjectRejectsEachMissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*formmodels.ProjectForm)
		field  string
	}{
		{"id", func(f *formmodels.ProjectForm) { f.ID = "" }, "id"},
		{"title", func(f *formmodels.ProjectForm) { f.Title = "   " }, "title"},
		{"description", func(f *formmodels.ProjectForm) { f.Description = "" }, "description"},
		{"image", func(f *formmodels.ProjectForm) { f.Image = "" }, "image"},
		{"no tags", func(f *formmodels.ProjectForm) { f.Tags = nil }, "tags"},
		{"blank tags", func(f *formmodels.ProjectForm) { f.Tags = []string{" ", ""} }, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validProjectForm()
			tt.mutate(&f)

			err := ValidateProject(f)
			if !errors.Is(err, ErrRequiredFields) {
				t.Fatalf("ValidateProject() = %v, want ErrRequiredFields", err)
			}
			var missing *MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("error %T is not *MissingFieldsError", err)
			}
			if !reflect.DeepEqual(missing.Fields, []string{tt.field}) {
				t.Errorf("missing fields = %v, want [%s]", missing.Fields, tt.field)
			}
		})
	}
}

func TestValidateProjectListsAllMissingFieldsInOrder(t *testing.T) {
	err := ValidateProject(formmodels.ProjectForm{Title: "only a title"})

	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("ValidateProject() = %v, want *MissingFieldsError", err)
	}
	want := []string{"id", "description", "image", "tags"}
	if !reflect.DeepEqual(missing.Fields, want) {
		t.Errorf("missing fields = %v, want %v", missing.Fields, want)
	}
}

func TestValidateProjectRejectsUnusableKey(t *testing.T) {
	f := validProjectForm()
	f.ID = "projects/other"
	if err := ValidateProject(f); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("ValidateProject() = %v, want ErrInvalidKey", err)
	}
}

func TestValidateOtherForms(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		missing []string
	}{
		{"experience complete", ValidateExperience(formmodels.ExperienceForm{Title: "Engineer", Company: "Acme", StartDate: "2021-01-01", Description: "Built things"}), nil},
		{"experience empty", ValidateExperience(formmodels.ExperienceForm{Type: "Full-time"}), []string{"title", "company", "startDate", "description"}},
		{"education complete", ValidateEducation(formmodels.EducationForm{Degree: "BSc", Institution: "Uni", StartDate: "2015-09-01"}), nil},
		{"education no start", ValidateEducation(formmodels.EducationForm{Degree: "BSc", Institution: "Uni"}), []string{"startDate"}},
		{"hobby complete", ValidateHobby(formmodels.HobbyForm{Title: "Photography", Description: "Film cameras"}), nil},
		{"hobby no description", ValidateHobby(formmodels.HobbyForm{Title: "Photography", Icon: "fa-camera"}), []string{"description"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.missing == nil {
				if tt.err != nil {
					t.Fatalf("got error %v, want nil", tt.err)
				}
				return
			}
			var missing *MissingFieldsError
			if !errors.As(tt.err, &missing) {
				t.Fatalf("got %v, want *MissingFieldsError", tt.err)
			}
			if !reflect.DeepEqual(missing.Fields, tt.missing) {
				t.Errorf("missing fields = %v, want %v", missing.Fields, tt.missing)
			}
		})
	}
}

func TestParseChallenges(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []models.Challenge
	}{
		{
			name:  "two pairs with whitespace",
			input: " API scaling issue => Used caching |SEO=>Used SSR ",
			want: []models.Challenge{
				{Problem: "API scaling issue", Solution: "Used caching"},
				{Problem: "SEO", Solution: "Used SSR"},
			},
		},
		{
			name:  "missing solution",
			input: "Flaky tests",
			want:  []models.Challenge{{Problem: "Flaky tests", Solution: ""}},
		},
		{
			name:  "extra arrow ignored",
			input: "a=>b=>c",
			want:  []models.Challenge{{Problem: "a", Solution: "b"}},
		},
		{
			name:  "solution only",
			input: "=>just a fix",
			want:  []models.Challenge{{Problem: "", Solution: "just a fix"}},
		},
		{
			name:  "empty input",
			input: "",
			want:  []models.Challenge{},
		},
		{
			name:  "blank pairs dropped",
			input: "a=>b| |=>",
			want:  []models.Challenge{{Problem: "a", Solution: "b"}},
		},
		{
			name:  "newlines are whitespace",
			input: "Slow builds=>Cached layers\n|\nCold starts=>Warm pool",
			want: []models.Challenge{
				{Problem: "Slow builds", Solution: "Cached layers"},
				{Problem: "Cold starts", Solution: "Warm pool"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseChallenges(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseChallenges(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("Cart\n\n  Checkout  \n")
	want := []string{"Cart", "Checkout"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %v, want %v", got, want)
	}
	if got := CleanList(nil); got == nil || len(got) != 0 {
		t.Errorf("CleanList(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestProjectRecordShape(t *testing.T) {
	f := validProjectForm()
	f.ID = "  ecommerce-platform "
	f.Overview = "Handles thousands of orders"
	f.Features = []string{"Cart", " ", "Checkout"}
	f.Challenges = "Peak traffic=>Redis caching"
	f.Category = "E-commerce"
	f.Gallery = []string{"https://images.example.com/1.png"}

	now := time.Date(2024, 3, 1, 12, 30, 0, 250_000_000, time.FixedZone("X", 3600))
	got := ProjectRecord(f, now)

	if ProjectKey(f) != "ecommerce-platform" {
		t.Errorf("ProjectKey() = %q", ProjectKey(f))
	}
	if got.ID != "" {
		t.Errorf("record carries id %q, want it only as the key", got.ID)
	}
	if got.CreatedAt != "2024-03-01T11:30:00.250Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if !reflect.DeepEqual(got.Details.Features, []string{"Cart", "Checkout"}) {
		t.Errorf("Features = %v", got.Details.Features)
	}
	want := []models.Challenge{{Problem: "Peak traffic", Solution: "Redis caching"}}
	if !reflect.DeepEqual(got.Details.Challenges, want) {
		t.Errorf("Challenges = %v", got.Details.Challenges)
	}
	if got.Details.Category != "E-commerce" || len(got.Details.Gallery) != 1 {
		t.Errorf("details not copied: %+v", got.Details)
	}
}

func TestBanners(t *testing.T) {
	if b := SuccessBanner(KindProject); b.Text != "Project added successfully!" || b.Type != "success" {
		t.Errorf("SuccessBanner(project) = %+v", b)
	}
	if b := FailureBanner(KindHobby); b.Text != "Error adding hobby. Please try again." || b.Type != "error" {
		t.Errorf("FailureBanner(hobby) = %+v", b)
	}
	if b := RequiredBanner(); b.Text != "Please fill in all required fields." {
		t.Errorf("RequiredBanner() = %+v", b)
	}
}
