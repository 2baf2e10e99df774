package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Personal.Name != "Portfolio Owner" {
		t.Errorf("Name = %q, want default", c.Personal.Name)
	}
	if c.Contact.Socials == nil || c.Personal.About == nil {
		t.Error("lists should never be nil")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	content := `personal:
  name: Jane Doe
  title: Senior Engineer
  about:
    - I build web applications.
    - I like hiking.
contact:
  email: jane@example.com
  socials:
    - name: GitHub
      url: https://github.com/janedoe
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Personal.Name != "Jane Doe" || len(c.Personal.About) != 2 {
		t.Errorf("personal = %+v", c.Personal)
	}
	if c.Contact.Email != "jane@example.com" || len(c.Contact.Socials) != 1 {
		t.Errorf("contact = %+v", c.Contact)
	}
	if c.Contact.Availability != "Available for new projects" {
		t.Errorf("omitted availability should keep the default, got %q", c.Contact.Availability)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("personal: [unclosed")); err == nil {
		t.Error("Parse() accepted invalid YAML")
	}
}
