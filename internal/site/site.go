package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Content is the hand-written copy of the site that does not live in the
// database.
type Content struct {
	Personal PersonalInfo `yaml:"personal" json:"personal"`
	Contact  ContactInfo  `yaml:"contact" json:"contact"`
}

type PersonalInfo struct {
	Name  string   `yaml:"name" json:"name"`
	Title string   `yaml:"title" json:"title"`
	About []string `yaml:"about" json:"about"`
}

type ContactInfo struct {
	Email        string   `yaml:"email" json:"email"`
	Phone        string   `yaml:"phone" json:"phone"`
	Location     string   `yaml:"location" json:"location"`
	Availability string   `yaml:"availability" json:"availability"`
	Socials      []Social `yaml:"socials" json:"socials"`
}

type Social struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
	URL  string `yaml:"url" json:"url"`
}

// Default is used when no content file exists.
func Default() *Content {
	return &Content{
		Personal: PersonalInfo{
			Name:  "Portfolio Owner",
			Title: "Full-Stack Engineer",
			About: []string{},
		},
		Contact: ContactInfo{
			Availability: "Available for new projects",
			Socials:      []Social{},
		},
	}
}

// Load reads the content file at path. A missing file yields Default; a
// file that exists but does not parse is an error.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read site content: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults, so omitted sections keep their
// default values.
func Parse(data []byte) (*Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if c.Personal.About == nil {
		c.Personal.About = []string{}
	}
	if c.Contact.Socials == nil {
		c.Contact.Socials = []Social{}
	}
	return c, nil
}
