package theme

import (
	"errors"
	"strings"
)

// Mode is the site color scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// Default applies when nothing has been saved.
	Default = Light

	// CookieName is where the choice is persisted between visits.
	CookieName = "theme"
	// CookieMaxAge keeps the choice for a year.
	CookieMaxAge = 365 * 24 * 60 * 60
)

var ErrUnknownMode = errors.New("theme must be \"light\" or \"dark\"")

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", ErrUnknownMode
}

// Restore returns the saved mode, or Default when the saved value is
// missing or unusable.
func Restore(saved string) Mode {
	m, err := Parse(saved)
	if err != nil {
		return Default
	}
	return m
}

// Toggle flips between light and dark.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}
