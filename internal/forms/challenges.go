package forms

import (
	"strings"

	models "io.winapps.portfolio/internal/models/portfolio"
)

const (
	challengeSeparator = "|"
	solutionSeparator  = "=>"
)

// ParseChallenges turns "problem=>solution|problem=>solution" into pairs.
// Anything after a second "=>" in a pair is ignored, a pair without "=>"
// has an empty solution, and pairs blank on both sides are dropped.
func ParseChallenges(s string) []models.Challenge {
	challenges := []models.Challenge{}
	for _, pair := range strings.Split(s, challengeSeparator) {
		parts := strings.SplitN(pair, solutionSeparator, 3)
		c := models.Challenge{Problem: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			c.Solution = strings.TrimSpace(parts[1])
		}
		if c.Problem == "" && c.Solution == "" {
			continue
		}
		challenges = append(challenges, c)
	}
	return challenges
}

// CleanList trims every entry and drops the blank ones. It never returns nil.
func CleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SplitLines is how multi-line text areas (features) become lists.
func SplitLines(s string) []string {
	return CleanList(strings.Split(s, "\n"))
}
