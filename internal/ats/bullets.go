package ats

import (
	"strings"
	"unicode"
)

// BulletVerbs are the openers recommended for experience and project bullets
var BulletVerbs = []string{"Built", "Developed", "Designed", "Implemented", "Led", "Improved", "Created", "Optimized", "Automated"}

const (
	hintActionVerb = "Start with a strong action verb like 'Developed', 'Led', or 'Managed'."
	hintMeasurable = "Add measurable impact (e.g., increased by 20%, saved $10k)."
)

// CheckBullet returns guidance for a single bullet line. Blank lines get none.
func CheckBullet(line string) []string {
	text := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "•*-"))
	if text == "" {
		return nil
	}

	var hints []string
	first := strings.ToLower(strings.Fields(text)[0])
	opens := false
	for _, verb := range BulletVerbs {
		if strings.HasPrefix(first, strings.ToLower(verb)) {
			opens = true
			break
		}
	}
	if !opens {
		hints = append(hints, hintActionVerb)
	}

	if !strings.ContainsFunc(text, unicode.IsDigit) {
		hints = append(hints, hintMeasurable)
	}
	return hints
}

// BulletHint pairs a bullet with its guidance
type BulletHint struct {
	Line  string   `json:"line"`
	Hints []string `json:"hints"`
}

// CheckDescription checks every bullet of a multi-line description and
// returns only the bullets that need work
func CheckDescription(description string) []BulletHint {
	var out []BulletHint
	for _, line := range strings.Split(description, "\n") {
		if hints := CheckBullet(line); len(hints) > 0 {
			out = append(out, BulletHint{Line: strings.TrimSpace(line), Hints: hints})
		}
	}
	return out
}
