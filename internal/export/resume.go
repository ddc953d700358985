// Package export renders resumes, digests, analyses and submissions as plain
// text for the clipboard, downloads and email.
package export

import (
	"fmt"
	"strings"

	"github.com/khrees2412/careerkit/pkg/models"
)

// ResumeText renders a resume as plain text. Sections whose source is empty
// are left out.
func ResumeText(r models.Resume) string {
	var b strings.Builder

	if r.PersonalInfo.Name != "" {
		b.WriteString(r.PersonalInfo.Name + "\n")
	}
	contact := nonEmpty(r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location, r.Links.LinkedIn, r.Links.GitHub)
	if len(contact) > 0 {
		b.WriteString(strings.Join(contact, " | ") + "\n\n")
	}

	if r.Summary != "" {
		fmt.Fprintf(&b, "SUMMARY\n%s\n\n", r.Summary)
	}

	if len(r.Experience) > 0 {
		b.WriteString("EXPERIENCE\n\n")
		for _, e := range r.Experience {
			fmt.Fprintf(&b, "%s | %s | %s - %s\n", e.Role, e.Company, e.StartDate, e.EndDate)
			fmt.Fprintf(&b, "%s\n\n", e.Description)
		}
	}

	if len(r.Projects) > 0 {
		b.WriteString("PROJECTS\n\n")
		for _, p := range r.Projects {
			fmt.Fprintf(&b, "%s\n%s\n", p.Name, p.Description)
			if len(p.TechStack) > 0 {
				fmt.Fprintf(&b, "Tech: %s\n", strings.Join(p.TechStack, ", "))
			}
			if p.LiveURL != "" {
				fmt.Fprintf(&b, "Live: %s\n", p.LiveURL)
			}
			if p.GitHubURL != "" {
				fmt.Fprintf(&b, "GitHub: %s\n", p.GitHubURL)
			}
			b.WriteString("\n")
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("EDUCATION\n\n")
		for _, e := range r.Education {
			fmt.Fprintf(&b, "%s, %s (%s - %s)\n", e.Degree, e.School, e.StartDate, e.EndDate)
		}
		b.WriteString("\n")
	}

	if skills := r.Skills.All(); len(skills) > 0 {
		fmt.Fprintf(&b, "SKILLS\n%s\n", strings.Join(skills, ", "))
	}

	return strings.TrimSpace(b.String())
}

func nonEmpty(vals ...string) []string {
	var out []string
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
