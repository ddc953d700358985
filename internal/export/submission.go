package export

import (
	"fmt"
	"strings"
)

const rule = "------------------------------------------"

// Submission describes a final project submission
type Submission struct {
	Title        string
	Lovable      string
	GitHub       string
	Deploy       string
	Capabilities []string
}

var (
	// ResumeSubmission is the preset for the resume builder project
	ResumeSubmission = Submission{
		Title: "AI Resume Builder — Final Submission",
		Capabilities: []string{
			"Structured resume builder",
			"Deterministic ATS scoring",
			"Template switching",
			"PDF export with clean formatting",
			"Persistence + validation checklist",
		},
	}

	// JobTrackerSubmission is the preset for the job tracker project
	JobTrackerSubmission = Submission{
		Title: "Job Notification Tracker — Final Submission",
		Capabilities: []string{
			"Intelligent match scoring",
			"Daily digest simulation",
			"Status tracking",
			"Test checklist enforced",
		},
	}

	// PlacementSubmission is the preset for the placement readiness project
	PlacementSubmission = Submission{
		Title: "Placement Readiness Platform — Final Submission",
		Capabilities: []string{
			"JD skill extraction (deterministic)",
			"Round mapping engine",
			"7-day prep plan",
			"Interactive readiness scoring",
			"History persistence",
		},
	}
)

// WithLinks returns a copy of the preset carrying the given links
func (s Submission) WithLinks(lovable, github, deploy string) Submission {
	s.Lovable, s.GitHub, s.Deploy = lovable, github, deploy
	return s
}

// SubmissionText renders the copy-paste submission block. Missing links
// print as "Not provided".
func SubmissionText(s Submission) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(s.Title + "\n\n")
	fmt.Fprintf(&b, "Lovable Project: %s\n", orNotProvided(s.Lovable))
	fmt.Fprintf(&b, "GitHub Repository: %s\n", orNotProvided(s.GitHub))
	fmt.Fprintf(&b, "Live Deployment: %s\n\n", orNotProvided(s.Deploy))
	b.WriteString("Core Capabilities:\n")
	for _, c := range s.Capabilities {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString(rule)
	return b.String()
}

func orNotProvided(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Not provided"
	}
	return v
}
