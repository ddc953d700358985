package export

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/khrees2412/careerkit/pkg/models"
)

// ChecklistText renders each round as a markdown heading with bullet items
func ChecklistText(rounds []models.ChecklistRound) string {
	blocks := make([]string, 0, len(rounds))
	for _, r := range rounds {
		blocks = append(blocks, fmt.Sprintf("## %s\n\n%s", r.RoundTitle, bullets(r.Items)))
	}
	return strings.Join(blocks, "\n\n")
}

// PlanText renders each day as a markdown heading with bullet tasks
func PlanText(plan []models.DayPlan) string {
	blocks := make([]string, 0, len(plan))
	for _, d := range plan {
		blocks = append(blocks, fmt.Sprintf("## %s: %s\n\n%s", d.Day, d.Focus, bullets(d.Tasks)))
	}
	return strings.Join(blocks, "\n\n")
}

// QuestionsText numbers questions from 1
func QuestionsText(questions []string) string {
	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// AnalysisText renders a full analysis for download
func AnalysisText(a models.Analysis) string {
	var skills []string
	for _, c := range models.SkillCategories {
		list := a.ExtractedSkills.Get(c)
		if len(list) == 0 {
			continue
		}
		skills = append(skills, fmt.Sprintf("### %s\n- %s", upperFirst(string(c)), strings.Join(list, ", ")))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Placement Prep Analysis for %s at %s\n\n", a.Role, a.Company)
	fmt.Fprintf(&b, "## Key Skills\n%s\n\n---\n\n", strings.Join(skills, "\n"))
	fmt.Fprintf(&b, "%s\n\n---\n\n", ChecklistText(a.Checklist))
	fmt.Fprintf(&b, "%s\n\n---\n\n", PlanText(a.Plan7Days))
	fmt.Fprintf(&b, "## 10 Likely Interview Questions\n%s", QuestionsText(a.Questions))
	return strings.TrimSpace(b.String())
}

// AnalysisFileName is the download name for an analysis export
func AnalysisFileName(a models.Analysis) string {
	return strings.ReplaceAll(fmt.Sprintf("placement-prep-%s-%s.txt", a.Company, a.Role), " ", "_")
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
