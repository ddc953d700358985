// Package readiness builds placement-readiness analyses from a job
// description: scores, checklists, a study plan and likely questions.
package readiness

import (
	"unicode/utf8"

	"github.com/khrees2412/careerkit/pkg/models"
)

const (
	scoreStart       = 35
	perCategory      = 5
	categoryCap      = 30
	companyBonus     = 10
	roleBonus        = 10
	longJDBonus      = 10
	longJDThreshold  = 800
	perKnownSkill    = 2
	ShortJDThreshold = 200
)

// BaseScore is computed once when an analysis is created. Every non-empty
// category counts, the fallback "other" category included.
func BaseScore(jd, company, role string, skills models.ExtractedSkills) int {
	score := scoreStart
	score += min(skills.NonEmptyCategories()*perCategory, categoryCap)
	if company != "" {
		score += companyBonus
	}
	if role != "" {
		score += roleBonus
	}
	if utf8.RuneCountInString(jd) > longJDThreshold {
		score += longJDBonus
	}
	return min(score, 100)
}

// FinalScore adds the live adjustment for skills marked "know" to base
func FinalScore(base int, skills models.ExtractedSkills, confidence map[string]models.SkillConfidence) int {
	score := base
	for _, s := range skills.All() {
		if confidence[s] == models.ConfidenceKnow {
			score += perKnownSkill
		}
	}
	return min(max(score, 0), 100)
}
