package readiness

import (
	"encoding/json"
	"fmt"

	"github.com/khrees2412/careerkit/internal/intel"
	"github.com/khrees2412/careerkit/pkg/models"
)

// legacyAnalysis holds the fields written by version 0 and 1 records that
// the current shape renamed or dropped
type legacyAnalysis struct {
	ReadinessScore      *int                       `json:"readinessScore"`
	BaseReadinessScore  *int                       `json:"baseReadinessScore"`
	DynamicRoundMapping []models.InterviewRound    `json:"dynamicRoundMapping"`
	RoundWiseChecklist  []legacyChecklistRound     `json:"roundWiseChecklist"`
	SevenDayPlan        []legacyDayPlan            `json:"sevenDayPlan"`
	InterviewQuestions  []string                   `json:"interviewQuestions"`
	BaseScore           *int                       `json:"baseScore"`
	FinalScore          *int                       `json:"finalScore"`
	Raw                 map[string]json.RawMessage `json:"-"`
}

type legacyChecklistRound struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type legacyDayPlan struct {
	Day   string   `json:"day"`
	Topic string   `json:"topic"`
	Tasks []string `json:"tasks"`
}

// Migrate decodes a stored analysis of any version into the current shape.
// The bool reports whether anything was filled in, in which case the caller
// should persist the result. Records already at the current version are
// returned as decoded.
func Migrate(raw json.RawMessage) (models.Analysis, bool, error) {
	var a models.Analysis
	if err := json.Unmarshal(raw, &a); err != nil {
		return models.Analysis{}, false, fmt.Errorf("decode analysis: %w", err)
	}
	if a.SchemaVersion >= CurrentSchemaVersion {
		return a, false, nil
	}

	var legacy legacyAnalysis
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return models.Analysis{}, false, fmt.Errorf("decode legacy analysis: %w", err)
	}
	if err := json.Unmarshal(raw, &legacy.Raw); err != nil {
		return models.Analysis{}, false, fmt.Errorf("decode legacy analysis: %w", err)
	}

	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}

	if legacy.BaseScore == nil {
		a.BaseScore = firstPositive(legacy.BaseReadinessScore, legacy.ReadinessScore)
	}
	if legacy.FinalScore == nil {
		a.FinalScore = firstPositive(legacy.ReadinessScore)
		if a.FinalScore == 0 {
			a.FinalScore = a.BaseScore
		}
	}

	if a.SkillConfidenceMap == nil {
		a.SkillConfidenceMap = make(map[string]models.SkillConfidence)
		for _, s := range a.ExtractedSkills.All() {
			a.SkillConfidenceMap[s] = models.ConfidencePractice
		}
	}

	if a.CompanyIntel == nil && a.Company != "" {
		a.CompanyIntel = intel.Generate(a.Company)
	}

	if _, ok := legacy.Raw["roundMapping"]; !ok || len(a.RoundMapping) == 0 {
		if len(legacy.DynamicRoundMapping) > 0 {
			a.RoundMapping = legacy.DynamicRoundMapping
		} else {
			a.RoundMapping = intel.Rounds(a.ExtractedSkills, a.CompanyIntel)
		}
	}

	if len(a.Checklist) == 0 && len(legacy.RoundWiseChecklist) > 0 {
		for _, r := range legacy.RoundWiseChecklist {
			a.Checklist = append(a.Checklist, models.ChecklistRound{RoundTitle: r.Title, Items: r.Items})
		}
	}

	if len(a.Plan7Days) == 0 && len(legacy.SevenDayPlan) > 0 {
		for _, d := range legacy.SevenDayPlan {
			a.Plan7Days = append(a.Plan7Days, models.DayPlan{Day: d.Day, Focus: d.Topic, Tasks: d.Tasks})
		}
	}

	if len(a.Questions) == 0 && len(legacy.InterviewQuestions) > 0 {
		a.Questions = legacy.InterviewQuestions
	}

	a.SchemaVersion = CurrentSchemaVersion
	return a, true, nil
}

func firstPositive(vals ...*int) int {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return 0
}
