package readiness

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/khrees2412/careerkit/internal/intel"
	"github.com/khrees2412/careerkit/internal/skills"
	"github.com/khrees2412/careerkit/pkg/models"
)

// CurrentSchemaVersion is stamped on every analysis this package produces
const CurrentSchemaVersion = 2

var (
	// ErrEmptyJD is returned when no job description text was given
	ErrEmptyJD = errors.New("job description is required")
	// ErrUnknownSkill is returned when toggling a skill the analysis does not list
	ErrUnknownSkill = errors.New("skill not found in analysis")
)

// Input is what the user submits for analysis
type Input struct {
	Company string
	Role    string
	JD      string
}

// Analyzer creates analyses. Clock and IDs are injectable for tests.
type Analyzer struct {
	Now   func() time.Time
	NewID func() string
}

// NewAnalyzer returns an analyzer using the wall clock and random uuids
func NewAnalyzer() *Analyzer {
	return &Analyzer{Now: time.Now, NewID: uuid.NewString}
}

// Analyze extracts skills from the JD and builds the full analysis. Short
// descriptions are accepted with a warning.
func (a *Analyzer) Analyze(in Input) (models.Analysis, []string, error) {
	jd := strings.TrimSpace(in.JD)
	if jd == "" {
		return models.Analysis{}, nil, ErrEmptyJD
	}

	var warnings []string
	if utf8.RuneCountInString(jd) < ShortJDThreshold {
		warnings = append(warnings, "This JD is too short to analyze deeply. Paste full JD for better output.")
	}

	company := strings.TrimSpace(in.Company)
	role := strings.TrimSpace(in.Role)
	extracted := skills.Extract(jd)
	ci := intel.Generate(company)

	confidence := make(map[string]models.SkillConfidence)
	for _, s := range extracted.All() {
		confidence[s] = models.ConfidencePractice
	}

	base := BaseScore(jd, company, role, extracted)
	now := a.Now().UTC()

	return models.Analysis{
		SchemaVersion:      CurrentSchemaVersion,
		ID:                 a.NewID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jd,
		ExtractedSkills:    extracted,
		Checklist:          Checklist(extracted),
		Plan7Days:          Plan(extracted),
		Questions:          Questions(extracted),
		BaseScore:          base,
		FinalScore:         FinalScore(base, extracted, confidence),
		SkillConfidenceMap: confidence,
		CompanyIntel:       ci,
		RoundMapping:       intel.Rounds(extracted, ci),
	}, warnings, nil
}

// ToggleSkill flips a skill between "know" and "practice" and recomputes the
// final score. The base score is left alone.
func ToggleSkill(a models.Analysis, skill string, now time.Time) (models.Analysis, error) {
	found := false
	for _, s := range a.ExtractedSkills.All() {
		if s == skill {
			found = true
			break
		}
	}
	if !found {
		return a, ErrUnknownSkill
	}

	return SetConfidence(a, skill, next(a.SkillConfidenceMap[skill]), now), nil
}

// SetConfidence records a confidence level and recomputes the final score
func SetConfidence(a models.Analysis, skill string, c models.SkillConfidence, now time.Time) models.Analysis {
	confidence := make(map[string]models.SkillConfidence, len(a.SkillConfidenceMap)+1)
	for k, v := range a.SkillConfidenceMap {
		confidence[k] = v
	}
	confidence[skill] = c

	a.SkillConfidenceMap = confidence
	a.FinalScore = FinalScore(a.BaseScore, a.ExtractedSkills, confidence)
	a.UpdatedAt = now.UTC()
	return a
}

// WeakSkills lists skills still marked "practice", in extraction order
func WeakSkills(a models.Analysis) []string {
	var out []string
	for _, s := range a.ExtractedSkills.All() {
		if a.SkillConfidenceMap[s] != models.ConfidenceKnow {
			out = append(out, s)
		}
	}
	return out
}

func next(c models.SkillConfidence) models.SkillConfidence {
	if c == models.ConfidenceKnow {
		return models.ConfidencePractice
	}
	return models.ConfidenceKnow
}
