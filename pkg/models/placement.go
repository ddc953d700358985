package models

import "time"

// SkillCategory names a bucket of extracted skills
type SkillCategory string

const (
	CategoryCoreCS    SkillCategory = "coreCS"
	CategoryLanguages SkillCategory = "languages"
	CategoryWeb       SkillCategory = "web"
	CategoryData      SkillCategory = "data"
	CategoryCloud     SkillCategory = "cloud"
	CategoryTesting   SkillCategory = "testing"
	CategoryOther     SkillCategory = "other"
)

// SkillCategories lists the categories in extraction order
var SkillCategories = []SkillCategory{
	CategoryCoreCS, CategoryLanguages, CategoryWeb, CategoryData,
	CategoryCloud, CategoryTesting, CategoryOther,
}

// ExtractedSkills holds skills detected in a job description, per category
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// Get returns the skills of one category
func (e ExtractedSkills) Get(c SkillCategory) []string {
	switch c {
	case CategoryCoreCS:
		return e.CoreCS
	case CategoryLanguages:
		return e.Languages
	case CategoryWeb:
		return e.Web
	case CategoryData:
		return e.Data
	case CategoryCloud:
		return e.Cloud
	case CategoryTesting:
		return e.Testing
	case CategoryOther:
		return e.Other
	}
	return nil
}

// Add appends a skill to a category
func (e *ExtractedSkills) Add(c SkillCategory, skill string) {
	switch c {
	case CategoryCoreCS:
		e.CoreCS = append(e.CoreCS, skill)
	case CategoryLanguages:
		e.Languages = append(e.Languages, skill)
	case CategoryWeb:
		e.Web = append(e.Web, skill)
	case CategoryData:
		e.Data = append(e.Data, skill)
	case CategoryCloud:
		e.Cloud = append(e.Cloud, skill)
	case CategoryTesting:
		e.Testing = append(e.Testing, skill)
	case CategoryOther:
		e.Other = append(e.Other, skill)
	}
}

// All flattens every category in extraction order
func (e ExtractedSkills) All() []string {
	var all []string
	for _, c := range SkillCategories {
		all = append(all, e.Get(c)...)
	}
	return all
}

// NonEmptyCategories counts categories holding at least one skill
func (e ExtractedSkills) NonEmptyCategories() int {
	n := 0
	for _, c := range SkillCategories {
		if len(e.Get(c)) > 0 {
			n++
		}
	}
	return n
}

// SkillConfidence is the user's self-assessment for a skill
type SkillConfidence string

const (
	ConfidenceKnow     SkillConfidence = "know"
	ConfidencePractice SkillConfidence = "practice"
)

// CompanySize is the coarse classification of a company
type CompanySize string

const (
	SizeStartup    CompanySize = "Startup"
	SizeMidSize    CompanySize = "Mid-size"
	SizeEnterprise CompanySize = "Enterprise"
	SizeUnknown    CompanySize = "Unknown"
)

// CompanyIntel describes the hiring style expected from a company
type CompanyIntel struct {
	Name                   string      `json:"name"`
	Industry               string      `json:"industry"`
	Size                   CompanySize `json:"size"`
	HiringFocus            string      `json:"hiringFocus"`
	HiringFocusDescription string      `json:"hiringFocusDescription"`
}

// InterviewRound describes one expected interview round
type InterviewRound struct {
	Round        int    `json:"round"`
	Title        string `json:"title"`
	Focus        string `json:"focus"`
	WhyItMatters string `json:"whyItMatters"`
}

// ChecklistRound is a preparation checklist for one round
type ChecklistRound struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// DayPlan is one day of the preparation plan
type DayPlan struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Analysis is a saved placement-readiness analysis
type Analysis struct {
	SchemaVersion      int                        `json:"schemaVersion"`
	ID                 string                     `json:"id"`
	CreatedAt          time.Time                  `json:"createdAt"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
	Company            string                     `json:"company"`
	Role               string                     `json:"role"`
	JDText             string                     `json:"jdText"`
	ExtractedSkills    ExtractedSkills            `json:"extractedSkills"`
	Checklist          []ChecklistRound           `json:"checklist"`
	Plan7Days          []DayPlan                  `json:"plan7Days"`
	Questions          []string                   `json:"questions"`
	BaseScore          int                        `json:"baseScore"`
	FinalScore         int                        `json:"finalScore"`
	SkillConfidenceMap map[string]SkillConfidence `json:"skillConfidenceMap"`
	CompanyIntel       *CompanyIntel              `json:"companyIntel,omitempty"`
	RoundMapping       []InterviewRound           `json:"roundMapping"`
}
