package models

// PersonalInfo holds the contact block at the top of a resume
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// EducationEntry represents one school or degree
type EducationEntry struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// ExperienceEntry represents one position held
type ExperienceEntry struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// ProjectEntry represents a side or portfolio project
type ProjectEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	LiveURL     string   `json:"liveUrl,omitempty"`
	GitHubURL   string   `json:"githubUrl,omitempty"`
}

// SkillSet groups resume skills by kind
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// Count returns the number of skills across all kinds
func (s SkillSet) Count() int {
	return len(s.Technical) + len(s.Soft) + len(s.Tools)
}

// All returns technical, soft and tool skills in that order
func (s SkillSet) All() []string {
	all := make([]string, 0, s.Count())
	all = append(all, s.Technical...)
	all = append(all, s.Soft...)
	all = append(all, s.Tools...)
	return all
}

// Links are the external profiles shown on a resume
type Links struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Resume is the structured resume record edited by the builder
type Resume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Projects     []ProjectEntry    `json:"projects"`
	Skills       SkillSet          `json:"skills"`
	Links        Links             `json:"links"`
}

// ResumeTemplate selects the resume layout
type ResumeTemplate string

const (
	TemplateClassic ResumeTemplate = "classic"
	TemplateModern  ResumeTemplate = "modern"
	TemplateMinimal ResumeTemplate = "minimal"
)

// Templates lists the available layouts
var Templates = []ResumeTemplate{TemplateClassic, TemplateModern, TemplateMinimal}

// AccentColor is the highlight color used by a template
type AccentColor string

const (
	AccentTeal     AccentColor = "teal"
	AccentNavy     AccentColor = "navy"
	AccentBurgundy AccentColor = "burgundy"
	AccentForest   AccentColor = "forest"
	AccentCharcoal AccentColor = "charcoal"
)

// AccentColors lists the available accents
var AccentColors = []AccentColor{AccentTeal, AccentNavy, AccentBurgundy, AccentForest, AccentCharcoal}
