// Package resume stores the resume being edited along with its template and
// accent, and implements the builder's editing operations.
package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/khrees2412/careerkit/internal/database"
	"github.com/khrees2412/careerkit/internal/schemas"
	"github.com/khrees2412/careerkit/pkg/models"
	"github.com/sirupsen/logrus"
)

// Store keys
const (
	DataKey     = "resumeBuilderData"
	TemplateKey = "resumeBuilderTemplate"
	AccentKey   = "resumeBuilderAccent"
)

// Defaults applied before the user picks a layout
const (
	DefaultTemplate = models.TemplateModern
	DefaultAccent   = models.AccentTeal
)

var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownTemplate = errors.New("unknown template")
	ErrUnknownAccent   = errors.New("unknown accent color")
)

// Section names a list of entries on the resume
type Section string

const (
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
)

// SkillKind names one of the three skill lists
type SkillKind string

const (
	SkillsTechnical SkillKind = "technical"
	SkillsSoft      SkillKind = "soft"
	SkillsTools     SkillKind = "tools"
)

// Repository reads and writes the resume in its store namespace
type Repository struct {
	store database.KeyValueStore
	log   logrus.FieldLogger
	newID func() string
}

// NewRepository creates a Repository
func NewRepository(store database.KeyValueStore, log logrus.FieldLogger) *Repository {
	return &Repository{store: store, log: log, newID: uuid.NewString}
}

// Empty is a resume with every list present and empty
func Empty() models.Resume {
	return models.Resume{
		Education:  []models.EducationEntry{},
		Experience: []models.ExperienceEntry{},
		Projects:   []models.ProjectEntry{},
		Skills:     models.SkillSet{Technical: []string{}, Soft: []string{}, Tools: []string{}},
	}
}

// Get returns the stored resume, or an empty one
func (r *Repository) Get() models.Resume {
	return database.Load(r.store, DataKey, Empty(), r.log)
}

// Save replaces the stored resume
func (r *Repository) Save(res models.Resume) error {
	if err := database.Save(r.store, DataKey, res); err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// Reset clears the resume
func (r *Repository) Reset() error {
	return r.Save(Empty())
}

// LoadSample replaces the resume with the sample one
func (r *Repository) LoadSample() (models.Resume, error) {
	res := Sample()
	return res, r.Save(res)
}

// Import validates a JSON resume document and stores it. Entries without an
// id, or repeating an id seen earlier in the same list, are given a new one.
func (r *Repository) Import(doc []byte) (models.Resume, error) {
	if err := schemas.ValidateResume(doc); err != nil {
		return models.Resume{}, err
	}

	res := Empty()
	if err := json.Unmarshal(doc, &res); err != nil {
		return models.Resume{}, fmt.Errorf("failed to decode resume: %w", err)
	}
	res.Education = uniqueIDs(res.Education, r.newID, func(e *models.EducationEntry) *string { return &e.ID })
	res.Experience = uniqueIDs(res.Experience, r.newID, func(e *models.ExperienceEntry) *string { return &e.ID })
	res.Projects = uniqueIDs(res.Projects, r.newID, func(p *models.ProjectEntry) *string { return &p.ID })
	return res, r.Save(res)
}

// uniqueIDs gives every entry whose id is empty or already taken a new id
func uniqueIDs[T any](list []T, newID func() string, id func(*T) *string) []T {
	seen := make(map[string]bool, len(list))
	for i := range list {
		p := id(&list[i])
		if *p == "" || seen[*p] {
			*p = newID()
		}
		seen[*p] = true
	}
	return list
}

// SetField sets a personal info field, the summary or a link
func (r *Repository) SetField(field, value string) error {
	res := r.Get()
	switch strings.ToLower(field) {
	case "name":
		res.PersonalInfo.Name = value
	case "email":
		res.PersonalInfo.Email = value
	case "phone":
		res.PersonalInfo.Phone = value
	case "location":
		res.PersonalInfo.Location = value
	case "summary":
		res.Summary = value
	case "github":
		res.Links.GitHub = value
	case "linkedin":
		res.Links.LinkedIn = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return r.Save(res)
}

// SaveEducation replaces the entry with the same id or appends a new one
// with a fresh id
func (r *Repository) SaveEducation(e models.EducationEntry) (models.EducationEntry, error) {
	res := r.Get()
	res.Education, e = upsert(res.Education, e, r.newID,
		func(x models.EducationEntry) string { return x.ID },
		func(x *models.EducationEntry, id string) { x.ID = id })
	return e, r.Save(res)
}

// SaveExperience replaces the entry with the same id or appends a new one
// with a fresh id
func (r *Repository) SaveExperience(e models.ExperienceEntry) (models.ExperienceEntry, error) {
	res := r.Get()
	res.Experience, e = upsert(res.Experience, e, r.newID,
		func(x models.ExperienceEntry) string { return x.ID },
		func(x *models.ExperienceEntry, id string) { x.ID = id })
	return e, r.Save(res)
}

// SaveProject replaces the entry with the same id or appends a new one with
// a fresh id
func (r *Repository) SaveProject(p models.ProjectEntry) (models.ProjectEntry, error) {
	res := r.Get()
	res.Projects, p = upsert(res.Projects, p, r.newID,
		func(x models.ProjectEntry) string { return x.ID },
		func(x *models.ProjectEntry, id string) { x.ID = id })
	return p, r.Save(res)
}

// upsert keeps list order: a known id is replaced in place, anything else is
// appended under a new id
func upsert[T any](list []T, e T, newID func() string, idOf func(T) string, setID func(*T, string)) ([]T, T) {
	if id := idOf(e); id != "" {
		for i := range list {
			if idOf(list[i]) == id {
				list[i] = e
				return list, e
			}
		}
	}
	setID(&e, newID())
	return append(list, e), e
}

// Remove deletes the entry with id from a section
func (r *Repository) Remove(section Section, id string) error {
	res := r.Get()
	var removed bool
	switch section {
	case SectionEducation:
		res.Education, removed = removeByID(res.Education, id, func(x models.EducationEntry) string { return x.ID })
	case SectionExperience:
		res.Experience, removed = removeByID(res.Experience, id, func(x models.ExperienceEntry) string { return x.ID })
	case SectionProjects:
		res.Projects, removed = removeByID(res.Projects, id, func(x models.ProjectEntry) string { return x.ID })
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if !removed {
		return fmt.Errorf("%w: %s %s", ErrEntryNotFound, section, id)
	}
	return r.Save(res)
}

func removeByID[T any](list []T, id string, idOf func(T) string) ([]T, bool) {
	n := len(list)
	list = slices.DeleteFunc(list, func(x T) bool { return idOf(x) == id })
	return list, len(list) != n
}

// AddSkills appends skills to a list, skipping blanks and duplicates
func (r *Repository) AddSkills(kind SkillKind, names ...string) error {
	res := r.Get()
	list, err := skillList(&res.Skills, kind)
	if err != nil {
		return err
	}
	*list = mergeSkills(*list, names)
	return r.Save(res)
}

// RemoveSkill drops a skill from a list
func (r *Repository) RemoveSkill(kind SkillKind, name string) error {
	res := r.Get()
	list, err := skillList(&res.Skills, kind)
	if err != nil {
		return err
	}
	*list = slices.DeleteFunc(*list, func(s string) bool { return strings.EqualFold(s, name) })
	return r.Save(res)
}

// SuggestSkills merges a fixed set of common skills into every list
func (r *Repository) SuggestSkills() (models.SkillSet, error) {
	res := r.Get()
	res.Skills.Technical = mergeSkills(res.Skills.Technical, []string{"TypeScript", "React", "Node.js", "PostgreSQL", "GraphQL"})
	res.Skills.Soft = mergeSkills(res.Skills.Soft, []string{"Team Leadership", "Problem Solving"})
	res.Skills.Tools = mergeSkills(res.Skills.Tools, []string{"Git", "Docker", "AWS"})
	return res.Skills, r.Save(res)
}

func skillList(s *models.SkillSet, kind SkillKind) (*[]string, error) {
	switch kind {
	case SkillsTechnical:
		return &s.Technical, nil
	case SkillsSoft:
		return &s.Soft, nil
	case SkillsTools:
		return &s.Tools, nil
	}
	return nil, fmt.Errorf("%w: skills %s", ErrUnknownSection, kind)
}

func mergeSkills(list, add []string) []string {
	for _, name := range add {
		name = strings.TrimSpace(name)
		if name == "" || slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, name) }) {
			continue
		}
		list = append(list, name)
	}
	return list
}

// Template returns the selected layout
func (r *Repository) Template() models.ResumeTemplate {
	return database.Load(r.store, TemplateKey, DefaultTemplate, r.log)
}

// SetTemplate selects a layout
func (r *Repository) SetTemplate(t models.ResumeTemplate) error {
	if !slices.Contains(models.Templates, t) {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, t)
	}
	return database.Save(r.store, TemplateKey, t)
}

// Accent returns the selected accent color
func (r *Repository) Accent() models.AccentColor {
	return database.Load(r.store, AccentKey, DefaultAccent, r.log)
}

// SetAccent selects an accent color
func (r *Repository) SetAccent(a models.AccentColor) error {
	if !slices.Contains(models.AccentColors, a) {
		return fmt.Errorf("%w: %s", ErrUnknownAccent, a)
	}
	return database.Save(r.store, AccentKey, a)
}
