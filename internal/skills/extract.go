// Package skills detects technical skills mentioned in a job description.
package skills

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/khrees2412/careerkit/pkg/models"
)

type category struct {
	name     models.SkillCategory
	keywords []string
}

// keywordTable is scanned in order; the order decides the order of results
var keywordTable = []category{
	{models.CategoryCoreCS, []string{"dsa", "data structures", "algorithms", "oop", "object oriented", "dbms", "database management", "os", "operating systems", "networks", "computer networks"}},
	{models.CategoryLanguages, []string{"java", "python", "javascript", "typescript", "c#", "c++", "c", "go", "golang"}},
	{models.CategoryWeb, []string{"react", "next.js", "nextjs", "node.js", "nodejs", "express", "rest", "graphql", "api", "html", "css", "frontend", "backend"}},
	{models.CategoryData, []string{"sql", "mongodb", "postgresql", "mysql", "redis", "database"}},
	{models.CategoryCloud, []string{"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "ci-cd", "linux", "devops"}},
	{models.CategoryTesting, []string{"selenium", "cypress", "playwright", "junit", "pytest", "testing", "qa"}},
}

// displayNames overrides the default capitalisation for acronyms and
// product names
var displayNames = map[string]string{
	"dsa":        "DSA",
	"oop":        "OOP",
	"dbms":       "DBMS",
	"os":         "OS",
	"c#":         "C#",
	"c++":        "C++",
	"c":          "C",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"api":        "API",
	"rest":       "REST",
	"graphql":    "GraphQL",
	"html":       "HTML",
	"css":        "CSS",
	"sql":        "SQL",
	"mongodb":    "MongoDB",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"ci/cd":      "CI/CD",
	"ci-cd":      "CI/CD",
	"devops":     "DevOps",
	"junit":      "JUnit",
	"qa":         "QA",
}

// Fallback is returned when nothing in the text matches
var Fallback = []string{"Communication", "Problem Solving", "Basic Coding", "Projects"}

// Normalize returns the display form of a keyword
func Normalize(keyword string) string {
	lower := strings.ToLower(keyword)
	if name, ok := displayNames[lower]; ok {
		return name
	}
	if strings.Contains(lower, "next") {
		return "Next.js"
	}
	if strings.Contains(lower, "node") {
		return "Node.js"
	}
	r, size := utf8.DecodeRuneInString(keyword)
	if r == utf8.RuneError {
		return keyword
	}
	return string(unicode.ToUpper(r)) + keyword[size:]
}

// Extract finds every keyword contained in text, grouped by category and
// deduplicated by display form. When nothing matches the generic fallback
// skills are returned under the "other" category.
func Extract(text string) models.ExtractedSkills {
	lower := strings.ToLower(text)
	out := models.ExtractedSkills{}
	found := false

	for _, cat := range keywordTable {
		for _, kw := range cat.keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			name := Normalize(kw)
			if slices.Contains(out.Get(cat.name), name) {
				continue
			}
			out.Add(cat.name, name)
			found = true
		}
	}

	if !found {
		out.Other = slices.Clone(Fallback)
	}
	return withEmptyCategories(out)
}

// Keywords returns the keyword list of a category
func Keywords(c models.SkillCategory) []string {
	for _, cat := range keywordTable {
		if cat.name == c {
			return slices.Clone(cat.keywords)
		}
	}
	return nil
}

// withEmptyCategories replaces nil lists with empty ones so the stored JSON
// always carries every category
func withEmptyCategories(e models.ExtractedSkills) models.ExtractedSkills {
	for _, p := range []*[]string{&e.CoreCS, &e.Languages, &e.Web, &e.Data, &e.Cloud, &e.Testing, &e.Other} {
		if *p == nil {
			*p = []string{}
		}
	}
	return e
}
