// Package intel guesses how a company hires and which interview rounds to
// expect.
package intel

import (
	"slices"
	"strings"

	"github.com/khrees2412/careerkit/pkg/models"
)

// Industry is the industry reported for every company
const Industry = "Technology Services"

var enterpriseCompanies = []string{
	"amazon", "google", "microsoft", "apple", "facebook", "meta", "infosys", "tcs", "wipro",
	"accenture", "cognizant", "ibm", "oracle", "cisco", "intel", "samsung", "goldman sachs",
	"jpmorgan chase",
}

type focus struct {
	title       string
	description string
}

var hiringFocus = map[models.CompanySize]focus{
	models.SizeEnterprise: {
		"Structured Problem-Solving",
		"Large companies often use standardized, multi-stage interviews focusing on strong DSA, core CS fundamentals, and system design principles to assess candidates at scale.",
	},
	models.SizeMidSize: {
		"Practical Skills & Scalability",
		"Mid-size firms look for a balance of strong fundamentals and practical skills that can help them scale their products and teams effectively.",
	},
	models.SizeStartup: {
		"Stack Versatility & Impact",
		"Startups prioritize candidates who are proficient in their specific tech stack and can quickly build features, solve problems independently, and make an immediate impact.",
	},
}

// Classify maps a company name to a coarse size
func Classify(name string) models.CompanySize {
	if name == "" {
		return models.SizeUnknown
	}
	lower := strings.ToLower(name)
	switch {
	case slices.Contains(enterpriseCompanies, lower):
		return models.SizeEnterprise
	case strings.Contains(lower, "university"), strings.Contains(lower, "college"):
		return models.SizeEnterprise
	case strings.Contains(lower, "solutions"), strings.Contains(lower, "tech"):
		return models.SizeMidSize
	default:
		return models.SizeStartup
	}
}

// Generate returns the hiring profile of a company, or nil for an empty name
func Generate(name string) *models.CompanyIntel {
	if name == "" {
		return nil
	}
	size := Classify(name)
	f, ok := hiringFocus[size]
	if !ok {
		f = hiringFocus[models.SizeStartup]
	}
	return &models.CompanyIntel{
		Name:                   name,
		Industry:               Industry,
		Size:                   size,
		HiringFocus:            f.title,
		HiringFocusDescription: f.description,
	}
}
