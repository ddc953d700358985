// Package catalog provides the job listings the tracker scores.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/khrees2412/careerkit/internal/schemas"
	"github.com/khrees2412/careerkit/pkg/models"
)

// Size is the number of generated listings
const Size = 60

var companies = []string{
	"Infosys", "TCS", "Wipro", "Accenture", "Capgemini", "Cognizant", "IBM", "Oracle", "SAP", "Dell",
	"Amazon", "Flipkart", "Swiggy", "Razorpay", "PhonePe", "Paytm", "Zoho", "Freshworks", "Juspay", "CRED",
	"Zomato", "Groww", "Paytm", "Lenskart", "Nykaa", "InMobi", "Dream11", "Postman", "Unacademy", "Udaan",
}

// Locations, Modes and Sources are the values a generated listing can take
var (
	Locations = []string{"Bengaluru", "Hyderabad", "Pune", "Gurgaon", "Chennai", "Mumbai", "Noida", "Remote"}
	Modes     = []models.WorkMode{models.ModeRemote, models.ModeHybrid, models.ModeOnsite}
	Sources   = []string{"LinkedIn", "Naukri", "Indeed"}
)

type role struct {
	title      string
	experience string
	salary     string
}

var roles = []role{
	{"SDE Intern", "Fresher", "₹25k–₹40k/month Internship"},
	{"Graduate Engineer Trainee", "Fresher", "3.5–6 LPA"},
	{"Junior Backend Developer", "0-1", "6–10 LPA"},
	{"Frontend Intern", "Fresher", "₹15k–₹30k/month Internship"},
	{"QA Intern", "Fresher", "₹20k–₹35k/month Internship"},
	{"Data Analyst Intern", "Fresher", "₹25k–₹45k/month Internship"},
	{"Java Developer (0-1)", "0-1", "6–12 LPA"},
	{"Python Developer (Fresher)", "Fresher", "5–8 LPA"},
	{"React Developer (1-3)", "1-3", "10–18 LPA"},
	{"DevOps Associate", "1-3", "12–20 LPA"},
	{"Node.js Developer", "3-5", "15–25 LPA"},
	{"UI/UX Designer", "1-3", "8–15 LPA"},
}

var skillPool = []string{"React", "Node.js", "Java", "Python", "AWS", "SQL", "Docker", "Go", "TypeScript", "Tailwind CSS", "Spring Boot", "Kotlin"}

const descriptionTemplate = `We are looking for a highly motivated %s to join our engineering team at %s.
You will be responsible for building scalable components and working closely with product managers.
Candidates should have a strong grasp of fundamentals and be ready to work in a fast-paced environment.
This is a great opportunity to kickstart your career at one of India's leading tech organizations.`

// Generate builds the deterministic built-in catalog
func Generate() []models.Job {
	jobs := make([]models.Job, Size)
	for i := range jobs {
		r := roles[i%len(roles)]
		company := companies[i%len(companies)]

		start := i % len(skillPool)
		rotated := append(append([]string{}, skillPool[start:]...), skillPool[:start]...)

		jobs[i] = models.Job{
			ID:            fmt.Sprintf("job-%d", i),
			Title:         r.title,
			Company:       company,
			Location:      Locations[i%len(Locations)],
			Mode:          Modes[i%len(Modes)],
			Experience:    r.experience,
			Skills:        rotated[:3+i%3],
			Source:        Sources[i%len(Sources)],
			PostedDaysAgo: i % 11,
			SalaryRange:   r.salary,
			ApplyURL:      fmt.Sprintf("https://%s.com/careers/jobs/%d", urlSlug(company), i),
			Description:   fmt.Sprintf(descriptionTemplate, r.title, company),
		}
	}
	return jobs
}

// Load reads a catalog from a JSON file after validating it against the
// catalog schema
func Load(path string) ([]models.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if err := schemas.ValidateCatalog(data); err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return jobs, nil
}

// Open returns the catalog at path, or the built-in one when path is empty
func Open(path string) ([]models.Job, error) {
	if path == "" {
		return Generate(), nil
	}
	return Load(path)
}

// Find returns the job with the given id
func Find(jobs []models.Job, id string) (models.Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.Job{}, false
}

// Distinct returns the distinct values of a field in catalog order
func Distinct(jobs []models.Job, field func(models.Job) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, j := range jobs {
		v := field(j)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func urlSlug(company string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(company)), "")
	return strings.Replace(slug, ".", "", 1)
}
