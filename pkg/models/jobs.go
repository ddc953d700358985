package models

import (
	"strings"
	"time"
)

// WorkMode is where the work happens
type WorkMode string

const (
	ModeRemote WorkMode = "Remote"
	ModeHybrid WorkMode = "Hybrid"
	ModeOnsite WorkMode = "Onsite"
)

// Job is an immutable catalog entry
type Job struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          WorkMode `json:"mode"`
	Experience    string   `json:"experience"`
	Skills        []string `json:"skills"`
	Source        string   `json:"source"`
	PostedDaysAgo int      `json:"postedDaysAgo"`
	SalaryRange   string   `json:"salaryRange"`
	ApplyURL      string   `json:"applyUrl"`
	Description   string   `json:"description"`
}

// ScoredJob is a job paired with its match score for the current preferences
type ScoredJob struct {
	Job
	MatchScore int `json:"matchScore"`
}

// ExperienceAll disables the experience-level constraint
const ExperienceAll = "All"

// Preferences are the user's matching criteria
type Preferences struct {
	RoleKeywords       string   `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredMode      []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             string   `json:"skills"`
	MinMatchScore      int      `json:"minMatchScore" validate:"gte=0,lte=100"`
}

// DefaultPreferences returns the preferences used before the user saves any
func DefaultPreferences() Preferences {
	return Preferences{
		PreferredLocations: []string{},
		PreferredMode:      []string{},
		ExperienceLevel:    ExperienceAll,
		MinMatchScore:      40,
	}
}

// JobStatus is the application state of a job
type JobStatus string

const (
	StatusNotApplied JobStatus = "Not Applied"
	StatusApplied    JobStatus = "Applied"
	StatusRejected   JobStatus = "Rejected"
	StatusSelected   JobStatus = "Selected"
)

// JobStatuses lists every status in display order
var JobStatuses = []JobStatus{StatusNotApplied, StatusApplied, StatusRejected, StatusSelected}

// ParseJobStatus matches a status name case-insensitively
func ParseJobStatus(s string) (JobStatus, bool) {
	for _, st := range JobStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

// StatusUpdate records one status transition
type StatusUpdate struct {
	JobID     string    `json:"jobId"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Status    JobStatus `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}
