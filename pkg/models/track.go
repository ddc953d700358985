package models

import "time"

// StepStatus is the progression state of a build-track step
type StepStatus string

const (
	StepLocked    StepStatus = "locked"
	StepUnlocked  StepStatus = "unlocked"
	StepCompleted StepStatus = "completed"
)

// StepState is a step and where it stands
type StepState struct {
	ID     string     `json:"id"`
	Status StepStatus `json:"status"`
}

// Artifact marks the file submitted to complete a step
type Artifact struct {
	FileName   string    `json:"fileName"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SubmissionLinks are the external links required to ship
type SubmissionLinks struct {
	Lovable string `json:"lovableLink" validate:"omitempty,url,httpurl"`
	GitHub  string `json:"githubLink" validate:"omitempty,url,httpurl"`
	Deploy  string `json:"deployLink" validate:"omitempty,url,httpurl"`
}

// BuildTrackState is the persisted state of a build track
type BuildTrackState struct {
	Steps     []StepState         `json:"steps"`
	Artifacts map[string]Artifact `json:"artifacts"`
	Links     SubmissionLinks     `json:"links"`
}
