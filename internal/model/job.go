package model

import "time"

// JobStatus is the lifecycle of a job posting.
type JobStatus string

const (
	JobOpen   JobStatus = "Open"
	JobFilled JobStatus = "Filled"
	JobClosed JobStatus = "Closed"
)

// IsValid reports whether the status is one of the enumerated values.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobOpen, JobFilled, JobClosed:
		return true
	}
	return false
}

// EmploymentType classifies a job posting.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
)

// IsValid reports whether the employment type is one of the enumerated values.
func (t EmploymentType) IsValid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	}
	return false
}

// Job is an open position advertised on the careers page.
type Job struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Type        EmploymentType `json:"type"`
	Description string         `json:"description"`
	Status      JobStatus      `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
