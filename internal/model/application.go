package model

import "time"

// ApplicationStatus is the admin-controlled state of a job application.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "Pending"
	ApplicationUnderReview ApplicationStatus = "Under Review"
	ApplicationHired       ApplicationStatus = "Hired"
	ApplicationRejected    ApplicationStatus = "Rejected"
)

// IsValid reports whether the status is one of the enumerated values.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationHired, ApplicationRejected:
		return true
	}
	return false
}

// Application is a candidate's submission for a job posting.  CVPath
// is a link to the applicant's resume supplied with the form.
type Application struct {
	ID          uint64            `json:"id"`
	JobID       uint64            `json:"job_id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	CVPath      string            `json:"cv_path"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
