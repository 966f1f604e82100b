package model

import "time"

// SubmissionType distinguishes contact-form entries.
type SubmissionType string

const (
	SubmissionInquiry  SubmissionType = "Inquiry"
	SubmissionFeedback SubmissionType = "Feedback"
)

// IsValid reports whether the type is one of the enumerated values.
func (t SubmissionType) IsValid() bool {
	return t == SubmissionInquiry || t == SubmissionFeedback
}

// SubmissionStatus tracks how far an admin has processed a submission.
type SubmissionStatus string

const (
	SubmissionNew      SubmissionStatus = "New"
	SubmissionRead     SubmissionStatus = "Read"
	SubmissionArchived SubmissionStatus = "Archived"
)

// IsValid reports whether the status is one of the enumerated values.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionNew, SubmissionRead, SubmissionArchived:
		return true
	}
	return false
}

// Submission is a message left through the public contact form.
type Submission struct {
	ID        uint64           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Message   string           `json:"message"`
	Type      SubmissionType   `json:"type"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}
