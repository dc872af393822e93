package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusApplied   = "applied"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusOffered   = "offered"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewed, ApplicationStatusInterview,
		ApplicationStatusOffered, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a job seeker to a job. At most one exists per
// (user_id, job_id) pair, enforced by a unique index.
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByUserID(ctx context.Context, userID string) ([]Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	Apply(ctx context.Context, actor Identity, jobID, coverLetter, resumeURL string) (*Application, error)
	MyApplications(ctx context.Context, actor Identity) ([]Application, error)
	Withdraw(ctx context.Context, actor Identity, applicationID string) error

	// Employer operations
	ListByJob(ctx context.Context, actor Identity, jobID string) ([]Application, error)
	UpdateStatus(ctx context.Context, actor Identity, applicationID, status string) error
}
