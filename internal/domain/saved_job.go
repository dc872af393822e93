package domain

import (
	"context"
	"time"
)

// SavedJob is a bookmark; one per (user_id, job_id), unique index enforced.
type SavedJob struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"created_at"`

	JobTitle    *string `json:"job_title,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

type SavedJobRepository interface {
	Create(ctx context.Context, saved *SavedJob) error
	GetByUserID(ctx context.Context, userID string) ([]SavedJob, error)
	Delete(ctx context.Context, userID, jobID string) error
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, actor Identity, jobID string) (*SavedJob, error)
	ListSavedJobs(ctx context.Context, actor Identity) ([]SavedJob, error)
	UnsaveJob(ctx context.Context, actor Identity, jobID string) error
}
