package domain

import (
	"context"
	"time"
)

// AlertSearchParams are the stored criteria of a job alert. Unlike general
// job search, the Skills list uses "all of" semantics: alerts are meant to be
// precise, not broad.
type AlertSearchParams struct {
	Search        string   `json:"search,omitempty"`
	Location      string   `json:"location,omitempty"`
	WorkMode      string   `json:"work_mode,omitempty"`
	SalaryMin     int      `json:"salary_min,omitempty"`
	ExperienceMin int      `json:"experience_min,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

type JobAlert struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Title            string            `json:"title"`
	SearchParams     AlertSearchParams `json:"search_params"`
	Frequency        string            `json:"frequency"`
	IsActive         bool              `json:"is_active"`
	EmailEnabled     bool              `json:"email_notifications"`
	LastTriggered    *time.Time        `json:"last_triggered,omitempty"`
	MatchedJobsCount int               `json:"matched_jobs_count"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type JobAlertRepository interface {
	Create(ctx context.Context, alert *JobAlert) error
	GetByID(ctx context.Context, id string) (*JobAlert, error)
	GetByUserID(ctx context.Context, userID string, activeOnly bool) ([]JobAlert, error)
	Update(ctx context.Context, alert *JobAlert) error
	MarkTriggered(ctx context.Context, id string, at time.Time, matched int) error
	Delete(ctx context.Context, id string) error
}

type JobAlertUsecase interface {
	CreateAlert(ctx context.Context, actor Identity, alert *JobAlert) error
	GetAlert(ctx context.Context, actor Identity, id string) (*JobAlert, error)
	ListMine(ctx context.Context, actor Identity) ([]JobAlert, error)
	UpdateAlert(ctx context.Context, actor Identity, alert *JobAlert) error
	DeleteAlert(ctx context.Context, actor Identity, id string) error
	// RecentMatches runs the matcher over the caller's active alerts and
	// returns jobs posted since each alert last fired. Invoked on demand;
	// there is no background scheduler.
	RecentMatches(ctx context.Context, actor Identity) ([]Job, error)
}
