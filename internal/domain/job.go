package domain

import (
	"context"
	"time"
)

type Job struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Company            string    `json:"company"`
	SalaryMin          *int     `json:"salary_min,omitempty"`
	SalaryMax          *int     `json:"salary_max,omitempty"`
	Location           string    `json:"location"`
	Skills             []string  `json:"skills"`
	ExperienceRequired *string   `json:"experience_required,omitempty"`
	ExperienceMinYears int       `json:"experience_min_years"`
	WorkMode           *string   `json:"work_mode,omitempty"`
	CreatedBy          string    `json:"created_by"`
	IsActive           bool      `json:"is_active"`
	PostedAt           time.Time `json:"posted_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	ApplicationCount   int       `json:"application_count"`
	ViewCount          int       `json:"view_count"`
}

// JobFilter is the typed query the repository translates to SQL. SkillsAny
// uses "any of" semantics (general search); SkillsAll requires every listed
// skill (alert matching). At most one of the two is set per query.
type JobFilter struct {
	Search             string
	Location           string
	WorkMode           string
	SkillsAny          []string
	SkillsAll          []string
	SalaryMin          int
	ExperienceMinYears int
	PostedAfter        *time.Time
	ActiveOnly         bool
}

// JobUpdate carries a partial update; nil fields are left untouched.
type JobUpdate struct {
	Title              *string   `json:"title,omitempty"`
	Description        *string   `json:"description,omitempty"`
	Company            *string   `json:"company,omitempty"`
	SalaryMin          *int      `json:"salary_min,omitempty"`
	SalaryMax          *int      `json:"salary_max,omitempty"`
	Location           *string   `json:"location,omitempty"`
	Skills             *[]string `json:"skills,omitempty"`
	ExperienceRequired *string   `json:"experience_required,omitempty"`
	ExperienceMinYears *int      `json:"experience_min_years,omitempty"`
	WorkMode           *string   `json:"work_mode,omitempty"`
	IsActive           *bool     `json:"is_active,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Search(ctx context.Context, filter JobFilter, limit, offset int) ([]Job, int64, error)
	FetchByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	// Counter bumps are advisory; they are separate writes and not atomic
	// with the operations that trigger them.
	IncrementViewCount(ctx context.Context, id string) error
	IncrementApplicationCount(ctx context.Context, id string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, actor Identity, job *Job) error
	// GetJob returns the job and bumps its view counter.
	GetJob(ctx context.Context, id string) (*Job, error)
	SearchJobs(ctx context.Context, filter JobFilter, page, pageSize int) ([]Job, int64, error)
	ListJobsByEmployer(ctx context.Context, actor Identity, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, actor Identity, id string, upd JobUpdate) (*Job, error)
	DeleteJob(ctx context.Context, actor Identity, id string) error
}
