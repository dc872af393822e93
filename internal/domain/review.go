package domain

import (
	"context"
	"time"
)

// Review holds one user's ratings of a company; one per (user_id, company_id).
// All four ratings are integers in [1, 5].
type Review struct {
	ID                  string    `json:"id"`
	CompanyID           string    `json:"company_id"`
	UserID              string    `json:"user_id"`
	RatingWorkCulture   int       `json:"rating_work_culture"`
	RatingSalary        int       `json:"rating_salary"`
	RatingHR            int       `json:"rating_hr"`
	RatingManagement    int       `json:"rating_management"`
	Pros                string    `json:"pros"`
	Cons                string    `json:"cons"`
	InterviewExperience *string   `json:"interview_experience,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ReviewAggregate is the per-company rating summary returned with listings.
type ReviewAggregate struct {
	CompanyID          string  `json:"company_id"`
	ReviewCount        int64   `json:"review_count"`
	AvgWorkCulture     float64 `json:"avg_work_culture"`
	AvgSalary          float64 `json:"avg_salary"`
	AvgHR              float64 `json:"avg_hr"`
	AvgManagement      float64 `json:"avg_management"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	GetByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]Review, int64, error)
	Aggregate(ctx context.Context, companyID string) (*ReviewAggregate, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, actor Identity, review *Review) error
	ListByCompany(ctx context.Context, companyID string, page, pageSize int) ([]Review, *ReviewAggregate, int64, error)
	UpdateReview(ctx context.Context, actor Identity, review *Review) error
	DeleteReview(ctx context.Context, actor Identity, id string) error
}
