package domain

import (
	"context"
	"time"
)

// Verification status constants shared by companies and verification requests.
const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

type Company struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Website            string    `json:"website,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	Size               string    `json:"size,omitempty"`
	FoundedYear        int       `json:"founded_year,omitempty"`
	Headquarters       string    `json:"headquarters,omitempty"`
	OwnerID            string    `json:"owner_id"`
	VerificationStatus string    `json:"verification_status"`
	IsVerified         bool      `json:"is_verified"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompanyVerification is a request to verify a company; one per company,
// status settable only by an admin.
type CompanyVerification struct {
	ID         string            `json:"id"`
	CompanyID  string            `json:"company_id"`
	OwnerID    string            `json:"owner_id"`
	Documents  map[string]string `json:"documents"`
	Status     string            `json:"status"`
	Notes      *string           `json:"notes,omitempty"`
	VerifiedBy *string           `json:"verified_by,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, int64, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
	SetVerification(ctx context.Context, id, status string, verified bool) error
}

type VerificationRepository interface {
	Create(ctx context.Context, v *CompanyVerification) error
	GetByID(ctx context.Context, id string) (*CompanyVerification, error)
	GetByCompanyID(ctx context.Context, companyID string) (*CompanyVerification, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]CompanyVerification, int64, error)
	UpdateStatus(ctx context.Context, id, status string, notes *string, verifiedBy string) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, actor Identity, company *Company) error
	GetCompany(ctx context.Context, id string) (*Company, error)
	ListCompanies(ctx context.Context, page, pageSize int) ([]Company, int64, error)
	UpdateCompany(ctx context.Context, actor Identity, company *Company) error
	DeleteCompany(ctx context.Context, actor Identity, id string) error
}

type VerificationUsecase interface {
	SubmitRequest(ctx context.Context, actor Identity, companyID string, documents map[string]string) (*CompanyVerification, error)
	GetRequest(ctx context.Context, actor Identity, companyID string) (*CompanyVerification, error)
	ListPending(ctx context.Context, actor Identity, page, pageSize int) ([]CompanyVerification, int64, error)
	// Decide approves or rejects a request; admin only. Approval also flips
	// the company's verified flag.
	Decide(ctx context.Context, actor Identity, requestID, status string, notes *string) error
}
