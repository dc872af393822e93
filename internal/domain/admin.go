package domain

import "context"

// AdminUsecase is the admin-only management surface. Every method enforces
// the admin role gate itself so handlers stay thin.
type AdminUsecase interface {
	ListUsers(ctx context.Context, actor Identity, page, pageSize int) ([]User, int64, error)
	GetUser(ctx context.Context, actor Identity, userID string) (*User, error)
	SetUserActive(ctx context.Context, actor Identity, userID string, active bool) error
	DeleteUser(ctx context.Context, actor Identity, userID string) error
	ListAllJobs(ctx context.Context, actor Identity, page, pageSize int) ([]Job, int64, error)
	SetJobActive(ctx context.Context, actor Identity, jobID string, active bool) error
	ListAllCompanies(ctx context.Context, actor Identity, page, pageSize int) ([]Company, int64, error)
}
