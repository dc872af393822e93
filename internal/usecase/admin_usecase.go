package usecase

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

type adminUsecase struct {
	userRepo    domain.UserRepository
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewAdminUsecase(userRepo domain.UserRepository, jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:    userRepo,
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}

func (u *adminUsecase) ListUsers(ctx context.Context, actor domain.Identity, page, pageSize int) ([]domain.User, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, apperror.Forbidden("Admin access required")
	}
	limit, offset := normalizePage(page, pageSize)
	return u.userRepo.List(ctx, limit, offset)
}

func (u *adminUsecase) GetUser(ctx context.Context, actor domain.Identity, userID string) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, apperror.Forbidden("Admin access required")
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *adminUsecase) SetUserActive(ctx context.Context, actor domain.Identity, userID string, active bool) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("Admin access required")
	}
	if err := u.userRepo.SetActive(ctx, userID, active); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	logger.Log.Info("user active flag changed", "user_id", userID, "active", active, "by", actor.UserID)
	return nil
}

func (u *adminUsecase) DeleteUser(ctx context.Context, actor domain.Identity, userID string) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("Admin access required")
	}
	if actor.UserID == userID {
		return apperror.BadRequest("You cannot delete your own account")
	}
	if err := u.userRepo.Delete(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	logger.Log.Info("user deleted", "user_id", userID, "by", actor.UserID)
	return nil
}

func (u *adminUsecase) ListAllJobs(ctx context.Context, actor domain.Identity, page, pageSize int) ([]domain.Job, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, apperror.Forbidden("Admin access required")
	}
	limit, offset := normalizePage(page, pageSize)
	return u.jobRepo.Search(ctx, domain.JobFilter{}, limit, offset)
}

func (u *adminUsecase) SetJobActive(ctx context.Context, actor domain.Identity, jobID string, active bool) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("Admin access required")
	}
	if err := u.jobRepo.SetActive(ctx, jobID, active); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *adminUsecase) ListAllCompanies(ctx context.Context, actor domain.Identity, page, pageSize int) ([]domain.Company, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, apperror.Forbidden("Admin access required")
	}
	limit, offset := normalizePage(page, pageSize)
	return u.companyRepo.List(ctx, limit, offset)
}
