package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, actor domain.Identity, company *domain.Company) error {
	if actor.Role != domain.RoleEmployer && !actor.IsAdmin() {
		return apperror.Forbidden("Only employers can create companies")
	}
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}

	now := time.Now()
	company.OwnerID = actor.UserID
	company.VerificationStatus = domain.VerificationStatusPending
	company.IsVerified = false
	company.CreatedAt = now
	company.UpdatedAt = now

	return u.companyRepo.Create(ctx, company)
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, pageSize int) ([]domain.Company, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.companyRepo.List(ctx, pageSize, offset)
}

func (u *companyUsecase) UpdateCompany(ctx context.Context, actor domain.Identity, company *domain.Company) error {
	existing, err := u.companyRepo.GetByID(ctx, company.ID)
	if err != nil {
		return apperror.NotFound("Company not found")
	}
	if existing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this company")
	}
	if company.Name == "" {
		return apperror.BadRequest("Company name is required")
	}

	company.OwnerID = existing.OwnerID
	company.UpdatedAt = time.Now()
	return u.companyRepo.Update(ctx, company)
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, actor domain.Identity, id string) error {
	existing, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Company not found")
	}
	if existing.OwnerID != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this company")
	}
	return u.companyRepo.Delete(ctx, id)
}
