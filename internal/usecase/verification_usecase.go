package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

type verificationUsecase struct {
	verificationRepo domain.VerificationRepository
	companyRepo      domain.CompanyRepository
}

func NewVerificationUsecase(verificationRepo domain.VerificationRepository, companyRepo domain.CompanyRepository) domain.VerificationUsecase {
	return &verificationUsecase{
		verificationRepo: verificationRepo,
		companyRepo:      companyRepo,
	}
}

func (u *verificationUsecase) SubmitRequest(ctx context.Context, actor domain.Identity, companyID string, documents map[string]string) (*domain.CompanyVerification, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	if company.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, apperror.Forbidden("You do not own this company")
	}
	if len(documents) == 0 {
		return nil, apperror.BadRequest("At least one document is required")
	}

	now := time.Now()
	v := &domain.CompanyVerification{
		CompanyID: companyID,
		OwnerID:   actor.UserID,
		Documents: documents,
		Status:    domain.VerificationStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.verificationRepo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (u *verificationUsecase) GetRequest(ctx context.Context, actor domain.Identity, companyID string) (*domain.CompanyVerification, error) {
	v, err := u.verificationRepo.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, apperror.NotFound("Verification request not found")
	}
	if v.OwnerID != actor.UserID && !actor.IsAdmin() {
		return nil, apperror.NotFound("Verification request not found")
	}
	return v, nil
}

func (u *verificationUsecase) ListPending(ctx context.Context, actor domain.Identity, page, pageSize int) ([]domain.CompanyVerification, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, apperror.Forbidden("Admin access required")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.verificationRepo.ListByStatus(ctx, domain.VerificationStatusPending, pageSize, offset)
}

func (u *verificationUsecase) Decide(ctx context.Context, actor domain.Identity, requestID, status string, notes *string) error {
	if !actor.IsAdmin() {
		return apperror.Forbidden("Admin access required")
	}
	if status != domain.VerificationStatusApproved && status != domain.VerificationStatusRejected {
		return apperror.BadRequest("Status must be approved or rejected")
	}

	v, err := u.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return apperror.NotFound("Verification request not found")
	}

	if err := u.verificationRepo.UpdateStatus(ctx, requestID, status, notes, actor.UserID); err != nil {
		return err
	}
	if err := u.companyRepo.SetVerification(ctx, v.CompanyID, status, status == domain.VerificationStatusApproved); err != nil {
		return err
	}

	logger.Log.Info("verification decided", "request_id", requestID, "company_id", v.CompanyID, "status", status)
	return nil
}
