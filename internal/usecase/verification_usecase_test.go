package usecase_test

import (
	"context"
	"testing"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/usecase"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitVerificationRequest(t *testing.T) {
	owner := domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}
	docs := map[string]string{"registration": "https://cdn.example/reg.pdf"}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, "co-1").Return(&domain.Company{ID: "co-1", OwnerID: "emp-1"}, nil)
		uc := usecase.NewVerificationUsecase(new(MockVerificationRepo), companyRepo)

		_, err := uc.SubmitRequest(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "co-1", docs)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("requires at least one document", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		companyRepo.On("GetByID", mock.Anything, "co-1").Return(&domain.Company{ID: "co-1", OwnerID: "emp-1"}, nil)
		uc := usecase.NewVerificationUsecase(new(MockVerificationRepo), companyRepo)

		_, err := uc.SubmitRequest(context.Background(), owner, "co-1", map[string]string{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("owner submits a pending request", func(t *testing.T) {
		companyRepo := new(MockCompanyRepo)
		verificationRepo := new(MockVerificationRepo)
		companyRepo.On("GetByID", mock.Anything, "co-1").Return(&domain.Company{ID: "co-1", OwnerID: "emp-1"}, nil)
		verificationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CompanyVerification")).Return(nil)
		uc := usecase.NewVerificationUsecase(verificationRepo, companyRepo)

		v, err := uc.SubmitRequest(context.Background(), owner, "co-1", docs)

		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusPending, v.Status)
		assert.Equal(t, "emp-1", v.OwnerID)
	})
}

func TestDecideVerification(t *testing.T) {
	admin := domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

	t.Run("only admins decide", func(t *testing.T) {
		uc := usecase.NewVerificationUsecase(new(MockVerificationRepo), new(MockCompanyRepo))
		err := uc.Decide(context.Background(), domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}, "req-1", domain.VerificationStatusApproved, nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("rejects a status outside approved or rejected", func(t *testing.T) {
		uc := usecase.NewVerificationUsecase(new(MockVerificationRepo), new(MockCompanyRepo))
		err := uc.Decide(context.Background(), admin, "req-1", "pending", nil)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("approval flips the company verified flag", func(t *testing.T) {
		verificationRepo := new(MockVerificationRepo)
		companyRepo := new(MockCompanyRepo)
		verificationRepo.On("GetByID", mock.Anything, "req-1").Return(&domain.CompanyVerification{ID: "req-1", CompanyID: "co-1"}, nil)
		verificationRepo.On("UpdateStatus", mock.Anything, "req-1", domain.VerificationStatusApproved, (*string)(nil), "admin-1").Return(nil)
		companyRepo.On("SetVerification", mock.Anything, "co-1", domain.VerificationStatusApproved, true).Return(nil)
		uc := usecase.NewVerificationUsecase(verificationRepo, companyRepo)

		require.NoError(t, uc.Decide(context.Background(), admin, "req-1", domain.VerificationStatusApproved, nil))
		companyRepo.AssertExpectations(t)
	})

	t.Run("rejection leaves the company unverified", func(t *testing.T) {
		verificationRepo := new(MockVerificationRepo)
		companyRepo := new(MockCompanyRepo)
		verificationRepo.On("GetByID", mock.Anything, "req-1").Return(&domain.CompanyVerification{ID: "req-1", CompanyID: "co-1"}, nil)
		verificationRepo.On("UpdateStatus", mock.Anything, "req-1", domain.VerificationStatusRejected, (*string)(nil), "admin-1").Return(nil)
		companyRepo.On("SetVerification", mock.Anything, "co-1", domain.VerificationStatusRejected, false).Return(nil)
		uc := usecase.NewVerificationUsecase(verificationRepo, companyRepo)

		require.NoError(t, uc.Decide(context.Background(), admin, "req-1", domain.VerificationStatusRejected, nil))
		companyRepo.AssertExpectations(t)
	})
}

func TestGetVerificationRequest(t *testing.T) {
	t.Run("foreign request reads as not found", func(t *testing.T) {
		verificationRepo := new(MockVerificationRepo)
		verificationRepo.On("GetByCompanyID", mock.Anything, "co-1").Return(&domain.CompanyVerification{ID: "req-1", CompanyID: "co-1", OwnerID: "emp-1"}, nil)
		uc := usecase.NewVerificationUsecase(verificationRepo, new(MockCompanyRepo))

		_, err := uc.GetRequest(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "co-1")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
