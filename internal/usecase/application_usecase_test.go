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

// notifications returns a real notification usecase backed by the given repo
// mock and no email transport.
func notifications(repo *MockNotificationRepo) domain.NotificationUsecase {
	return usecase.NewNotificationUsecase(repo, new(MockUserRepo), nil)
}

func TestApply(t *testing.T) {
	seeker := domain.Identity{UserID: "seeker-1", Role: domain.RoleJobSeeker}

	activeJob := func() *domain.Job {
		return &domain.Job{ID: "job-1", Title: "Go Developer", Company: "Acme", CreatedBy: "emp-1", IsActive: true}
	}

	t.Run("applies to an active job and alerts the employer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		notifRepo := new(MockNotificationRepo)

		jobRepo.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		jobRepo.On("IncrementApplicationCount", mock.Anything, "job-1").Return(nil)
		notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "emp-1" && n.Type == domain.NotificationTypeMessage
		})).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(notifRepo))
		app, err := uc.Apply(context.Background(), seeker, "job-1", "I am keen.", "https://cdn.example/cv.pdf")

		require.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, "seeker-1", app.UserID)
		require.NotNil(t, app.JobTitle)
		assert.Equal(t, "Go Developer", *app.JobTitle)
		notifRepo.AssertExpectations(t)
	})

	t.Run("rejects a closed job", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", IsActive: false}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(new(MockNotificationRepo)))
		_, err := uc.Apply(context.Background(), seeker, "job-1", "", "")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		appRepo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate application surfaces as conflict", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("You have already applied to this job"))

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(new(MockNotificationRepo)))
		_, err := uc.Apply(context.Background(), seeker, "job-1", "", "")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("counter failure does not fail the application", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		notifRepo := new(MockNotificationRepo)

		jobRepo.On("GetByID", mock.Anything, "job-1").Return(activeJob(), nil)
		appRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		jobRepo.On("IncrementApplicationCount", mock.Anything, "job-1").Return(assert.AnError)
		notifRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(notifRepo))
		_, err := uc.Apply(context.Background(), seeker, "job-1", "", "")

		require.NoError(t, err)
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("stranger sees not found, not forbidden", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", UserID: "owner"}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), notifications(new(MockNotificationRepo)))
		err := uc.Withdraw(context.Background(), domain.Identity{UserID: "stranger"}, "app-1")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
		appRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("owner withdraws", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		appRepo.On("GetByID", mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", UserID: "seeker-1"}, nil)
		appRepo.On("Delete", mock.Anything, "app-1").Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, new(MockJobRepo), notifications(new(MockNotificationRepo)))
		err := uc.Withdraw(context.Background(), domain.Identity{UserID: "seeker-1"}, "app-1")

		require.NoError(t, err)
		appRepo.AssertExpectations(t)
	})
}

func TestListByJob(t *testing.T) {
	t.Run("only the posting employer may list applicants", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", CreatedBy: "emp-1"}, nil)

		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), jobRepo, notifications(new(MockNotificationRepo)))
		_, err := uc.ListByJob(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "job-1")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("owner lists applicants", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", CreatedBy: "emp-1"}, nil)
		appRepo.On("GetByJobID", mock.Anything, "job-1").Return([]domain.Application{{ID: "app-1"}}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(new(MockNotificationRepo)))
		apps, err := uc.ListByJob(context.Background(), domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}, "job-1")

		require.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	employer := domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), notifications(new(MockNotificationRepo)))
		err := uc.UpdateStatus(context.Background(), employer, "app-1", "promoted")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		appRepo.On("GetByID", mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", JobID: "job-1", UserID: "seeker-1"}, nil)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", CreatedBy: "emp-1"}, nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(new(MockNotificationRepo)))
		err := uc.UpdateStatus(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "app-1", domain.ApplicationStatusInterview)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("status change notifies the applicant", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		notifRepo := new(MockNotificationRepo)

		appRepo.On("GetByID", mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", JobID: "job-1", UserID: "seeker-1"}, nil)
		jobRepo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", Title: "Go Developer", CreatedBy: "emp-1"}, nil)
		appRepo.On("UpdateStatus", mock.Anything, "app-1", domain.ApplicationStatusInterview).Return(nil)
		notifRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == "seeker-1" && n.Type == domain.NotificationTypeApplicationStatus
		})).Return(nil)

		uc := usecase.NewApplicationUsecase(appRepo, jobRepo, notifications(notifRepo))
		err := uc.UpdateStatus(context.Background(), employer, "app-1", domain.ApplicationStatusInterview)

		require.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})
}
