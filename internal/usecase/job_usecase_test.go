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

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestCreateJob(t *testing.T) {
	employer := domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}

	t.Run("job seeker cannot post", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		err := uc.CreateJob(context.Background(), domain.Identity{UserID: "u1", Role: domain.RoleJobSeeker}, &domain.Job{Title: "x", Description: "y"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects inverted salary range", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		job := &domain.Job{Title: "Engineer", Description: "desc", SalaryMin: intPtr(200000), SalaryMax: intPtr(100000)}
		err := uc.CreateJob(context.Background(), employer, job)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("stamps ownership and activates the posting", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo)

		job := &domain.Job{Title: "Engineer", Description: "desc", ViewCount: 99, ApplicationCount: 42}
		err := uc.CreateJob(context.Background(), employer, job)

		require.NoError(t, err)
		assert.Equal(t, "emp-1", job.CreatedBy)
		assert.True(t, job.IsActive)
		assert.Zero(t, job.ViewCount)
		assert.Zero(t, job.ApplicationCount)
		assert.False(t, job.PostedAt.IsZero())
	})
}

func TestSearchJobs(t *testing.T) {
	t.Run("public search only sees active jobs", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Search", mock.Anything, mock.MatchedBy(func(f domain.JobFilter) bool {
			return f.ActiveOnly
		}), 10, 0).Return([]domain.Job{}, int64(0), nil)
		uc := usecase.NewJobUsecase(repo)

		_, _, err := uc.SearchJobs(context.Background(), domain.JobFilter{ActiveOnly: false}, 1, 10)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("normalizes page and size", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Search", mock.Anything, mock.Anything, 10, 0).Return([]domain.Job{}, int64(0), nil)
		uc := usecase.NewJobUsecase(repo)

		_, _, err := uc.SearchJobs(context.Background(), domain.JobFilter{}, -3, 0)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetJob(t *testing.T) {
	t.Run("bumps the view counter", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1"}, nil)
		repo.On("IncrementViewCount", mock.Anything, "job-1").Return(nil)
		uc := usecase.NewJobUsecase(repo)

		job, err := uc.GetJob(context.Background(), "job-1")

		require.NoError(t, err)
		assert.Equal(t, "job-1", job.ID)
		repo.AssertExpectations(t)
	})

	t.Run("counter failure does not hide the job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1"}, nil)
		repo.On("IncrementViewCount", mock.Anything, "job-1").Return(assert.AnError)
		uc := usecase.NewJobUsecase(repo)

		job, err := uc.GetJob(context.Background(), "job-1")

		require.NoError(t, err)
		assert.NotNil(t, job)
	})
}

func TestUpdateJob(t *testing.T) {
	owner := domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}
	existing := func() *domain.Job {
		return &domain.Job{
			ID:          "job-1",
			Title:       "Backend Engineer",
			Description: "original",
			Location:    "Pune",
			CreatedBy:   "emp-1",
			IsActive:    true,
		}
	}

	t.Run("non-owner gets forbidden", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(existing(), nil)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.UpdateJob(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "job-1", domain.JobUpdate{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("admin may edit any job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.UpdateJob(context.Background(), domain.Identity{UserID: "root", Role: domain.RoleAdmin}, "job-1", domain.JobUpdate{})

		require.NoError(t, err)
	})

	t.Run("only provided fields change", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(existing(), nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		uc := usecase.NewJobUsecase(repo)

		job, err := uc.UpdateJob(context.Background(), owner, "job-1", domain.JobUpdate{Title: strPtr("Senior Backend Engineer")})

		require.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", job.Title)
		assert.Equal(t, "original", job.Description)
		assert.Equal(t, "Pune", job.Location)
	})

	t.Run("rejects update that inverts the salary range", func(t *testing.T) {
		repo := new(MockJobRepo)
		base := existing()
		base.SalaryMax = intPtr(100000)
		repo.On("GetByID", mock.Anything, "job-1").Return(base, nil)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.UpdateJob(context.Background(), owner, "job-1", domain.JobUpdate{SalaryMin: intPtr(150000)})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("non-owner gets forbidden", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", CreatedBy: "emp-1"}, nil)
		uc := usecase.NewJobUsecase(repo)

		err := uc.DeleteJob(context.Background(), domain.Identity{UserID: "emp-2", Role: domain.RoleEmployer}, "job-1")

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("owner deletes", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", mock.Anything, "job-1").Return(&domain.Job{ID: "job-1", CreatedBy: "emp-1"}, nil)
		repo.On("Delete", mock.Anything, "job-1").Return(nil)
		uc := usecase.NewJobUsecase(repo)

		err := uc.DeleteJob(context.Background(), domain.Identity{UserID: "emp-1", Role: domain.RoleEmployer}, "job-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
