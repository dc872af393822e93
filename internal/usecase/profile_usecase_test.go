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

func TestCreateProfile(t *testing.T) {
	seeker := domain.Identity{UserID: "seeker-1", Role: domain.RoleJobSeeker}

	t.Run("requires name and email", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo))

		err := uc.CreateProfile(context.Background(), seeker, &domain.Profile{Email: "a@b.co"})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)

		err = uc.CreateProfile(context.Background(), seeker, &domain.Profile{FullName: "Jane"})
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("caller-supplied completion is overwritten", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)
		uc := usecase.NewProfileUsecase(repo)

		p := &domain.Profile{FullName: "Jane Doe", Email: "jane@example.com", Completion: 100}
		require.NoError(t, uc.CreateProfile(context.Background(), seeker, p))

		assert.Equal(t, usecase.ScoreProfile(p), p.Completion)
		assert.NotEqual(t, 100, p.Completion)
		assert.Equal(t, "seeker-1", p.UserID)
	})
}

func TestUpdateProfile(t *testing.T) {
	seeker := domain.Identity{UserID: "seeker-1", Role: domain.RoleJobSeeker}

	t.Run("preserves identity fields and rescores", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", mock.Anything, "seeker-1").Return(&domain.Profile{ID: "prof-1", UserID: "seeker-1"}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)
		uc := usecase.NewProfileUsecase(repo)

		p := &domain.Profile{ID: "spoofed", UserID: "someone-else", FullName: "Jane Doe", Email: "jane@example.com", Completion: 100}
		updated, err := uc.UpdateProfile(context.Background(), seeker, p)

		require.NoError(t, err)
		assert.Equal(t, "prof-1", updated.ID)
		assert.Equal(t, "seeker-1", updated.UserID)
		assert.Equal(t, usecase.ScoreProfile(updated), updated.Completion)
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("GetByUserID", mock.Anything, "seeker-1").Return(nil, domain.ErrNotFound)
		uc := usecase.NewProfileUsecase(repo)

		_, err := uc.UpdateProfile(context.Background(), seeker, &domain.Profile{FullName: "Jane", Email: "jane@example.com"})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
