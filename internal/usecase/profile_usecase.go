package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) CreateProfile(ctx context.Context, actor domain.Identity, profile *domain.Profile) error {
	if profile.FullName == "" {
		return apperror.BadRequest("Full name is required")
	}
	if profile.Email == "" {
		return apperror.BadRequest("Email is required")
	}

	now := time.Now()
	profile.UserID = actor.UserID
	profile.Completion = ScoreProfile(profile)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	return u.profileRepo.Create(ctx, profile)
}

func (u *profileUsecase) GetMyProfile(ctx context.Context, actor domain.Identity) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, actor domain.Identity, profile *domain.Profile) (*domain.Profile, error) {
	existing, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, apperror.NotFound("Profile not found")
	}
	if profile.FullName == "" {
		return nil, apperror.BadRequest("Full name is required")
	}
	if profile.Email == "" {
		return nil, apperror.BadRequest("Email is required")
	}

	profile.ID = existing.ID
	profile.UserID = existing.UserID
	profile.CreatedAt = existing.CreatedAt
	profile.Completion = ScoreProfile(profile)
	profile.UpdatedAt = time.Now()

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) DeleteProfile(ctx context.Context, actor domain.Identity) error {
	existing, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return apperror.NotFound("Profile not found")
	}
	return u.profileRepo.Delete(ctx, existing.ID)
}
