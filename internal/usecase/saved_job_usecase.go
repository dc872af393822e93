package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedRepo domain.SavedJobRepository
	jobRepo   domain.JobRepository
}

func NewSavedJobUsecase(savedRepo domain.SavedJobRepository, jobRepo domain.JobRepository) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedRepo: savedRepo,
		jobRepo:   jobRepo,
	}
}

func (u *savedJobUsecase) SaveJob(ctx context.Context, actor domain.Identity, jobID string) (*domain.SavedJob, error) {
	if actor.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can save jobs")
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}

	saved := &domain.SavedJob{
		UserID:    actor.UserID,
		JobID:     jobID,
		CreatedAt: time.Now(),
	}
	if err := u.savedRepo.Create(ctx, saved); err != nil {
		return nil, err
	}

	saved.JobTitle = &job.Title
	saved.CompanyName = &job.Company
	return saved, nil
}

func (u *savedJobUsecase) ListSavedJobs(ctx context.Context, actor domain.Identity) ([]domain.SavedJob, error) {
	if actor.Role != domain.RoleJobSeeker {
		return nil, apperror.Forbidden("Only job seekers can save jobs")
	}
	return u.savedRepo.GetByUserID(ctx, actor.UserID)
}

func (u *savedJobUsecase) UnsaveJob(ctx context.Context, actor domain.Identity, jobID string) error {
	if actor.Role != domain.RoleJobSeeker {
		return apperror.Forbidden("Only job seekers can save jobs")
	}
	if err := u.savedRepo.Delete(ctx, actor.UserID, jobID); err != nil {
		return apperror.NotFound("Saved job not found")
	}
	return nil
}
