package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, actor domain.Identity, job *domain.Job) error {
	if actor.Role != domain.RoleEmployer && !actor.IsAdmin() {
		return apperror.Forbidden("Only employers can post jobs")
	}
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("salary_min cannot be greater than salary_max")
	}

	now := time.Now()
	job.CreatedBy = actor.UserID
	job.IsActive = true
	job.PostedAt = now
	job.UpdatedAt = now
	job.ApplicationCount = 0
	job.ViewCount = 0

	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if err := u.jobRepo.IncrementViewCount(ctx, id); err != nil {
		logger.Log.Warn("view counter bump failed", "job_id", id, "error", err)
	}
	return job, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	filter.ActiveOnly = true
	return u.jobRepo.Search(ctx, filter, pageSize, offset)
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, actor domain.Identity, page, pageSize int) ([]domain.Job, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.jobRepo.FetchByOwner(ctx, actor.UserID, pageSize, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, actor domain.Identity, id string, upd domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return nil, apperror.Forbidden("You do not own this job")
	}

	applyJobUpdate(job, upd)

	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return nil, apperror.BadRequest("salary_min cannot be greater than salary_max")
	}
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// applyJobUpdate overlays the non-nil fields of upd onto job.
func applyJobUpdate(job *domain.Job, upd domain.JobUpdate) {
	if upd.Title != nil {
		job.Title = *upd.Title
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Company != nil {
		job.Company = *upd.Company
	}
	if upd.SalaryMin != nil {
		job.SalaryMin = upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		job.SalaryMax = upd.SalaryMax
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.Skills != nil {
		job.Skills = *upd.Skills
	}
	if upd.ExperienceRequired != nil {
		job.ExperienceRequired = upd.ExperienceRequired
	}
	if upd.ExperienceMinYears != nil {
		job.ExperienceMinYears = *upd.ExperienceMinYears
	}
	if upd.WorkMode != nil {
		job.WorkMode = upd.WorkMode
	}
	if upd.IsActive != nil {
		job.IsActive = *upd.IsActive
	}
}

func (u *jobUsecase) DeleteJob(ctx context.Context, actor domain.Identity, id string) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this job")
	}
	return u.jobRepo.Delete(ctx, id)
}
