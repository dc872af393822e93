package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

type applicationUsecase struct {
	appRepo        domain.ApplicationRepository
	jobRepo        domain.JobRepository
	notificationUC domain.NotificationUsecase
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, notificationUC domain.NotificationUsecase) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:        appRepo,
		jobRepo:        jobRepo,
		notificationUC: notificationUC,
	}
}

func (u *applicationUsecase) Apply(ctx context.Context, actor domain.Identity, jobID, coverLetter, resumeURL string) (*domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	now := time.Now()
	app := &domain.Application{
		JobID:     jobID,
		UserID:    actor.UserID,
		Status:    domain.ApplicationStatusApplied,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if coverLetter != "" {
		app.CoverLetter = &coverLetter
	}
	if resumeURL != "" {
		app.ResumeURL = &resumeURL
	}

	if err := u.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	if err := u.jobRepo.IncrementApplicationCount(ctx, jobID); err != nil {
		logger.Log.Warn("application counter bump failed", "job_id", jobID, "error", err)
	}

	u.notificationUC.Notify(ctx, job.CreatedBy,
		"New application received",
		fmt.Sprintf("A candidate applied to %q.", job.Title),
		domain.NotificationTypeMessage, &app.ID)

	app.JobTitle = &job.Title
	app.CompanyName = &job.Company
	return app, nil
}

func (u *applicationUsecase) MyApplications(ctx context.Context, actor domain.Identity) ([]domain.Application, error) {
	return u.appRepo.GetByUserID(ctx, actor.UserID)
}

func (u *applicationUsecase) Withdraw(ctx context.Context, actor domain.Identity, applicationID string) error {
	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	if app.UserID != actor.UserID && !actor.IsAdmin() {
		// Masked so outsiders cannot confirm the application exists.
		return apperror.NotFound("Application not found")
	}
	return u.appRepo.Delete(ctx, applicationID)
}

func (u *applicationUsecase) ListByJob(ctx context.Context, actor domain.Identity, jobID string) ([]domain.Application, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return nil, apperror.NotFound("Job not found")
	}
	return u.appRepo.GetByJobID(ctx, jobID)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, actor domain.Identity, applicationID, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Invalid application status")
	}

	app, err := u.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return apperror.NotFound("Application not found")
	}
	job, err := u.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return apperror.NotFound("Job not found")
	}
	if job.CreatedBy != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this job")
	}

	if err := u.appRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}

	u.notificationUC.Notify(ctx, app.UserID,
		"Application status updated",
		fmt.Sprintf("Your application for %q is now %s.", job.Title, status),
		domain.NotificationTypeApplicationStatus, &app.ID)

	return nil
}
