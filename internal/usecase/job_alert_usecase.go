package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

// Jobs fetched per alert when running the matcher.
const alertMatchLimit = 50

// Fallback window for alerts that have never fired.
const alertDefaultWindow = 7 * 24 * time.Hour

type jobAlertUsecase struct {
	alertRepo domain.JobAlertRepository
	jobRepo   domain.JobRepository
}

func NewJobAlertUsecase(alertRepo domain.JobAlertRepository, jobRepo domain.JobRepository) domain.JobAlertUsecase {
	return &jobAlertUsecase{
		alertRepo: alertRepo,
		jobRepo:   jobRepo,
	}
}

func (u *jobAlertUsecase) CreateAlert(ctx context.Context, actor domain.Identity, alert *domain.JobAlert) error {
	if alert.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if alert.Frequency == "" {
		alert.Frequency = "daily"
	}

	now := time.Now()
	alert.UserID = actor.UserID
	alert.IsActive = true
	alert.MatchedJobsCount = 0
	alert.LastTriggered = nil
	alert.CreatedAt = now
	alert.UpdatedAt = now

	return u.alertRepo.Create(ctx, alert)
}

func (u *jobAlertUsecase) GetAlert(ctx context.Context, actor domain.Identity, id string) (*domain.JobAlert, error) {
	alert, err := u.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job alert not found")
	}
	if alert.UserID != actor.UserID && !actor.IsAdmin() {
		return nil, apperror.NotFound("Job alert not found")
	}
	return alert, nil
}

func (u *jobAlertUsecase) ListMine(ctx context.Context, actor domain.Identity) ([]domain.JobAlert, error) {
	return u.alertRepo.GetByUserID(ctx, actor.UserID, false)
}

func (u *jobAlertUsecase) UpdateAlert(ctx context.Context, actor domain.Identity, alert *domain.JobAlert) error {
	existing, err := u.alertRepo.GetByID(ctx, alert.ID)
	if err != nil {
		return apperror.NotFound("Job alert not found")
	}
	if existing.UserID != actor.UserID && !actor.IsAdmin() {
		return apperror.NotFound("Job alert not found")
	}
	if alert.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	alert.UserID = existing.UserID
	alert.UpdatedAt = time.Now()
	return u.alertRepo.Update(ctx, alert)
}

func (u *jobAlertUsecase) DeleteAlert(ctx context.Context, actor domain.Identity, id string) error {
	existing, err := u.alertRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Job alert not found")
	}
	if existing.UserID != actor.UserID && !actor.IsAdmin() {
		return apperror.NotFound("Job alert not found")
	}
	return u.alertRepo.Delete(ctx, id)
}

// BuildAlertFilter converts stored alert criteria into a job query. Alert
// skills require every listed skill to be present, and only jobs posted
// since the alert last fired are considered. An alert that never fired
// looks back a fixed seven days.
func BuildAlertFilter(params domain.AlertSearchParams, lastTriggered *time.Time, now time.Time) domain.JobFilter {
	since := now.Add(-alertDefaultWindow)
	if lastTriggered != nil {
		since = *lastTriggered
	}
	return domain.JobFilter{
		Search:             params.Search,
		Location:           params.Location,
		WorkMode:           params.WorkMode,
		SkillsAll:          params.Skills,
		SalaryMin:          params.SalaryMin,
		ExperienceMinYears: params.ExperienceMin,
		PostedAfter:        &since,
		ActiveOnly:         true,
	}
}

func (u *jobAlertUsecase) RecentMatches(ctx context.Context, actor domain.Identity) ([]domain.Job, error) {
	alerts, err := u.alertRepo.GetByUserID(ctx, actor.UserID, true)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	seen := make(map[string]struct{})
	var matches []domain.Job

	for _, alert := range alerts {
		filter := BuildAlertFilter(alert.SearchParams, alert.LastTriggered, now)
		jobs, _, err := u.jobRepo.Search(ctx, filter, alertMatchLimit, 0)
		if err != nil {
			return nil, err
		}
		for _, job := range jobs {
			if _, dup := seen[job.ID]; dup {
				continue
			}
			seen[job.ID] = struct{}{}
			matches = append(matches, job)
		}
		if err := u.alertRepo.MarkTriggered(ctx, alert.ID, now, len(jobs)); err != nil {
			logger.Log.Warn("alert trigger update failed", "alert_id", alert.ID, "error", err)
		}
	}
	return matches, nil
}
