package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobAlertRepo struct {
	db *pgxpool.Pool
}

func NewJobAlertRepository(db *pgxpool.Pool) domain.JobAlertRepository {
	return &jobAlertRepo{db: db}
}

func scanJobAlert(row interface{ Scan(dest ...any) error }, alert *domain.JobAlert) error {
	var params []byte
	if err := row.Scan(
		&alert.ID, &alert.UserID, &alert.Title, &params, &alert.Frequency,
		&alert.IsActive, &alert.EmailEnabled, &alert.LastTriggered,
		&alert.MatchedJobsCount, &alert.CreatedAt, &alert.UpdatedAt,
	); err != nil {
		return err
	}
	return json.Unmarshal(params, &alert.SearchParams)
}

func (r *jobAlertRepo) Create(ctx context.Context, alert *domain.JobAlert) error {
	params, err := json.Marshal(alert.SearchParams)
	if err != nil {
		return err
	}
	query := `INSERT INTO job_alerts (user_id, title, search_params, frequency, is_active,
	              email_notifications, matched_jobs_count, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		alert.UserID, alert.Title, params, alert.Frequency, alert.IsActive,
		alert.EmailEnabled, alert.MatchedJobsCount, alert.CreatedAt, alert.UpdatedAt,
	).Scan(&alert.ID)
}

func (r *jobAlertRepo) GetByID(ctx context.Context, id string) (*domain.JobAlert, error) {
	query := `SELECT id, user_id, title, search_params, frequency, is_active, email_notifications,
	                 last_triggered, matched_jobs_count, created_at, updated_at
              FROM job_alerts WHERE id = $1`
	var alert domain.JobAlert
	if err := scanJobAlert(r.db.QueryRow(ctx, query, id), &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *jobAlertRepo) GetByUserID(ctx context.Context, userID string, activeOnly bool) ([]domain.JobAlert, error) {
	query := `SELECT id, user_id, title, search_params, frequency, is_active, email_notifications,
	                 last_triggered, matched_jobs_count, created_at, updated_at
              FROM job_alerts WHERE user_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.JobAlert
	for rows.Next() {
		var alert domain.JobAlert
		if err := scanJobAlert(rows, &alert); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}

func (r *jobAlertRepo) Update(ctx context.Context, alert *domain.JobAlert) error {
	params, err := json.Marshal(alert.SearchParams)
	if err != nil {
		return err
	}
	query := `UPDATE job_alerts SET
		title = $2,
		search_params = $3,
		frequency = $4,
		is_active = $5,
		email_notifications = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		alert.ID, alert.Title, params, alert.Frequency, alert.IsActive,
		alert.EmailEnabled, alert.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobAlertRepo) MarkTriggered(ctx context.Context, id string, at time.Time, matched int) error {
	query := `UPDATE job_alerts SET last_triggered = $2, matched_jobs_count = $3, updated_at = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, at, matched)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobAlertRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_alerts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
