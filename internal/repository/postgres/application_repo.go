package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, user_id, status, cover_letter, resume_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.JobID, app.UserID, app.Status, app.CoverLetter, app.ResumeURL,
		app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already applied to this job")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.status, a.cover_letter, a.resume_url,
	                 a.created_at, a.updated_at, j.title, j.company
              FROM applications a
              JOIN jobs j ON j.id = a.job_id
              WHERE a.id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.UserID, &app.Status, &app.CoverLetter, &app.ResumeURL,
		&app.CreatedAt, &app.UpdatedAt, &app.JobTitle, &app.CompanyName,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.status, a.cover_letter, a.resume_url,
	                 a.created_at, a.updated_at, j.title, j.company
              FROM applications a
              JOIN jobs j ON j.id = a.job_id
              WHERE a.user_id = $1
              ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.UserID, &app.Status, &app.CoverLetter, &app.ResumeURL,
			&app.CreatedAt, &app.UpdatedAt, &app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID string) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.status, a.cover_letter, a.resume_url,
	                 a.created_at, a.updated_at, u.full_name
              FROM applications a
              JOIN users u ON u.id = a.user_id
              WHERE a.job_id = $1
              ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.UserID, &app.Status, &app.CoverLetter, &app.ResumeURL,
			&app.CreatedAt, &app.UpdatedAt, &app.ApplicantName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
