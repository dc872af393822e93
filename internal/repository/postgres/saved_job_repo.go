package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

func (r *savedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (user_id, job_id, created_at)
              VALUES ($1, $2, $3)
              RETURNING id`
	err := r.db.QueryRow(ctx, query, saved.UserID, saved.JobID, saved.CreatedAt).Scan(&saved.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Job already saved")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *savedJobRepo) GetByUserID(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	query := `SELECT s.id, s.user_id, s.job_id, s.created_at, j.title, j.company
              FROM saved_jobs s
              JOIN jobs j ON j.id = s.job_id
              WHERE s.user_id = $1
              ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []domain.SavedJob
	for rows.Next() {
		var s domain.SavedJob
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobID, &s.CreatedAt, &s.JobTitle, &s.CompanyName); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func (r *savedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
