package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (user_id, filename, content_type, text_content, uploaded_at)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		resume.UserID, resume.Filename, resume.ContentType, resume.Text, resume.UploadedAt,
	).Scan(&resume.ID)
}

func (r *resumeRepo) GetByID(ctx context.Context, id string) (*domain.Resume, error) {
	query := `SELECT id, user_id, filename, content_type, text_content, uploaded_at
              FROM resumes WHERE id = $1`
	var resume domain.Resume
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resume.ID, &resume.UserID, &resume.Filename, &resume.ContentType,
		&resume.Text, &resume.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Resume, error) {
	query := `SELECT id, user_id, filename, content_type, text_content, uploaded_at
              FROM resumes WHERE user_id = $1 ORDER BY uploaded_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []domain.Resume
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.UserID, &resume.Filename, &resume.ContentType,
			&resume.Text, &resume.UploadedAt,
		); err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}

func (r *resumeRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
