package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

const verificationColumns = `id, company_id, owner_id, documents, status, notes, verified_by, created_at, updated_at`

type verificationRepo struct {
	db *pgxpool.Pool
}

func NewVerificationRepository(db *pgxpool.Pool) domain.VerificationRepository {
	return &verificationRepo{db: db}
}

func scanVerification(row interface{ Scan(dest ...any) error }, v *domain.CompanyVerification) error {
	return row.Scan(
		&v.ID, &v.CompanyID, &v.OwnerID, &v.Documents, &v.Status,
		&v.Notes, &v.VerifiedBy, &v.CreatedAt, &v.UpdatedAt,
	)
}

func (r *verificationRepo) Create(ctx context.Context, v *domain.CompanyVerification) error {
	query := `INSERT INTO company_verifications (company_id, owner_id, documents, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		v.CompanyID, v.OwnerID, v.Documents, v.Status, v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Verification request already submitted for this company")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *verificationRepo) GetByID(ctx context.Context, id string) (*domain.CompanyVerification, error) {
	query := `SELECT ` + verificationColumns + ` FROM company_verifications WHERE id = $1`
	var v domain.CompanyVerification
	if err := scanVerification(r.db.QueryRow(ctx, query, id), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepo) GetByCompanyID(ctx context.Context, companyID string) (*domain.CompanyVerification, error) {
	query := `SELECT ` + verificationColumns + ` FROM company_verifications WHERE company_id = $1`
	var v domain.CompanyVerification
	if err := scanVerification(r.db.QueryRow(ctx, query, companyID), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *verificationRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.CompanyVerification, int64, error) {
	query := `SELECT ` + verificationColumns + ` FROM company_verifications
              WHERE status = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.CompanyVerification
	for rows.Next() {
		var v domain.CompanyVerification
		if err := scanVerification(rows, &v); err != nil {
			return nil, 0, err
		}
		requests = append(requests, v)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM company_verifications WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *verificationRepo) UpdateStatus(ctx context.Context, id, status string, notes *string, verifiedBy string) error {
	query := `UPDATE company_verifications
              SET status = $2, notes = $3, verified_by = $4, updated_at = now()
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, notes, verifiedBy)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
