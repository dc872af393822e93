package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, name, description, website, industry, size, founded_year, headquarters,
	owner_id, verification_status, is_verified, created_at, updated_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row interface{ Scan(dest ...any) error }, c *domain.Company) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Website, &c.Industry, &c.Size,
		&c.FoundedYear, &c.Headquarters, &c.OwnerID, &c.VerificationStatus,
		&c.IsVerified, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (name, description, website, industry, size, founded_year,
	              headquarters, owner_id, verification_status, is_verified, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		company.Name, company.Description, company.Website, company.Industry, company.Size,
		company.FoundedYear, company.Headquarters, company.OwnerID,
		company.VerificationStatus, company.IsVerified, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Company with this name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var company domain.Company
	if err := scanCompany(r.db.QueryRow(ctx, query, id), &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepo) List(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := scanCompany(rows, &company); err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		description = $3,
		website = $4,
		industry = $5,
		size = $6,
		founded_year = $7,
		headquarters = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Website, company.Industry,
		company.Size, company.FoundedYear, company.Headquarters, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Company with this name already exists")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetVerification(ctx context.Context, id, status string, verified bool) error {
	query := `UPDATE companies SET verification_status = $2, is_verified = $3, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, verified)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
