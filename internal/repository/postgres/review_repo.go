package postgres

import (
	"context"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, company_id, user_id, rating_work_culture, rating_salary, rating_hr,
	rating_management, pros, cons, interview_experience, created_at, updated_at`

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

func scanReview(row interface{ Scan(dest ...any) error }, rev *domain.Review) error {
	return row.Scan(
		&rev.ID, &rev.CompanyID, &rev.UserID, &rev.RatingWorkCulture, &rev.RatingSalary,
		&rev.RatingHR, &rev.RatingManagement, &rev.Pros, &rev.Cons,
		&rev.InterviewExperience, &rev.CreatedAt, &rev.UpdatedAt,
	)
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	query := `INSERT INTO reviews (company_id, user_id, rating_work_culture, rating_salary, rating_hr,
	              rating_management, pros, cons, interview_experience, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
              RETURNING id`
	err := r.db.QueryRow(ctx, query,
		review.CompanyID, review.UserID, review.RatingWorkCulture, review.RatingSalary,
		review.RatingHR, review.RatingManagement, review.Pros, review.Cons,
		review.InterviewExperience, review.CreatedAt, review.UpdatedAt,
	).Scan(&review.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already reviewed this company")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *reviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	var review domain.Review
	if err := scanReview(r.db.QueryRow(ctx, query, id), &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepo) GetByCompanyID(ctx context.Context, companyID string, limit, offset int) ([]domain.Review, int64, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
              WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := scanReview(rows, &review); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepo) Aggregate(ctx context.Context, companyID string) (*domain.ReviewAggregate, error) {
	query := `SELECT COUNT(*),
	                 COALESCE(AVG(rating_work_culture), 0),
	                 COALESCE(AVG(rating_salary), 0),
	                 COALESCE(AVG(rating_hr), 0),
	                 COALESCE(AVG(rating_management), 0)
              FROM reviews WHERE company_id = $1`
	agg := domain.ReviewAggregate{CompanyID: companyID}
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&agg.ReviewCount, &agg.AvgWorkCulture, &agg.AvgSalary, &agg.AvgHR, &agg.AvgManagement,
	)
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *reviewRepo) Update(ctx context.Context, review *domain.Review) error {
	query := `UPDATE reviews SET
		rating_work_culture = $2,
		rating_salary = $3,
		rating_hr = $4,
		rating_management = $5,
		pros = $6,
		cons = $7,
		interview_experience = $8,
		updated_at = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		review.ID, review.RatingWorkCulture, review.RatingSalary, review.RatingHR,
		review.RatingManagement, review.Pros, review.Cons, review.InterviewExperience,
		review.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
