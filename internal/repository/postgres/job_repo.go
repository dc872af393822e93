package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, description, company, salary_min, salary_max, location, skills,
	experience_required, experience_min_years, work_mode, created_by, is_active,
	posted_at, updated_at, application_count, view_count`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row interface{ Scan(dest ...any) error }, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Company, &job.SalaryMin, &job.SalaryMax,
		&job.Location, &job.Skills, &job.ExperienceRequired, &job.ExperienceMinYears,
		&job.WorkMode, &job.CreatedBy, &job.IsActive, &job.PostedAt, &job.UpdatedAt,
		&job.ApplicationCount, &job.ViewCount,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, company, salary_min, salary_max, location, skills,
	              experience_required, experience_min_years, work_mode, created_by, is_active,
	              posted_at, updated_at, application_count, view_count)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Company, job.SalaryMin, job.SalaryMax, job.Location,
		job.Skills, job.ExperienceRequired, job.ExperienceMinYears, job.WorkMode,
		job.CreatedBy, job.IsActive, job.PostedAt, job.UpdatedAt,
		job.ApplicationCount, job.ViewCount,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// buildWhere translates a JobFilter into a WHERE clause plus bind args.
func buildWhere(filter domain.JobFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ActiveOnly {
		conds = append(conds, "is_active = TRUE")
	}
	if filter.Search != "" {
		p := arg("%" + filter.Search + "%")
		exact := arg(filter.Search)
		conds = append(conds, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s OR %s = ANY(skills))", p, p, exact))
	}
	if filter.Location != "" {
		conds = append(conds, fmt.Sprintf("location ILIKE %s", arg("%"+filter.Location+"%")))
	}
	if filter.WorkMode != "" {
		conds = append(conds, fmt.Sprintf("work_mode = %s", arg(filter.WorkMode)))
	}
	if len(filter.SkillsAny) > 0 {
		conds = append(conds, fmt.Sprintf("skills && %s", arg(filter.SkillsAny)))
	}
	if len(filter.SkillsAll) > 0 {
		conds = append(conds, fmt.Sprintf("skills @> %s", arg(filter.SkillsAll)))
	}
	if filter.SalaryMin > 0 {
		conds = append(conds, fmt.Sprintf("salary_min >= %s", arg(filter.SalaryMin)))
	}
	if filter.ExperienceMinYears > 0 {
		conds = append(conds, fmt.Sprintf("experience_min_years >= %s", arg(filter.ExperienceMinYears)))
	}
	if filter.PostedAfter != nil {
		conds = append(conds, fmt.Sprintf("posted_at >= %s", arg(*filter.PostedAfter)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *jobRepo) Search(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.Job, int64, error) {
	where, args := buildWhere(filter)

	query := `SELECT ` + jobColumns + ` FROM jobs` + where +
		fmt.Sprintf(` ORDER BY posted_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE created_by = $1 ORDER BY posted_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE created_by = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		company = $4,
		salary_min = $5,
		salary_max = $6,
		location = $7,
		skills = $8,
		experience_required = $9,
		experience_min_years = $10,
		work_mode = $11,
		is_active = $12,
		updated_at = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Company, job.SalaryMin, job.SalaryMax,
		job.Location, job.Skills, job.ExperienceRequired, job.ExperienceMinYears,
		job.WorkMode, job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE jobs SET is_active = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) IncrementViewCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *jobRepo) IncrementApplicationCount(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET application_count = application_count + 1 WHERE id = $1`, id)
	return err
}
