package postgres

import (
	"context"
	"encoding/json"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, user_id, full_name, email, phone, address, headline, summary,
	profile_picture, experience, education, skills, projects, completion,
	created_at, updated_at`

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func scanProfile(row interface{ Scan(dest ...any) error }, p *domain.Profile) error {
	var experience, education, projects []byte
	if err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.Phone, &p.Address, &p.Headline,
		&p.Summary, &p.ProfilePicture, &experience, &education, &p.Skills, &projects,
		&p.Completion, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return err
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return err
	}
	return json.Unmarshal(projects, &p.Projects)
}

func marshalProfileSections(p *domain.Profile) (experience, education, projects []byte, err error) {
	if experience, err = json.Marshal(p.Experience); err != nil {
		return nil, nil, nil, err
	}
	if education, err = json.Marshal(p.Education); err != nil {
		return nil, nil, nil, err
	}
	if projects, err = json.Marshal(p.Projects); err != nil {
		return nil, nil, nil, err
	}
	return experience, education, projects, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	experience, education, projects, err := marshalProfileSections(profile)
	if err != nil {
		return err
	}
	query := `INSERT INTO profiles (user_id, full_name, email, phone, address, headline, summary,
	              profile_picture, experience, education, skills, projects, completion,
	              created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
              RETURNING id`
	err = r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Email, profile.Phone, profile.Address,
		profile.Headline, profile.Summary, profile.ProfilePicture,
		experience, education, profile.Skills, projects, profile.Completion,
		profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Profile already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	var profile domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, id), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	var profile domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	experience, education, projects, err := marshalProfileSections(profile)
	if err != nil {
		return err
	}
	query := `UPDATE profiles SET
		full_name = $2,
		email = $3,
		phone = $4,
		address = $5,
		headline = $6,
		summary = $7,
		profile_picture = $8,
		experience = $9,
		education = $10,
		skills = $11,
		projects = $12,
		completion = $13,
		updated_at = $14
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Email, profile.Phone, profile.Address,
		profile.Headline, profile.Summary, profile.ProfilePicture,
		experience, education, profile.Skills, projects, profile.Completion,
		profile.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
