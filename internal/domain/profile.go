package domain

import (
	"context"
	"time"
)

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Grade        string `json:"grade,omitempty"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// Profile is a job seeker's profile; one per user, unique index enforced.
// Completion is derived by the scorer on every create/update and never
// accepted as input.
type Profile struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	FullName       string            `json:"full_name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	Address        string            `json:"address,omitempty"`
	Headline       string            `json:"headline,omitempty"`
	Summary        string            `json:"summary,omitempty"`
	ProfilePicture string            `json:"profile_picture,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Completion     int               `json:"profile_completion"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id string) error
}

type ProfileUsecase interface {
	CreateProfile(ctx context.Context, actor Identity, profile *Profile) error
	GetMyProfile(ctx context.Context, actor Identity) (*Profile, error)
	UpdateProfile(ctx context.Context, actor Identity, profile *Profile) (*Profile, error)
	DeleteProfile(ctx context.Context, actor Identity) error
}
