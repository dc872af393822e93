package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// User roles. A role is fixed at registration; no endpoint changes it.
const (
	RoleJobSeeker = "job_seeker"
	RoleEmployer  = "employer"
	RoleAdmin     = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r string) bool {
	return r == RoleJobSeeker || r == RoleEmployer || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Mobile       string    `json:"mobile,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserSummary is the slim shape returned alongside a freshly minted token.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Identity is the verified caller, resolved from a session token plus the
// live user record. Role always comes from the record, never the token alone.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the identity bypasses ownership checks.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type RegisterInput struct {
	Email    string
	FullName string
	Role     string
	Password string
	Mobile   string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (string, *UserSummary, error)
	Login(ctx context.Context, email, password string) (string, *UserSummary, error)
	// VerifyToken validates the token signature and expiry, then re-resolves
	// the user from the store. The live record is the source of truth for
	// role and active status.
	VerifyToken(ctx context.Context, tokenString string) (*Identity, error)
}
