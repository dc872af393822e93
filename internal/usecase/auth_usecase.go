package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/hashutil"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/token"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/validation"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (string, *domain.UserSummary, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !validation.ValidEmail(email) {
		return "", nil, apperror.BadRequest("Invalid email format")
	}
	if !validation.ValidPassword(input.Password) {
		return "", nil, apperror.BadRequest("Password must be 8-72 characters with an uppercase letter, a digit and a special character")
	}
	if input.Mobile != "" && !validation.ValidMobile(input.Mobile) {
		return "", nil, apperror.BadRequest("Mobile number must be exactly 10 digits")
	}
	role := input.Role
	if role == "" {
		role = domain.RoleJobSeeker
	}
	if !domain.ValidRole(role) {
		return "", nil, apperror.BadRequest("Invalid role")
	}

	hash, err := hashutil.HashPassword(input.Password)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Role:         role,
		PasswordHash: hash,
		Mobile:       input.Mobile,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	tokenString, err := u.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	logger.Log.Info("user registered", "email", user.Email, "role", user.Role)

	return tokenString, &domain.UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.FullName,
		Role:  user.Role,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.UserSummary, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Same message as a wrong password so the response does not
		// reveal which emails are registered.
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if !hashutil.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperror.Unauthorized("Account is deactivated")
	}

	tokenString, err := u.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return tokenString, &domain.UserSummary{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.FullName,
		Role:  user.Role,
	}, nil
}

func (u *authUsecase) VerifyToken(ctx context.Context, tokenString string) (*domain.Identity, error) {
	claims, err := u.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}

	user, err := u.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired token")
	}
	if !user.IsActive {
		return nil, apperror.Unauthorized("Account is deactivated")
	}

	return &domain.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
