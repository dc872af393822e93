package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/usecase"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/hashutil"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTokenManager() *token.Manager {
	return token.NewManager("test-secret", 30*time.Minute)
}

func TestRegisterValidation(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, newTokenManager())

	valid := domain.RegisterInput{
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: "Str0ng!pass",
		Role:     domain.RoleJobSeeker,
		Mobile:   "9876543210",
	}

	t.Run("rejects malformed email", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"
		_, _, err := uc.Register(context.Background(), input)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*apperror.AppError).Code)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		for _, pw := range []string{"short1!", "nouppercase1!", "NoDigits!!", "NoSpecial123"} {
			input := valid
			input.Password = pw
			_, _, err := uc.Register(context.Background(), input)
			assert.Error(t, err, "password %q should be rejected", pw)
		}
	})

	t.Run("rejects bad mobile number", func(t *testing.T) {
		input := valid
		input.Mobile = "12345"
		_, _, err := uc.Register(context.Background(), input)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		input := valid
		input.Role = "superuser"
		_, _, err := uc.Register(context.Background(), input)
		assert.Error(t, err)
	})

	t.Run("defaults empty role to job seeker", func(t *testing.T) {
		input := valid
		input.Role = ""
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleJobSeeker, u.Role)
			assert.NotEqual(t, input.Password, u.PasswordHash)
			u.ID = "user-1"
		})

		tokenString, summary, err := uc.Register(context.Background(), input)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)
		assert.Equal(t, domain.RoleJobSeeker, summary.Role)
	})

	t.Run("lowercases email before storing", func(t *testing.T) {
		input := valid
		input.Email = "Jane@Example.COM"
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once().Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "jane@example.com", u.Email)
		})

		_, _, err := uc.Register(context.Background(), input)
		assert.NoError(t, err)
	})

	t.Run("propagates duplicate email conflict", func(t *testing.T) {
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(apperror.Conflict("Email already exists")).Once()

		_, _, err := uc.Register(context.Background(), valid)
		assert.Error(t, err)
		assert.Equal(t, 409, err.(*apperror.AppError).Code)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := hashutil.HashPassword("Str0ng!pass")
	activeUser := &domain.User{
		ID:           "user-1",
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		Role:         domain.RoleJobSeeker,
		PasswordHash: hash,
		IsActive:     true,
	}

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(activeUser, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager())

		tokenString, summary, err := uc.Login(context.Background(), "jane@example.com", "Str0ng!pass")
		assert.NoError(t, err)
		assert.NotEmpty(t, tokenString)
		assert.Equal(t, "user-1", summary.ID)
	})

	t.Run("same generic error for unknown email and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(activeUser, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager())

		_, _, errUnknown := uc.Login(context.Background(), "ghost@example.com", "whatever")
		_, _, errWrong := uc.Login(context.Background(), "jane@example.com", "WrongPass1!")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("rejects deactivated account", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(&inactive, nil)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager())

		_, _, err := uc.Login(context.Background(), "jane@example.com", "Str0ng!pass")
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*apperror.AppError).Code)
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("accepts passwords beyond the hash limit via truncation", func(t *testing.T) {
		long := "Aa1!" + string(make([]byte, 0))
		for len(long) < 80 {
			long += "x"
		}
		longHash, err := hashutil.HashPassword(long)
		assert.NoError(t, err)
		assert.True(t, hashutil.CheckPassword(long, longHash))
		// Bytes beyond 72 are ignored on both sides.
		assert.True(t, hashutil.CheckPassword(long[:72]+"different-tail", longHash))
	})
}

func TestVerifyToken(t *testing.T) {
	tokens := newTokenManager()

	t.Run("role comes from the live record, not the claim", func(t *testing.T) {
		tokenString, err := tokens.Generate("jane@example.com", domain.RoleJobSeeker)
		assert.NoError(t, err)

		promoted := &domain.User{
			ID:       "user-1",
			Email:    "jane@example.com",
			Role:     domain.RoleEmployer,
			IsActive: true,
		}
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(promoted, nil)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		identity, err := uc.VerifyToken(context.Background(), tokenString)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleEmployer, identity.Role)
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		tokenString, _ := tokens.Generate("jane@example.com", domain.RoleJobSeeker)
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		_, err := uc.VerifyToken(context.Background(), tokenString+"x")
		assert.Error(t, err)
		assert.Equal(t, 401, err.(*apperror.AppError).Code)
	})

	t.Run("rejects token for deactivated user", func(t *testing.T) {
		tokenString, _ := tokens.Generate("jane@example.com", domain.RoleJobSeeker)
		inactive := &domain.User{ID: "user-1", Email: "jane@example.com", Role: domain.RoleJobSeeker, IsActive: false}
		mockRepo := new(MockUserRepo)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(inactive, nil)
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		_, err := uc.VerifyToken(context.Background(), tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := token.NewManager("test-secret", -1*time.Minute)
		tokenString, _ := expired.Generate("jane@example.com", domain.RoleJobSeeker)
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, expired)

		_, err := uc.VerifyToken(context.Background(), tokenString)
		assert.Error(t, err)
	})
}
