package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register",
			middleware.RateLimitMiddleware(middleware.RegisterRateLimitConfig(cfg.RateLimitRegisterThreshold)),
			handler.Register)
		publicAuth.POST("/login",
			middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold)),
			handler.Login)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Password string `json:"password" binding:"required,strong_password"`
	Role     string `json:"role"`
	Mobile   string `json:"mobile" binding:"mobile_10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenPayload struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	User        *domain.UserSummary `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", tokenPayload{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", tokenPayload{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	response.Success(c, http.StatusOK, "Authenticated", gin.H{
		"user_id": identity.UserID,
		"email":   identity.Email,
		"role":    identity.Role,
	})
}
