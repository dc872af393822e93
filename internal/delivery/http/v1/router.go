package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	JobUC          domain.JobUsecase
	ApplicationUC  domain.ApplicationUsecase
	SavedJobUC     domain.SavedJobUsecase
	CompanyUC      domain.CompanyUsecase
	VerificationUC domain.VerificationUsecase
	ReviewUC       domain.ReviewUsecase
	NotificationUC domain.NotificationUsecase
	JobAlertUC     domain.JobAlertUsecase
	ProfileUC      domain.ProfileUsecase
	ResumeUC       domain.ResumeUsecase
	AdminUC        domain.AdminUsecase
	AIUC           domain.AIUsecase
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// CORS must run before anything that can abort the request.
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewSavedJobHandler(protected, deps.SavedJobUC)
		NewCompanyHandler(v1, protected, deps.CompanyUC)
		NewVerificationHandler(protected, deps.VerificationUC)
		NewReviewHandler(v1, protected, deps.ReviewUC)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewJobAlertHandler(protected, deps.JobAlertUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewResumeHandler(protected, deps.ResumeUC)
		NewAdminHandler(protected, deps.AdminUC)
		NewAIHandler(protected, deps.AIUC)
	}

	return r
}
