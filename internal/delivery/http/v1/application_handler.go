package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/:id/apply", handler.Apply)
		jobs.GET("/:id/applications", handler.ListByJob)
	}

	applications := protected.Group("/applications")
	{
		applications.GET("/me", handler.MyApplications)
		applications.DELETE("/:id", handler.Withdraw)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	// Body is optional; an empty application is a valid one.
	_ = c.ShouldBindJSON(&req)

	identity := middleware.IdentityFromContext(c)
	app, err := h.applicationUC.Apply(c.Request.Context(), identity, c.Param("id"), req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	apps, err := h.applicationUC.MyApplications(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.applicationUC.Withdraw(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	apps, err := h.applicationUC.ListByJob(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.applicationUC.UpdateStatus(c.Request.Context(), identity, c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", nil)
}
