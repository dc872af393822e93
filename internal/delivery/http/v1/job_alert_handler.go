package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobAlertHandler struct {
	alertUC domain.JobAlertUsecase
}

func NewJobAlertHandler(protected *gin.RouterGroup, alertUC domain.JobAlertUsecase) {
	handler := &JobAlertHandler{alertUC: alertUC}

	alerts := protected.Group("/job-alerts")
	{
		alerts.POST("", handler.Create)
		alerts.GET("", handler.ListMine)
		alerts.GET("/matches", handler.RecentMatches)
		alerts.GET("/:id", handler.Get)
		alerts.PUT("/:id", handler.Update)
		alerts.DELETE("/:id", handler.Delete)
	}
}

type JobAlertRequest struct {
	Title        string                   `json:"title" binding:"required"`
	SearchParams domain.AlertSearchParams `json:"search_params"`
	Frequency    string                   `json:"frequency"`
	IsActive     *bool                    `json:"is_active"`
	EmailEnabled bool                     `json:"email_notifications"`
}

func (h *JobAlertHandler) Create(c *gin.Context) {
	var req JobAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	alert := &domain.JobAlert{
		Title:        req.Title,
		SearchParams: req.SearchParams,
		Frequency:    req.Frequency,
		EmailEnabled: req.EmailEnabled,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.alertUC.CreateAlert(c.Request.Context(), identity, alert); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job alert created", alert)
}

func (h *JobAlertHandler) Get(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	alert, err := h.alertUC.GetAlert(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job alert retrieved", alert)
}

func (h *JobAlertHandler) ListMine(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	alerts, err := h.alertUC.ListMine(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job alerts retrieved", alerts)
}

func (h *JobAlertHandler) Update(c *gin.Context) {
	var req JobAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	alert := &domain.JobAlert{
		ID:           c.Param("id"),
		Title:        req.Title,
		SearchParams: req.SearchParams,
		Frequency:    req.Frequency,
		IsActive:     true,
		EmailEnabled: req.EmailEnabled,
	}
	if req.IsActive != nil {
		alert.IsActive = *req.IsActive
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.alertUC.UpdateAlert(c.Request.Context(), identity, alert); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job alert updated", alert)
}

func (h *JobAlertHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.alertUC.DeleteAlert(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job alert deleted", nil)
}

func (h *JobAlertHandler) RecentMatches(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	jobs, err := h.alertUC.RecentMatches(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Matching jobs retrieved", jobs)
}
