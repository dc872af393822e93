package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	{
		admin.GET("/users", handler.ListUsers)
		admin.GET("/users/:id", handler.GetUser)
		admin.PATCH("/users/:id/active", handler.SetUserActive)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.GET("/jobs", handler.ListAllJobs)
		admin.PATCH("/jobs/:id/active", handler.SetJobActive)
		admin.GET("/companies", handler.ListAllCompanies)
	}
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)

	users, total, err := h.adminUC.ListUsers(c.Request.Context(), identity, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", response.Paginated{
		Items: users, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	user, err := h.adminUC.GetUser(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.adminUC.SetUserActive(c.Request.Context(), identity, c.Param("id"), *req.Active); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated", nil)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.adminUC.DeleteUser(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}

func (h *AdminHandler) ListAllJobs(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)

	jobs, total, err := h.adminUC.ListAllJobs(c.Request.Context(), identity, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", response.Paginated{
		Items: jobs, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *AdminHandler) SetJobActive(c *gin.Context) {
	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.adminUC.SetJobActive(c.Request.Context(), identity, c.Param("id"), *req.Active); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", nil)
}

func (h *AdminHandler) ListAllCompanies(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)

	companies, total, err := h.adminUC.ListAllCompanies(c.Request.Context(), identity, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", response.Paginated{
		Items: companies, Total: total, Page: page, PageSize: pageSize,
	})
}
