package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.POST("/:id/save", handler.Save)
		jobs.DELETE("/:id/save", handler.Unsave)
	}
	protected.GET("/saved-jobs", handler.List)
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	saved, err := h.savedJobUC.SaveJob(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", saved)
}

func (h *SavedJobHandler) List(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	saved, err := h.savedJobUC.ListSavedJobs(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs retrieved", saved)
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.savedJobUC.UnsaveJob(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved list", nil)
}
