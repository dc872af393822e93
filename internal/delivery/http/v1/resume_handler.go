package v1

import (
	"io"
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxResumeBytes = 5 << 20

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.POST("", handler.Upload)
		resumes.GET("", handler.ListMine)
		resumes.DELETE("/:id", handler.Delete)
	}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("A file upload named 'file' is required"))
		return
	}
	if fileHeader.Size > maxResumeBytes {
		c.Error(apperror.BadRequest("Resume must be 5MB or smaller"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	identity := middleware.IdentityFromContext(c)
	resume, err := h.resumeUC.Upload(c.Request.Context(), identity,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), string(content))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded", resume)
}

func (h *ResumeHandler) ListMine(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	resumes, err := h.resumeUC.ListMine(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.resumeUC.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
