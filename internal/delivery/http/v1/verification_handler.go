package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationUC domain.VerificationUsecase
}

func NewVerificationHandler(protected *gin.RouterGroup, verificationUC domain.VerificationUsecase) {
	handler := &VerificationHandler{verificationUC: verificationUC}

	companies := protected.Group("/companies")
	{
		companies.POST("/:id/verification", handler.Submit)
		companies.GET("/:id/verification", handler.Get)
	}

	admin := protected.Group("/admin/verifications")
	{
		admin.GET("", handler.ListPending)
		admin.POST("/:id/decision", handler.Decide)
	}
}

type SubmitVerificationRequest struct {
	Documents map[string]string `json:"documents" binding:"required"`
}

type VerificationDecisionRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *VerificationHandler) Submit(c *gin.Context) {
	var req SubmitVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	v, err := h.verificationUC.SubmitRequest(c.Request.Context(), identity, c.Param("id"), req.Documents)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Verification request submitted", v)
}

func (h *VerificationHandler) Get(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	v, err := h.verificationUC.GetRequest(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Verification request retrieved", v)
}

func (h *VerificationHandler) ListPending(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)

	requests, total, err := h.verificationUC.ListPending(c.Request.Context(), identity, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Pending verifications retrieved", response.Paginated{
		Items: requests, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *VerificationHandler) Decide(c *gin.Context) {
	var req VerificationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.verificationUC.Decide(c.Request.Context(), identity, c.Param("id"), req.Status, req.Notes); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Verification decision recorded", nil)
}
