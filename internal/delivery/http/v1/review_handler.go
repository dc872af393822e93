package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

func NewReviewHandler(public *gin.RouterGroup, protected *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	public.GET("/companies/:id/reviews", handler.ListByCompany)

	protected.POST("/companies/:id/reviews", handler.Create)
	reviews := protected.Group("/reviews")
	{
		reviews.PUT("/:id", handler.Update)
		reviews.DELETE("/:id", handler.Delete)
	}
}

type ReviewRequest struct {
	RatingWorkCulture   int     `json:"rating_work_culture" binding:"required"`
	RatingSalary        int     `json:"rating_salary" binding:"required"`
	RatingHR            int     `json:"rating_hr" binding:"required"`
	RatingManagement    int     `json:"rating_management" binding:"required"`
	Pros                string  `json:"pros"`
	Cons                string  `json:"cons"`
	InterviewExperience *string `json:"interview_experience"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	review := &domain.Review{
		CompanyID:           c.Param("id"),
		RatingWorkCulture:   req.RatingWorkCulture,
		RatingSalary:        req.RatingSalary,
		RatingHR:            req.RatingHR,
		RatingManagement:    req.RatingManagement,
		Pros:                req.Pros,
		Cons:                req.Cons,
		InterviewExperience: req.InterviewExperience,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.reviewUC.CreateReview(c.Request.Context(), identity, review); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created", review)
}

func (h *ReviewHandler) ListByCompany(c *gin.Context) {
	page, pageSize := pageParams(c)

	reviews, agg, total, err := h.reviewUC.ListByCompany(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews retrieved", gin.H{
		"reviews":   reviews,
		"aggregate": agg,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	review := &domain.Review{
		ID:                  c.Param("id"),
		RatingWorkCulture:   req.RatingWorkCulture,
		RatingSalary:        req.RatingSalary,
		RatingHR:            req.RatingHR,
		RatingManagement:    req.RatingManagement,
		Pros:                req.Pros,
		Cons:                req.Cons,
		InterviewExperience: req.InterviewExperience,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.reviewUC.UpdateReview(c.Request.Context(), identity, review); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review updated", review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.reviewUC.DeleteReview(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Review deleted", nil)
}
