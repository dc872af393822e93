package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.POST("", handler.Create)
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.DELETE("", handler.Delete)
	}
}

// ProfileRequest deliberately has no completion field; the score is always
// recomputed server-side.
type ProfileRequest struct {
	FullName       string                   `json:"full_name" binding:"required"`
	Email          string                   `json:"email" binding:"required"`
	Phone          string                   `json:"phone"`
	Address        string                   `json:"address"`
	Headline       string                   `json:"headline"`
	Summary        string                   `json:"summary"`
	ProfilePicture string                   `json:"profile_picture"`
	Experience     []domain.ExperienceEntry `json:"experience"`
	Education      []domain.EducationEntry  `json:"education"`
	Skills         []string                 `json:"skills"`
	Projects       []domain.ProjectEntry    `json:"projects"`
}

func (r *ProfileRequest) toDomain() *domain.Profile {
	return &domain.Profile{
		FullName:       r.FullName,
		Email:          r.Email,
		Phone:          r.Phone,
		Address:        r.Address,
		Headline:       r.Headline,
		Summary:        r.Summary,
		ProfilePicture: r.ProfilePicture,
		Experience:     r.Experience,
		Education:      r.Education,
		Skills:         r.Skills,
		Projects:       r.Projects,
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := req.toDomain()
	identity := middleware.IdentityFromContext(c)
	if err := h.profileUC.CreateProfile(c.Request.Context(), identity, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), identity)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), identity, req.toDomain())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.profileUC.DeleteProfile(c.Request.Context(), identity); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile deleted", nil)
}
