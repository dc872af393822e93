package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing and reading jobs needs no account.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.Search)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/jobs", handler.ListByEmployer)
	}
}

type CreateJobRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Company            string   `json:"company" binding:"required"`
	SalaryMin          *int     `json:"salary_min"`
	SalaryMax          *int     `json:"salary_max"`
	Location           string   `json:"location"`
	Skills             []string `json:"skills"`
	ExperienceRequired *string  `json:"experience_required"`
	ExperienceMinYears int      `json:"experience_min_years"`
	WorkMode           *string  `json:"work_mode"`
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func (h *JobHandler) Search(c *gin.Context) {
	filter := domain.JobFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		WorkMode: c.Query("work_mode"),
	}
	if skills := c.Query("skills"); skills != "" {
		filter.SkillsAny = strings.Split(skills, ",")
	}
	if v, err := strconv.Atoi(c.Query("salary_min")); err == nil {
		filter.SalaryMin = v
	}
	if v, err := strconv.Atoi(c.Query("experience_min")); err == nil {
		filter.ExperienceMinYears = v
	}

	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", response.Paginated{
		Items: jobs, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job := &domain.Job{
		Title:              req.Title,
		Description:        req.Description,
		Company:            req.Company,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		Location:           req.Location,
		Skills:             req.Skills,
		ExperienceRequired: req.ExperienceRequired,
		ExperienceMinYears: req.ExperienceMinYears,
		WorkMode:           req.WorkMode,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.jobUC.CreateJob(c.Request.Context(), identity, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var upd domain.JobUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	identity := middleware.IdentityFromContext(c)
	job, err := h.jobUC.UpdateJob(c.Request.Context(), identity, c.Param("id"), upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.jobUC.DeleteJob(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) ListByEmployer(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	page, pageSize := pageParams(c)

	jobs, total, err := h.jobUC.ListJobsByEmployer(c.Request.Context(), identity, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", response.Paginated{
		Items: jobs, Total: total, Page: page, PageSize: pageSize,
	})
}
