package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	publicCompanies := public.Group("/companies")
	{
		publicCompanies.GET("", handler.List)
		publicCompanies.GET("/:id", handler.GetDetails)
	}

	protectedCompanies := protected.Group("/companies")
	{
		protectedCompanies.POST("", handler.Create)
		protectedCompanies.PUT("/:id", handler.Update)
		protectedCompanies.DELETE("/:id", handler.Delete)
	}
}

type CompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	FoundedYear  int    `json:"founded_year"`
	Headquarters string `json:"headquarters"`
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	companies, total, err := h.companyUC.ListCompanies(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", response.Paginated{
		Items: companies, Total: total, Page: page, PageSize: pageSize,
	})
}

func (h *CompanyHandler) GetDetails(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", company)
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:         req.Name,
		Description:  req.Description,
		Website:      req.Website,
		Industry:     req.Industry,
		Size:         req.Size,
		FoundedYear:  req.FoundedYear,
		Headquarters: req.Headquarters,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.companyUC.CreateCompany(c.Request.Context(), identity, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

func (h *CompanyHandler) Update(c *gin.Context) {
	var req CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		ID:           c.Param("id"),
		Name:         req.Name,
		Description:  req.Description,
		Website:      req.Website,
		Industry:     req.Industry,
		Size:         req.Size,
		FoundedYear:  req.FoundedYear,
		Headquarters: req.Headquarters,
	}

	identity := middleware.IdentityFromContext(c)
	if err := h.companyUC.UpdateCompany(c.Request.Context(), identity, company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated", company)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if err := h.companyUC.DeleteCompany(c.Request.Context(), identity, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}
