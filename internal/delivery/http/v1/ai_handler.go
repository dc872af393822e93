package v1

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiUC domain.AIUsecase
}

func NewAIHandler(protected *gin.RouterGroup, aiUC domain.AIUsecase) {
	handler := &AIHandler{aiUC: aiUC}

	ai := protected.Group("/ai")
	{
		ai.POST("/chat", handler.Chat)
		ai.POST("/analyze-resume", handler.AnalyzeResume)
		ai.POST("/cover-letter", handler.CoverLetter)
		ai.POST("/interview-questions", handler.InterviewQuestions)
	}
}

type ChatRequest struct {
	Message string             `json:"message" binding:"required"`
	History []domain.AIMessage `json:"history"`
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

type CoverLetterRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

type InterviewQuestionsRequest struct {
	JobTitle       string `json:"job_title" binding:"required"`
	JobDescription string `json:"job_description"`
}

func (h *AIHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	reply := h.aiUC.Chat(c.Request.Context(), req.Message, req.History)
	response.Success(c, http.StatusOK, "Chat response", gin.H{"reply": reply})
}

func (h *AIHandler) AnalyzeResume(c *gin.Context) {
	var req AnalyzeResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	analysis := h.aiUC.AnalyzeResume(c.Request.Context(), req.ResumeText)
	response.Success(c, http.StatusOK, "Resume analyzed", analysis)
}

func (h *AIHandler) CoverLetter(c *gin.Context) {
	var req CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	letter, err := h.aiUC.CoverLetter(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Cover letter generated", gin.H{"cover_letter": letter})
}

func (h *AIHandler) InterviewQuestions(c *gin.Context) {
	var req InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	questions, err := h.aiUC.InterviewQuestions(c.Request.Context(), req.JobTitle, req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Interview questions generated", gin.H{"questions": questions})
}
