package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/ai"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

const chatFallback = "I'm currently unavailable. Please try again later or browse jobs directly."

type aiUsecase struct {
	client *ai.Client
}

func NewAIUsecase(client *ai.Client) domain.AIUsecase {
	return &aiUsecase{client: client}
}

const chatSystemPrompt = `You are a helpful career assistant for a job portal. ` +
	`Answer questions about job searching, applications, resumes and interviews. Keep answers concise.`

func (u *aiUsecase) Chat(ctx context.Context, message string, history []domain.AIMessage) string {
	messages := []ai.Message{{Role: "system", Content: chatSystemPrompt}}
	for _, m := range history {
		messages = append(messages, ai.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, ai.Message{Role: "user", Content: message})

	reply, err := u.client.Complete(ctx, messages)
	if err != nil {
		logger.Log.Warn("chat completion failed", "error", err)
		return chatFallback
	}
	return reply
}

func defaultAnalysis(raw string) *domain.ResumeAnalysis {
	return &domain.ResumeAnalysis{
		Skills:       []string{},
		Experience:   "Could not determine",
		Achievements: []string{},
		Improvements: []string{"Add more detail to your resume", "List your key skills explicitly"},
		ATSScore:     50,
		Raw:          raw,
	}
}

func (u *aiUsecase) AnalyzeResume(ctx context.Context, resumeText string) *domain.ResumeAnalysis {
	prompt := `Analyze the following resume and respond with a JSON object containing exactly these keys: ` +
		`"skills" (array of strings), "experience" (string summary), "achievements" (array of strings), ` +
		`"improvements" (array of strings), "ats_score" (integer 0-100). Respond with JSON only.` +
		"\n\nResume:\n" + resumeText

	reply, err := u.client.Complete(ctx, []ai.Message{{Role: "user", Content: prompt}})
	if err != nil {
		logger.Log.Warn("resume analysis failed", "error", err)
		return defaultAnalysis("")
	}

	var analysis domain.ResumeAnalysis
	// Models often wrap JSON in a code fence.
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	if err := json.Unmarshal([]byte(strings.TrimSpace(cleaned)), &analysis); err != nil {
		return defaultAnalysis(reply)
	}
	return &analysis
}

func (u *aiUsecase) CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error) {
	prompt := "Write a professional cover letter tailored to the job description below, drawing on the resume. " +
		"Keep it under 350 words.\n\nJob description:\n" + jobDescription + "\n\nResume:\n" + resumeText

	letter, err := u.client.Complete(ctx, []ai.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", apperror.Unavailable("Cover letter generation is temporarily unavailable")
	}
	return letter, nil
}

func (u *aiUsecase) InterviewQuestions(ctx context.Context, jobTitle, jobDescription string) (string, error) {
	prompt := "Generate 10 interview questions with brief suggested answers for the role of " + jobTitle +
		".\n\nJob description:\n" + jobDescription

	questions, err := u.client.Complete(ctx, []ai.Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", apperror.Unavailable("Interview question generation is temporarily unavailable")
	}
	return questions, nil
}
