package domain

import "context"

// ResumeAnalysis is the structured result of an AI resume review.
type ResumeAnalysis struct {
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
	Achievements []string `json:"achievements"`
	Improvements []string `json:"improvements"`
	ATSScore     int      `json:"ats_score"`
	Raw          string   `json:"raw,omitempty"`
}

// AIUsecase proxies the external text-generation API.
//
// Failure policy: advisory operations (Chat, AnalyzeResume) fall back to a
// fixed default payload and never surface an error to the caller; generation
// operations (CoverLetter, InterviewQuestions) propagate a 503.
type AIUsecase interface {
	Chat(ctx context.Context, message string, history []AIMessage) string
	AnalyzeResume(ctx context.Context, resumeText string) *ResumeAnalysis
	CoverLetter(ctx context.Context, resumeText, jobDescription string) (string, error)
	InterviewQuestions(ctx context.Context, jobTitle, jobDescription string) (string, error)
}

// AIMessage mirrors a chat-style conversation entry.
type AIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
