package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Text        string    `json:"-"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	GetByID(ctx context.Context, id string) (*Resume, error)
	GetByUserID(ctx context.Context, userID string) ([]Resume, error)
	Delete(ctx context.Context, id string) error
}

type ResumeUsecase interface {
	Upload(ctx context.Context, actor Identity, filename, contentType, text string) (*Resume, error)
	ListMine(ctx context.Context, actor Identity) ([]Resume, error)
	Delete(ctx context.Context, actor Identity, id string) error
}
