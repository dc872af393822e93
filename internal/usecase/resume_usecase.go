package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
)

var allowedResumeTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository) domain.ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) Upload(ctx context.Context, actor domain.Identity, filename, contentType, text string) (*domain.Resume, error) {
	if filename == "" {
		return nil, apperror.BadRequest("Filename is required")
	}
	mediaType := strings.TrimSpace(strings.ToLower(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if !allowedResumeTypes[mediaType] {
		return nil, apperror.BadRequest("Unsupported resume format, use PDF, DOCX or plain text")
	}
	// Binary uploads carry NUL and invalid UTF-8 sequences that a
	// Postgres TEXT column rejects, so keep only valid text.
	text = strings.ReplaceAll(strings.ToValidUTF8(text, ""), "\x00", "")
	if text == "" {
		return nil, apperror.BadRequest("Resume content is empty")
	}

	resume := &domain.Resume{
		UserID:      actor.UserID,
		Filename:    filename,
		ContentType: mediaType,
		Text:        text,
		UploadedAt:  time.Now(),
	}
	if err := u.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

func (u *resumeUsecase) ListMine(ctx context.Context, actor domain.Identity) ([]domain.Resume, error) {
	return u.resumeRepo.GetByUserID(ctx, actor.UserID)
}

func (u *resumeUsecase) Delete(ctx context.Context, actor domain.Identity, id string) error {
	resume, err := u.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Resume not found")
	}
	if resume.UserID != actor.UserID && !actor.IsAdmin() {
		return apperror.NotFound("Resume not found")
	}
	return u.resumeRepo.Delete(ctx, id)
}
