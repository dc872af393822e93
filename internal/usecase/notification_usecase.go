package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
	userRepo         domain.UserRepository
	emailService     *email.EmailService
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository, userRepo domain.UserRepository, emailService *email.EmailService) domain.NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailService:     emailService,
	}
}

func (u *notificationUsecase) Notify(ctx context.Context, userID, title, message, notifType string, relatedID *string) {
	n := &domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		RelatedID: relatedID,
		CreatedAt: time.Now(),
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		logger.Log.Error("notification create failed", "user_id", userID, "type", notifType, "error", err)
		return
	}

	if u.emailService == nil || !u.emailService.IsConfigured() {
		return
	}
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	// Email delivery never blocks or fails the triggering operation.
	go func() {
		data := email.NotificationEmailData{
			RecipientName: user.FullName,
			Title:         title,
			Message:       message,
		}
		if err := u.emailService.SendNotificationEmail(user.Email, data); err != nil {
			logger.Log.Warn("notification email failed", "user_id", userID, "error", err)
		}
	}()
}

func (u *notificationUsecase) ListMine(ctx context.Context, actor domain.Identity, unreadOnly bool, page, pageSize int) ([]domain.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	return u.notificationRepo.GetByUserID(ctx, actor.UserID, unreadOnly, pageSize, offset)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, actor domain.Identity, id string) error {
	n, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Notification not found")
	}
	if n.UserID != actor.UserID {
		return apperror.NotFound("Notification not found")
	}
	return u.notificationRepo.MarkRead(ctx, id, time.Now())
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, actor domain.Identity) error {
	return u.notificationRepo.MarkAllRead(ctx, actor.UserID, time.Now())
}

func (u *notificationUsecase) Delete(ctx context.Context, actor domain.Identity, id string) error {
	n, err := u.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Notification not found")
	}
	if n.UserID != actor.UserID {
		return apperror.NotFound("Notification not found")
	}
	return u.notificationRepo.Delete(ctx, id)
}
