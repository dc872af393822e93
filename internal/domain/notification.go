package domain

import (
	"context"
	"time"
)

// Notification types
const (
	NotificationTypeJobAlert          = "job_alert"
	NotificationTypeApplicationStatus = "application_status"
	NotificationTypeJobPosted         = "job_posted"
	NotificationTypeMessage           = "message"
)

type Notification struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	RelatedID *string    `json:"related_id,omitempty"`
	IsRead    bool       `json:"is_read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	GetByUserID(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, id string, readAt time.Time) error
	MarkAllRead(ctx context.Context, userID string, readAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type NotificationUsecase interface {
	// Notify creates a notification and, when SMTP is configured, sends a
	// best-effort email. Used internally by other usecases.
	Notify(ctx context.Context, userID, title, message, notifType string, relatedID *string)
	ListMine(ctx context.Context, actor Identity, unreadOnly bool, page, pageSize int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, actor Identity, id string) error
	MarkAllRead(ctx context.Context, actor Identity) error
	Delete(ctx context.Context, actor Identity, id string) error
}
