package postgres

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message, type, related_id, is_read, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		n.UserID, n.Title, n.Message, n.Type, n.RelatedID, n.IsRead, n.CreatedAt,
	).Scan(&n.ID)
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT id, user_id, title, message, type, related_id, is_read, read_at, created_at
              FROM notifications WHERE id = $1`
	var n domain.Notification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.RelatedID,
		&n.IsRead, &n.ReadAt, &n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) GetByUserID(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, int64, error) {
	where := `WHERE user_id = $1`
	if unreadOnly {
		where += ` AND is_read = FALSE`
	}

	query := `SELECT id, user_id, title, message, type, related_id, is_read, read_at, created_at
              FROM notifications ` + where + ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.RelatedID,
			&n.IsRead, &n.ReadAt, &n.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications `+where, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id string, readAt time.Time) error {
	query := `UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, readAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID string, readAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE user_id = $1 AND is_read = FALSE`,
		userID, readAt)
	return err
}

func (r *notificationRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
