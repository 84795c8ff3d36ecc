package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (user_id, message, is_read, created_at)
	          VALUES ($1, $2, FALSE, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, n.UserID, n.Message).Scan(&n.ID, &n.CreatedAt)
}

func (r *notificationRepo) GetUnread(ctx context.Context, userID int64) ([]domain.Notification, error) {
	query := `SELECT id, user_id, message, is_read, created_at
	          FROM notifications WHERE user_id = $1 AND is_read = FALSE
	          ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead flips the read flag. Zero rows affected (already read or
// unknown id) is deliberately a success.
func (r *notificationRepo) MarkRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND is_read = FALSE`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
