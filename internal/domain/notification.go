package domain

import (
	"context"
	"time"
)

// Notification is an append-only user-directed message. The only
// mutation ever applied is flipping the read flag to true.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	GetUnread(ctx context.Context, userID int64) ([]Notification, error)
	// MarkRead is idempotent: already-read or missing ids affect zero
	// rows and are not an error.
	MarkRead(ctx context.Context, id int64) error
}

type NotificationUsecase interface {
	Send(ctx context.Context, userID int64, message string) error
	ListUnread(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id int64) error
}
