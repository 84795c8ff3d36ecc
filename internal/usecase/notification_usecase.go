package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/logger"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) Send(ctx context.Context, userID int64, message string) error {
	n := &domain.Notification{UserID: userID, Message: message}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		return err
	}
	logger.Log.Info("Notification sent", "user_id", userID)
	return nil
}

func (u *notificationUsecase) ListUnread(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return u.notificationRepo.GetUnread(ctx, userID)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, id int64) error {
	return u.notificationRepo.MarkRead(ctx, id)
}
