package notification

import (
	"context"
	"fmt"

	notificationRepo "ybhotels/database/repository/notification"
	"ybhotels/models"
	"ybhotels/utils"

	"go.uber.org/zap"
)

// NotificationService records notifications addressed to users. Delivery to
// devices is an external concern; the engine only persists the records.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID, title, message string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// NotifyUser persists a booking notification record for the user.
func (s *DefaultNotificationService) NotifyUser(ctx context.Context, userID, title, message string) error {
	if userID == "" {
		return fmt.Errorf("NotifyUser: missing user id")
	}
	_, err := s.Repo.Create(ctx, models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    "booking",
	})
	if err != nil {
		return fmt.Errorf("NotifyUser: failed to store notification for user %s: %w", userID, err)
	}
	utils.GetLogger().Debug("Notification recorded",
		zap.String("userId", userID),
		zap.String("title", title),
	)
	return nil
}
