package booking

import (
	"context"
	"fmt"
	"strings"

	"ybhotels/models"

	"go.uber.org/zap"
)

// OrderFood persists a room-service order and returns a spoken confirmation.
// Blank items are dropped before validation, so an order of empty strings is
// rejected the same as an empty list.
func (s *Service) OrderFood(ctx context.Context, userID string, items []string) (string, *models.Order, error) {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			cleaned = append(cleaned, item)
		}
	}
	if len(cleaned) == 0 {
		return "", nil, NewValidationError("I didn't catch what you'd like to order. Could you tell me the items?")
	}

	order := &models.Order{
		UserID: userID,
		Items:  cleaned,
		Status: "pending",
	}
	id, err := s.Orders.Create(ctx, *order)
	if err != nil {
		zap.L().Error("food order create failed", zap.String("userId", userID), zap.Error(err))
		return "", nil, NewStoreError("I couldn't place your order right now. Please try again in a moment.")
	}
	order.ID = id

	msg := fmt.Sprintf("I've placed your order for %s. It'll be with you shortly.", JoinNaturally(cleaned))
	return msg, order, nil
}

// JoinNaturally renders a list the way a person would say it:
// "tea", "tea and toast", "tea, toast, and eggs".
func JoinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
