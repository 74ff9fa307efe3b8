package booking

import (
	"context"
	"fmt"

	"ybhotels/models"

	"go.uber.org/zap"
)

// SubmitComplaint records guest feedback and returns a confirmation carrying
// the expected response time: 24 hours for high priority, 48 otherwise.
func (s *Service) SubmitComplaint(ctx context.Context, userID, subject, description, category, priority string) (string, *models.Complaint, error) {
	if subject == "" && description == "" {
		return "", nil, NewValidationError("Could you tell me a bit more about the issue so I can log it?")
	}
	if subject == "" {
		subject = description
	}
	if category == "" {
		category = "service"
	}
	switch priority {
	case "low", "medium", "high":
	default:
		priority = "medium"
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Subject:     subject,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      "open",
	}
	id, err := s.Complaints.Create(ctx, *complaint)
	if err != nil {
		zap.L().Error("complaint create failed", zap.String("userId", userID), zap.Error(err))
		return "", nil, NewStoreError("I couldn't log your complaint right now. Please try again in a moment.")
	}
	complaint.ID = id

	hours := 48
	if priority == "high" {
		hours = 24
	}
	msg := fmt.Sprintf("I'm sorry about that. I've logged your complaint about %q and our team will respond within %d hours.", subject, hours)
	return msg, complaint, nil
}
