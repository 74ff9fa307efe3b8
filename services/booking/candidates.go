package booking

import (
	"context"

	"ybhotels/models"
)

// Candidate selection backs utterances that name an intent but no booking
// reference ("cancel my booking"). Each intent has its own notion of the
// caller's most plausible booking.

// CancellationCandidate picks the caller's most recent pending booking by
// check-in date.
func (s *Service) CancellationCandidate(ctx context.Context, userID string) (*models.Booking, error) {
	list, err := s.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	var best *models.Booking
	for i := range list {
		if list[i].Status != models.BookingStatusPending {
			continue
		}
		if best == nil || list[i].CheckInDate > best.CheckInDate {
			best = &list[i]
		}
	}
	if best == nil {
		return nil, NewValidationError("You don't have a pending booking to cancel.")
	}
	return best, nil
}

// CheckInCandidate picks the caller's confirmed booking with the earliest
// check-in date, the one a guest at the desk most likely means.
func (s *Service) CheckInCandidate(ctx context.Context, userID string) (*models.Booking, error) {
	list, err := s.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	var best *models.Booking
	for i := range list {
		if list[i].Status != models.BookingStatusConfirmed {
			continue
		}
		if best == nil || list[i].CheckInDate < best.CheckInDate {
			best = &list[i]
		}
	}
	if best == nil {
		return nil, NewValidationError("I couldn't find a confirmed booking ready for check-in.")
	}
	return best, nil
}

// CheckOutCandidate picks any checked-in booking belonging to the caller.
func (s *Service) CheckOutCandidate(ctx context.Context, userID string) (*models.Booking, error) {
	list, err := s.GetUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Status == models.BookingStatusCheckedIn {
			return &list[i], nil
		}
	}
	return nil, NewValidationError("I couldn't find a checked-in stay to check out.")
}
