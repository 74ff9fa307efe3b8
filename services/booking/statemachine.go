package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "ybhotels/database/repository/booking"
	roomRepo "ybhotels/database/repository/room"
	"ybhotels/models"
	"ybhotels/services/notification"
	"ybhotels/utils"

	"go.uber.org/zap"
)

// allowedTransitions maps each booking status to the statuses it may move to.
// Completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCheckedIn, models.BookingStatusCancelled},
	models.BookingStatusCheckedIn: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// StateMachine is the only component that writes booking status and room
// status. Every transition keeps the two in step: a checked-in booking marks
// its room booked, a terminal booking frees it.
type StateMachine struct {
	Bookings bookingRepo.BookingRepository
	Rooms    roomRepo.RoomRepository
	Notifier notification.NotificationService
}

func NewStateMachine(bookings bookingRepo.BookingRepository, rooms roomRepo.RoomRepository, notifier notification.NotificationService) *StateMachine {
	return &StateMachine{Bookings: bookings, Rooms: rooms, Notifier: notifier}
}

func transitionAllowed(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves a booking to the target status and applies the matching
// room status and guest notification. extra fields are merged into the same
// booking write.
func (m *StateMachine) Transition(ctx context.Context, bookingID, target string, extra map[string]interface{}) error {
	b, err := m.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return NewStoreError("I couldn't find that booking. Please check the booking reference.")
	}
	if b.Status == target {
		return NewStateError(fmt.Sprintf("This booking is already %s.", target))
	}
	if !transitionAllowed(b.Status, target) {
		return NewStateError(fmt.Sprintf("A %s booking can't be moved to %s.", b.Status, target))
	}

	fields := map[string]interface{}{"status": target}
	for k, v := range extra {
		fields[k] = v
	}
	switch target {
	case models.BookingStatusCheckedIn:
		fields["checkedInAt"] = time.Now().UTC()
	case models.BookingStatusCompleted:
		fields["checkedOutAt"] = time.Now().UTC()
	}
	if err := m.Bookings.Update(ctx, bookingID, fields); err != nil {
		zap.L().Error("booking status update failed", zap.String("bookingId", bookingID), zap.Error(err))
		return NewStoreError("I couldn't update the booking right now. Please try again.")
	}

	m.syncRoom(ctx, b.RoomID, target)
	m.notifyGuest(ctx, b, target)
	zap.L().Info("booking transitioned",
		zap.String("bookingId", bookingID),
		zap.String("from", b.Status),
		zap.String("to", target))
	return nil
}

// syncRoom applies the room status implied by the booking status. Room sync
// failures are logged, not surfaced: the booking write already committed.
func (m *StateMachine) syncRoom(ctx context.Context, roomID, bookingStatus string) {
	var roomStatus string
	switch bookingStatus {
	case models.BookingStatusCheckedIn:
		roomStatus = models.RoomStatusBooked
	case models.BookingStatusCompleted, models.BookingStatusCancelled:
		roomStatus = models.RoomStatusAvailable
	default:
		return
	}
	if err := m.Rooms.SetStatus(ctx, roomID, roomStatus); err != nil {
		zap.L().Error("room status sync failed",
			zap.String("roomId", roomID),
			zap.String("status", roomStatus),
			zap.Error(err))
	}
}

func (m *StateMachine) notifyGuest(ctx context.Context, b *models.Booking, target string) {
	var title, message string
	switch target {
	case models.BookingStatusConfirmed:
		title = "Booking confirmed"
		message = fmt.Sprintf("Your booking for the %s from %s to %s is confirmed.",
			b.RoomName, utils.FormatDateForSpeech(b.CheckInDate), utils.FormatDateForSpeech(b.CheckOutDate))
	case models.BookingStatusCheckedIn:
		title = "Checked in"
		message = fmt.Sprintf("Welcome! You're checked in to the %s. Enjoy your stay.", b.RoomName)
	case models.BookingStatusCompleted:
		title = "Checked out"
		message = fmt.Sprintf("You're checked out of the %s. We hope to see you again soon.", b.RoomName)
	case models.BookingStatusCancelled:
		title = "Booking cancelled"
		message = fmt.Sprintf("Your booking for the %s starting %s has been cancelled.",
			b.RoomName, utils.FormatDateForSpeech(b.CheckInDate))
	default:
		return
	}
	if err := m.Notifier.NotifyUser(ctx, b.UserID, title, message); err != nil {
		zap.L().Warn("guest notification failed", zap.String("userId", b.UserID), zap.Error(err))
	}
}
