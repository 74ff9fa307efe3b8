package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "ybhotels/database/repository/booking"
	complaintRepo "ybhotels/database/repository/complaint"
	orderRepo "ybhotels/database/repository/order"
	roomRepo "ybhotels/database/repository/room"
	"ybhotels/models"
	"ybhotels/utils"

	"go.uber.org/zap"
)

// Service is the hotel-operations core: stay validation and pricing,
// conflict-free booking creation, the booking/room lifecycle, food orders
// and complaints. Handlers and the reception resolver both call it; it never
// renders transport-level responses itself.
type Service struct {
	Rooms      roomRepo.RoomRepository
	Bookings   bookingRepo.BookingRepository
	Orders     orderRepo.OrderRepository
	Complaints complaintRepo.ComplaintRepository
	Machine    *StateMachine
}

func NewService(rooms roomRepo.RoomRepository, bookings bookingRepo.BookingRepository,
	orders orderRepo.OrderRepository, complaints complaintRepo.ComplaintRepository,
	machine *StateMachine) *Service {
	return &Service{
		Rooms:      rooms,
		Bookings:   bookings,
		Orders:     orders,
		Complaints: complaints,
		Machine:    machine,
	}
}

// BookRequest carries everything needed to create a booking.
type BookRequest struct {
	RoomID          string
	UserID          string
	GuestName       string
	GuestEmail      string
	CheckInDate     string
	CheckOutDate    string
	GuestCount      int
	SpecialRequests string
}

// BookRoom validates the requested stay, prices it, and inserts the booking
// atomically against the conflict invariant. The returned booking is in
// status pending.
func (s *Service) BookRoom(ctx context.Context, req BookRequest) (*models.Booking, error) {
	if req.GuestCount == 0 {
		req.GuestCount = 1
	}
	stay, err := ValidateStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	room, err := s.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, NewValidationError("I couldn't find that room. Could you tell me which room you'd like?")
	}
	if room.Status == models.RoomStatusMaintenance {
		return nil, NewConflictError(fmt.Sprintf("The %s is under maintenance right now and can't be booked.", room.Name))
	}
	if err := ValidateGuests(room, req.GuestCount); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		RoomID:          room.ID,
		RoomName:        room.Name,
		UserID:          req.UserID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		GuestCount:      req.GuestCount,
		TotalPrice:      TotalPrice(room.PricePerNight, stay.Nights, req.GuestCount),
		Status:          models.BookingStatusPending,
		SpecialRequests: req.SpecialRequests,
		PaymentStatus:   "pending",
	}
	conflict, err := s.Bookings.CreateExclusive(ctx, booking)
	if err != nil {
		zap.L().Error("booking create failed", zap.String("roomId", req.RoomID), zap.Error(err))
		return nil, NewStoreError("I couldn't save the booking right now. Please try again in a moment.")
	}
	if conflict != nil {
		return nil, NewConflictError(fmt.Sprintf("The %s is already booked from %s to %s. Would you like different dates or another room?",
			room.Name, utils.FormatDateForSpeech(conflict.CheckInDate), utils.FormatDateForSpeech(conflict.CheckOutDate)))
	}
	zap.L().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("roomId", room.ID),
		zap.Float64("totalPrice", booking.TotalPrice))
	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed. Admin operation.
func (s *Service) ConfirmBooking(ctx context.Context, bookingID string) error {
	return s.Machine.Transition(ctx, bookingID, models.BookingStatusConfirmed, nil)
}

// CancelBooking cancels a booking. Guests may only cancel their own pending
// bookings before the check-in date; admins may cancel any non-terminal
// booking. Cancelling an already-cancelled booking returns a friendly no-op
// message rather than an error.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID string, admin bool) (string, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return "", NewValidationError("I couldn't find a booking with that reference.")
	}
	if b.Status == models.BookingStatusCancelled {
		return fmt.Sprintf("That booking for the %s was already cancelled, so there's nothing more to do.", b.RoomName), nil
	}
	if !admin {
		if b.UserID != actorID {
			return "", NewPermissionError("That booking belongs to another guest, so I can't cancel it for you.")
		}
		if b.Status != models.BookingStatusPending {
			return "", NewStateError(fmt.Sprintf("Your booking is already %s, so it can't be cancelled here. Please speak to the front desk.", b.Status))
		}
		in, perr := utils.ParseDate(b.CheckInDate)
		if perr == nil && utils.Today().After(in) {
			return "", NewStateError("The check-in date for that booking has already passed. Please contact the front desk to sort this out.")
		}
	}
	if err := s.Machine.Transition(ctx, bookingID, models.BookingStatusCancelled, nil); err != nil {
		return "", err
	}
	return fmt.Sprintf("Your booking for the %s starting %s is cancelled.",
		b.RoomName, utils.FormatDateForSpeech(b.CheckInDate)), nil
}

// CheckIn checks a guest in. The booking must belong to the actor (unless
// admin), be confirmed, and its check-in date must have arrived.
func (s *Service) CheckIn(ctx context.Context, bookingID, actorID string, admin bool) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewValidationError("I couldn't find a booking with that reference.")
	}
	if !admin && b.UserID != actorID {
		return nil, NewPermissionError("That booking belongs to another guest, so I can't check you in with it.")
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, NewStateError(fmt.Sprintf("That booking is %s; only confirmed bookings can check in.", b.Status))
	}
	in, perr := utils.ParseDate(b.CheckInDate)
	if perr == nil && utils.Today().Before(in) {
		return nil, NewStateError(fmt.Sprintf("Your stay starts on %s, so check-in isn't open yet.",
			utils.FormatDateForSpeech(b.CheckInDate)))
	}
	if err := s.Machine.Transition(ctx, bookingID, models.BookingStatusCheckedIn, nil); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCheckedIn
	b.CheckedInAt = time.Now().UTC()
	return b, nil
}

// CheckOut completes a checked-in booking and frees the room. Only the
// booking's own guest, or an admin, may check it out.
func (s *Service) CheckOut(ctx context.Context, bookingID, actorID string, admin bool) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewValidationError("I couldn't find a booking with that reference.")
	}
	if !admin && b.UserID != actorID {
		return nil, NewPermissionError("That booking belongs to another guest, so I can't check it out for you.")
	}
	if b.Status != models.BookingStatusCheckedIn {
		return nil, NewStateError(fmt.Sprintf("That booking is %s; only checked-in bookings can check out.", b.Status))
	}
	if err := s.Machine.Transition(ctx, bookingID, models.BookingStatusCompleted, nil); err != nil {
		return nil, err
	}
	b.Status = models.BookingStatusCompleted
	b.CheckedOutAt = time.Now().UTC()
	return b, nil
}

// UpgradeRoom moves a pending or confirmed booking to a different room,
// keeping the dates and re-pricing the stay at the new room's rate. Only the
// booking's own guest, or an admin, may move it.
func (s *Service) UpgradeRoom(ctx context.Context, bookingID, newRoomID, actorID string, admin bool) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, NewValidationError("I couldn't find a booking with that reference.")
	}
	if !admin && b.UserID != actorID {
		return nil, NewPermissionError("That booking belongs to another guest, so I can't move it to a different room.")
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, NewStateError(fmt.Sprintf("That booking is %s; only upcoming bookings can change rooms.", b.Status))
	}
	if b.RoomID == newRoomID {
		return nil, NewValidationError("That booking is already for this room.")
	}
	room, err := s.Rooms.GetByID(ctx, newRoomID)
	if err != nil {
		return nil, NewValidationError("I couldn't find the room you'd like to move to.")
	}
	if room.Status == models.RoomStatusMaintenance {
		return nil, NewConflictError(fmt.Sprintf("The %s is under maintenance right now and can't be booked.", room.Name))
	}
	if err := ValidateGuests(room, b.GuestCount); err != nil {
		return nil, err
	}
	existing, err := s.Bookings.GetActiveByRoomID(ctx, newRoomID)
	if err != nil {
		return nil, NewStoreError("I couldn't check the new room's availability. Please try again.")
	}
	for i := range existing {
		if Overlaps(b.CheckInDate, b.CheckOutDate, existing[i].CheckInDate, existing[i].CheckOutDate) {
			return nil, NewConflictError(fmt.Sprintf("The %s is already booked from %s to %s for those dates.",
				room.Name, utils.FormatDateForSpeech(existing[i].CheckInDate), utils.FormatDateForSpeech(existing[i].CheckOutDate)))
		}
	}

	in, _ := utils.ParseDate(b.CheckInDate)
	out, _ := utils.ParseDate(b.CheckOutDate)
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	newPrice := TotalPrice(room.PricePerNight, nights, b.GuestCount)
	fields := map[string]interface{}{
		"roomId":     room.ID,
		"roomName":   room.Name,
		"totalPrice": newPrice,
	}
	if err := s.Bookings.Update(ctx, bookingID, fields); err != nil {
		zap.L().Error("room upgrade failed", zap.String("bookingId", bookingID), zap.Error(err))
		return nil, NewStoreError("I couldn't move your booking right now. Please try again.")
	}
	b.RoomID = room.ID
	b.RoomName = room.Name
	b.TotalPrice = newPrice
	zap.L().Info("booking moved to new room",
		zap.String("bookingId", bookingID),
		zap.String("roomId", room.ID))
	return b, nil
}

// GetBookingDetails returns one booking. With an empty id it falls back to
// the caller's most recent booking. A named booking is only returned to its
// own guest unless the caller is an admin.
func (s *Service) GetBookingDetails(ctx context.Context, bookingID, userID string, admin bool) (*models.Booking, error) {
	if bookingID != "" {
		b, err := s.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			return nil, NewValidationError("I couldn't find a booking with that reference.")
		}
		if !admin && b.UserID != userID {
			return nil, NewPermissionError("That booking belongs to another guest, so I can't share its details.")
		}
		return b, nil
	}
	list, err := s.Bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, NewStoreError("I couldn't look up your bookings right now. Please try again.")
	}
	if len(list) == 0 {
		return nil, NewValidationError("You don't have any bookings with us yet.")
	}
	return &list[0], nil
}

// GetUserBookings lists a guest's bookings, newest first.
func (s *Service) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	list, err := s.Bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, NewStoreError("I couldn't look up your bookings right now. Please try again.")
	}
	return list, nil
}
