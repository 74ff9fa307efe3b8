package reception

import (
	"context"
	"fmt"
	"strings"

	"ybhotels/models"
	"ybhotels/services/booking"
	"ybhotels/utils"

	"go.uber.org/zap"
)

// Outcome is the result of dispatching one function call: the sentence to
// speak and a structured record of what the operation returned.
type Outcome struct {
	Text     string
	Response map[string]interface{}
}

// Dispatch validates a function call and executes it against the hotel
// operations service. Unknown function names are logged and skipped, with
// the model's own text (if any) surfaced instead. For read operations the
// listing is appended to the reply; for writes the operation's confirmation
// wins over the model's text.
func (r *Resolver) Dispatch(ctx context.Context, call *models.FunctionCall, caller *models.User, modelText string) Outcome {
	if !KnownFunction(call.Name) {
		zap.L().Warn("unknown function call ignored", zap.String("name", call.Name))
		text := modelText
		if text == "" {
			text = CannedApology
		}
		return Outcome{Text: text}
	}

	userID := ""
	if caller != nil {
		userID = caller.ID
	}

	switch call.Name {
	case "bookRoom":
		return r.dispatchBookRoom(ctx, call, caller)
	case "upgradeRoom":
		return r.dispatchUpgradeRoom(ctx, call, userID)
	case "getRoomAvailability":
		return r.dispatchAvailability(ctx, call, modelText)
	case "submitComplaint":
		return r.dispatchComplaint(ctx, call, userID)
	case "getBookingDetails":
		return r.dispatchBookingDetails(ctx, call, userID, modelText)
	case "cancelBooking":
		return r.dispatchCancel(ctx, call, userID)
	case "orderFood":
		return r.dispatchOrderFood(ctx, call, userID)
	case "processCheckInOut":
		return r.dispatchCheckInOut(ctx, call, userID)
	case "getUserBookings":
		return r.dispatchUserBookings(ctx, userID, modelText)
	}
	return Outcome{Text: modelText}
}

func failure(err error) Outcome {
	return Outcome{
		Text:     booking.UserMessage(err),
		Response: map[string]interface{}{"success": false, "error": booking.UserMessage(err)},
	}
}

func (r *Resolver) dispatchBookRoom(ctx context.Context, call *models.FunctionCall, caller *models.User) Outcome {
	req := booking.BookRequest{}
	req.RoomID, _ = call.String("roomId")
	req.CheckInDate, _ = call.String("checkInDate")
	req.CheckOutDate, _ = call.String("checkOutDate")
	req.GuestName, _ = call.String("guestName")
	req.GuestEmail, _ = call.String("guestEmail")
	req.SpecialRequests, _ = call.String("specialRequests")
	req.GuestCount, _ = call.Int("guestCount")
	if caller != nil {
		req.UserID = caller.ID
		if req.GuestName == "" {
			req.GuestName = caller.Name
		}
		if req.GuestEmail == "" {
			req.GuestEmail = caller.Email
		}
	}

	b, err := r.Ops.BookRoom(ctx, req)
	if err != nil {
		return failure(err)
	}
	text := fmt.Sprintf("Wonderful! I've booked the %s for you from %s to %s. The total for your stay is %.2f, and your booking reference is %s.",
		b.RoomName, utils.FormatDateForSpeech(b.CheckInDate), utils.FormatDateForSpeech(b.CheckOutDate), b.TotalPrice, b.ID)
	return Outcome{Text: text, Response: map[string]interface{}{"success": true, "booking": b}}
}

func (r *Resolver) dispatchUpgradeRoom(ctx context.Context, call *models.FunctionCall, userID string) Outcome {
	bookingID, _ := call.String("bookingId")
	newRoomID, _ := call.String("newRoomId")
	b, err := r.Ops.UpgradeRoom(ctx, bookingID, newRoomID, userID, false)
	if err != nil {
		return failure(err)
	}
	text := fmt.Sprintf("All done! Your booking is now for the %s, and the updated total is %.2f.", b.RoomName, b.TotalPrice)
	return Outcome{Text: text, Response: map[string]interface{}{"success": true, "booking": b}}
}

func (r *Resolver) dispatchAvailability(ctx context.Context, call *models.FunctionCall, modelText string) Outcome {
	roomType, _ := call.String("roomType")
	checkIn, _ := call.String("checkInDate")
	checkOut, _ := call.String("checkOutDate")
	rooms, err := r.Ops.GetRoomAvailability(ctx, roomType, checkIn, checkOut)
	if err != nil {
		return failure(err)
	}

	var text string
	if len(rooms) == 0 {
		text = "I'm sorry, we don't have any rooms matching that right now. Would different dates work?"
	} else {
		names := make([]string, len(rooms))
		for i := range rooms {
			names[i] = fmt.Sprintf("the %s at %.2f per night", rooms[i].Name, rooms[i].PricePerNight)
		}
		text = fmt.Sprintf("We have %d room%s available: %s.", len(rooms), utils.Plural(len(rooms)), booking.JoinNaturally(names))
	}
	if modelText != "" {
		text = modelText + " " + text
	}
	return Outcome{Text: text, Response: map[string]interface{}{"success": true, "rooms": rooms}}
}

func (r *Resolver) dispatchComplaint(ctx context.Context, call *models.FunctionCall, userID string) Outcome {
	subject, _ := call.String("subject")
	description, _ := call.String("description")
	category, _ := call.String("category")
	priority, _ := call.String("priority")
	msg, complaint, err := r.Ops.SubmitComplaint(ctx, userID, subject, description, category, priority)
	if err != nil {
		return failure(err)
	}
	return Outcome{Text: msg, Response: map[string]interface{}{"success": true, "complaint": complaint}}
}

func (r *Resolver) dispatchBookingDetails(ctx context.Context, call *models.FunctionCall, userID, modelText string) Outcome {
	bookingID, _ := call.String("bookingId")
	b, err := r.Ops.GetBookingDetails(ctx, bookingID, userID, false)
	if err != nil {
		return failure(err)
	}
	text := describeBooking(b)
	if modelText != "" {
		text = modelText + " " + text
	}
	return Outcome{Text: text, Response: map[string]interface{}{"success": true, "booking": b}}
}

func (r *Resolver) dispatchCancel(ctx context.Context, call *models.FunctionCall, userID string) Outcome {
	bookingID, _ := call.String("bookingId")
	msg, err := r.Ops.CancelBooking(ctx, bookingID, userID, false)
	if err != nil {
		return failure(err)
	}
	return Outcome{Text: msg, Response: map[string]interface{}{"success": true, "bookingId": bookingID}}
}

func (r *Resolver) dispatchOrderFood(ctx context.Context, call *models.FunctionCall, userID string) Outcome {
	items := call.Strings("items")
	msg, order, err := r.Ops.OrderFood(ctx, userID, items)
	if err != nil {
		return failure(err)
	}
	return Outcome{Text: msg, Response: map[string]interface{}{"success": true, "order": order}}
}

func (r *Resolver) dispatchCheckInOut(ctx context.Context, call *models.FunctionCall, userID string) Outcome {
	bookingID, _ := call.String("bookingId")
	action, _ := call.String("action")

	var b *models.Booking
	var err error
	switch strings.ToLower(action) {
	case "check-in", "checkin", "check in":
		b, err = r.Ops.CheckIn(ctx, bookingID, userID, false)
		if err == nil {
			return Outcome{
				Text:     fmt.Sprintf("Welcome! You're all checked in to the %s. Enjoy your stay.", b.RoomName),
				Response: map[string]interface{}{"success": true, "booking": b},
			}
		}
	case "check-out", "checkout", "check out":
		b, err = r.Ops.CheckOut(ctx, bookingID, userID, false)
		if err == nil {
			return Outcome{
				Text:     fmt.Sprintf("You're checked out of the %s. It was a pleasure having you; safe travels!", b.RoomName),
				Response: map[string]interface{}{"success": true, "booking": b},
			}
		}
	default:
		err = booking.NewValidationError("I wasn't sure whether you'd like to check in or check out. Which is it?")
	}
	return failure(err)
}

func (r *Resolver) dispatchUserBookings(ctx context.Context, userID, modelText string) Outcome {
	bookings, err := r.Ops.GetUserBookings(ctx, userID)
	if err != nil {
		return failure(err)
	}

	var text string
	if len(bookings) == 0 {
		text = "You don't have any bookings with us yet. Would you like me to find you a room?"
	} else {
		lines := make([]string, len(bookings))
		for i := range bookings {
			lines[i] = describeBooking(&bookings[i])
		}
		text = fmt.Sprintf("You have %d booking%s. %s", len(bookings), utils.Plural(len(bookings)), strings.Join(lines, " "))
	}
	if modelText != "" {
		text = modelText + " " + text
	}
	return Outcome{Text: text, Response: map[string]interface{}{"success": true, "bookings": bookings}}
}

func describeBooking(b *models.Booking) string {
	return fmt.Sprintf("The %s from %s to %s, currently %s, total %.2f, reference %s.",
		b.RoomName, utils.FormatDateForSpeech(b.CheckInDate), utils.FormatDateForSpeech(b.CheckOutDate),
		b.Status, b.TotalPrice, b.ID)
}
