package reception

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"ybhotels/models"
	"ybhotels/services/booking"
	"ybhotels/utils"

	"go.uber.org/zap"
)

// Match is the outcome of a fast-path hit: either a fully-parameterized
// function call, or a clarification question when a required parameter could
// not be resolved. Clarification matches perform no mutation.
type Match struct {
	Call          *models.FunctionCall
	Clarification string
}

// FastPath resolves common utterances with deterministic substring matching,
// skipping the language model entirely. Matchers run in a fixed order and
// the first hit wins.
type FastPath struct {
	Ops *booking.Service
}

func NewFastPath(ops *booking.Service) *FastPath {
	return &FastPath{Ops: ops}
}

var (
	dateRe      = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	guestsRe    = regexp.MustCompile(`(?i)(\d+)\s+guests?`)
	bookingIDRe = regexp.MustCompile(`(?i)\bbooking\s+(?:id\s+)?([a-z0-9-]+)|\b(?:id|number)\s+([a-z0-9-]+)`)
)

var foodKeywords = []string{
	"pizza", "burger", "sandwich", "salad", "pasta",
	"breakfast", "lunch", "dinner", "meal",
}

// Resolve runs the matcher list against the utterance. ok is false when no
// matcher fires or the caller is unidentified, in which case the resolver
// falls through to the language model.
func (f *FastPath) Resolve(ctx context.Context, transcript, userID string) (*Match, bool) {
	lower := strings.ToLower(transcript)

	// Every fast-path intent acts on the caller's own records.
	if userID == "" {
		return nil, false
	}

	if containsAny(lower, "my bookings", "my reservations") {
		return &Match{Call: &models.FunctionCall{
			Name:       "getUserBookings",
			Parameters: map[string]interface{}{},
		}}, true
	}

	if containsAny(lower, "book a room", "reserve a room", "i need a room", "get me a room") {
		return f.matchBookRoom(ctx, transcript, lower)
	}

	if containsAny(lower, "cancel booking", "cancel my booking", "cancel reservation", "cancel my reservation") {
		return f.matchCancel(ctx, transcript, userID)
	}

	if containsAny(lower, "order food", "room service", "i'm hungry", "food delivery") {
		return f.matchOrderFood(lower)
	}

	if containsAny(lower, "check in", "checking in", "check out", "checking out") {
		return f.matchCheckInOut(ctx, transcript, lower, userID)
	}

	return nil, false
}

func (f *FastPath) matchBookRoom(ctx context.Context, transcript, lower string) (*Match, bool) {
	var roomID string
	rooms, err := f.Ops.Rooms.GetAll(ctx)
	if err != nil {
		zap.L().Error("fast path room lookup failed", zap.Error(err))
		return nil, false
	}
	for i := range rooms {
		if strings.Contains(lower, strings.ToLower(rooms[i].Name)) {
			roomID = rooms[i].ID
			break
		}
	}
	if roomID == "" {
		for i := range rooms {
			if rooms[i].Status == models.RoomStatusAvailable {
				roomID = rooms[i].ID
				break
			}
		}
	}
	if roomID == "" {
		return &Match{Clarification: "I'd love to help you book, but I still need to know which room you'd like. Could you tell me the room?"}, true
	}

	checkIn, checkOut := extractDates(transcript)
	guests := 1
	if m := guestsRe.FindStringSubmatch(transcript); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			guests = n
		}
	}

	return &Match{Call: &models.FunctionCall{
		Name: "bookRoom",
		Parameters: map[string]interface{}{
			"roomId":       roomID,
			"checkInDate":  checkIn,
			"checkOutDate": checkOut,
			"guestCount":   guests,
		},
	}}, true
}

func (f *FastPath) matchCancel(ctx context.Context, transcript, userID string) (*Match, bool) {
	bookingID := extractBookingID(transcript)
	if bookingID == "" {
		candidate, err := f.Ops.CancellationCandidate(ctx, userID)
		if err != nil {
			return &Match{Clarification: "I couldn't find a booking to cancel. Could you give me the booking reference?"}, true
		}
		bookingID = candidate.ID
	}
	return &Match{Call: &models.FunctionCall{
		Name:       "cancelBooking",
		Parameters: map[string]interface{}{"bookingId": bookingID},
	}}, true
}

func (f *FastPath) matchOrderFood(lower string) (*Match, bool) {
	var items []string
	for _, kw := range foodKeywords {
		if strings.Contains(lower, kw) {
			items = append(items, kw)
		}
	}
	if len(items) == 0 {
		items = []string{"room service meal"}
	}
	return &Match{Call: &models.FunctionCall{
		Name:       "orderFood",
		Parameters: map[string]interface{}{"items": toInterfaceSlice(items)},
	}}, true
}

func (f *FastPath) matchCheckInOut(ctx context.Context, transcript, lower, userID string) (*Match, bool) {
	action := "check-out"
	if strings.Contains(lower, "check in") || strings.Contains(lower, "checking in") {
		action = "check-in"
	}

	bookingID := extractBookingID(transcript)
	if bookingID == "" {
		var candidate *models.Booking
		var err error
		if action == "check-in" {
			candidate, err = f.Ops.CheckInCandidate(ctx, userID)
		} else {
			candidate, err = f.Ops.CheckOutCandidate(ctx, userID)
		}
		if err != nil {
			return &Match{Clarification: "I couldn't find a booking for that. Could you give me the booking reference?"}, true
		}
		bookingID = candidate.ID
	}
	return &Match{Call: &models.FunctionCall{
		Name: "processCheckInOut",
		Parameters: map[string]interface{}{
			"bookingId": bookingID,
			"action":    action,
		},
	}}, true
}

// extractDates pulls the first two ISO dates from the utterance, defaulting
// to a two-night stay starting tomorrow.
func extractDates(transcript string) (string, string) {
	dates := dateRe.FindAllString(transcript, -1)
	if len(dates) >= 2 {
		return dates[0], dates[1]
	}
	tomorrow := utils.Today().AddDate(0, 0, 1)
	return tomorrow.Format(utils.DateLayout), tomorrow.AddDate(0, 0, 2).Format(utils.DateLayout)
}

// extractBookingID finds a reference following "booking", "id", or "number".
func extractBookingID(transcript string) string {
	m := bookingIDRe.FindStringSubmatch(transcript)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func toInterfaceSlice(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
