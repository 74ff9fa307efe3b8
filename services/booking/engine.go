package booking

import (
	"fmt"
	"time"

	"ybhotels/models"
	"ybhotels/utils"
)

// Stay is a validated date range with its night count precomputed.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
}

// ValidateStay parses and checks a requested date range. Check-in must be
// today or later and strictly before check-out. Dates are ISO YYYY-MM-DD.
func ValidateStay(checkIn, checkOut string) (*Stay, error) {
	in, err := utils.ParseDate(checkIn)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("I couldn't understand the check-in date %q. Please give it as YYYY-MM-DD.", checkIn))
	}
	out, err := utils.ParseDate(checkOut)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("I couldn't understand the check-out date %q. Please give it as YYYY-MM-DD.", checkOut))
	}
	if !in.Before(out) {
		return nil, NewValidationError("The check-out date must be after the check-in date.")
	}
	if in.Before(utils.Today()) {
		return nil, NewValidationError("The check-in date can't be in the past.")
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return &Stay{CheckIn: in, CheckOut: out, Nights: nights}, nil
}

// ValidateGuests checks the party size against the room's capacity.
func ValidateGuests(room *models.Room, guestCount int) error {
	if guestCount < 1 {
		return NewValidationError("The number of guests must be at least 1.")
	}
	if guestCount > room.Capacity {
		return NewValidationError(fmt.Sprintf("The %s room sleeps up to %d guest%s, so it won't fit %d.",
			room.Name, room.Capacity, utils.Plural(room.Capacity), guestCount))
	}
	return nil
}

// TotalPrice computes the cost of a stay. The first guest pays the full
// nightly rate; each additional guest adds half the rate per night.
func TotalPrice(nightlyRate float64, nights, guestCount int) float64 {
	base := float64(nights) * nightlyRate
	extra := float64(nights) * nightlyRate * 0.5 * float64(guestCount-1)
	return base + extra
}

// Overlaps reports whether two half-open ISO date ranges intersect. A stay
// ending the day another begins does not overlap. Lexicographic comparison
// is safe because the dates are zero-padded YYYY-MM-DD.
func Overlaps(aIn, aOut, bIn, bOut string) bool {
	return aIn < bOut && aOut > bIn
}
