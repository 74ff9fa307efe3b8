package reception

import (
	"fmt"
	"strings"

	"ybhotels/models"
)

// faqRule maps trigger keywords to a canned answer template. The table is
// ordered; the first rule with any keyword present wins.
type faqRule struct {
	keywords []string
	answer   func(info *models.HotelInfo) string
}

var faqRules = []faqRule{
	{
		keywords: []string{"available room", "vacancy", "free room"},
		answer: func(info *models.HotelInfo) string {
			return fmt.Sprintf("Welcome to %s! I can check room availability for you. Which dates were you thinking of?", info.Name)
		},
	},
	{
		keywords: []string{"my booking", "my bookings", "my reservation"},
		answer: func(info *models.HotelInfo) string {
			return "I can look up your bookings once you're signed in. Could you share the email address on your reservation?"
		},
	},
	{
		keywords: []string{"cancel"},
		answer: func(info *models.HotelInfo) string {
			return "I can help with cancellations. Could you give me your booking reference, or the email address the reservation is under?"
		},
	},
	{
		keywords: []string{"book", "reservation", "reserve"},
		answer: func(info *models.HotelInfo) string {
			return "I'd be happy to help you book a room. Just tell me which room you'd like and your check-in and check-out dates."
		},
	},
	{
		keywords: []string{"check in", "check-in", "check out", "check-out", "arrival", "departure"},
		answer: func(info *models.HotelInfo) string {
			in, out := info.CheckInTime, info.CheckOutTime
			if in == "" {
				in = "2:00 PM"
			}
			if out == "" {
				out = "12:00 PM"
			}
			return fmt.Sprintf("Our standard check-in time is %s and check-out time is %s. If you need an early check-in or late check-out, let us know in advance and we'll do our best.", in, out)
		},
	},
	{
		keywords: []string{"amenities", "facilities", "feature"},
		answer: func(info *models.HotelInfo) string {
			if len(info.Amenities) == 0 {
				return "We offer a full range of guest amenities. Is there something specific you're looking for?"
			}
			return fmt.Sprintf("We're proud to offer %s. All amenities are available to guests at no extra charge.", strings.Join(info.Amenities, ", "))
		},
	},
	{
		keywords: []string{"location", "address", "direction"},
		answer: func(info *models.HotelInfo) string {
			if info.Address == "" {
				return "You can find our address and directions at the front desk, or I can connect you with our concierge."
			}
			return fmt.Sprintf("%s is located at %s. Would you like directions or transport recommendations?", info.Name, info.Address)
		},
	},
	{
		keywords: []string{"wifi", "internet"},
		answer: func(info *models.HotelInfo) string {
			return "We offer complimentary high-speed WiFi throughout the hotel. The network name and password are provided at check-in."
		},
	},
	{
		keywords: []string{"restaurant", "food", "breakfast", "dinner"},
		answer: func(info *models.HotelInfo) string {
			return "Our restaurant serves breakfast from 6:30 AM to 10:30 AM, lunch from 12:00 PM to 2:30 PM, and dinner from 6:30 PM to 10:30 PM. Room service is available around the clock."
		},
	},
}

// FallbackReply answers a query from the canned FAQ table. It is the
// degraded mode used when the language-model call fails, so it always
// returns something.
func FallbackReply(query string, info *models.HotelInfo) string {
	if info == nil {
		info = &models.HotelInfo{Name: "our hotel"}
	}
	q := strings.ToLower(query)
	for _, rule := range faqRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.answer(info)
			}
		}
	}
	return fmt.Sprintf("Welcome to %s! I'm your receptionist, here to help with rooms, bookings, dining, and anything else about your stay. How can I help today?", info.Name)
}
