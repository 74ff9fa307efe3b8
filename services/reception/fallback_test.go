package reception

import (
	"testing"

	"ybhotels/models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReply(t *testing.T) {
	info := &models.HotelInfo{
		Name:         "Grand Plaza",
		Address:      "12 Seafront Road",
		CheckInTime:  "3:00 PM",
		CheckOutTime: "11:00 AM",
		Amenities:    []string{"pool", "spa", "gym"},
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"availability", "Do you have any available rooms this weekend?", "check room availability"},
		{"booking", "I'd like to make a reservation", "happy to help you book"},
		{"my bookings", "can you find my booking?", "email address on your reservation"},
		{"cancellation", "I want to cancel my stay", "booking reference"},
		{"check-in times", "What time is check in?", "3:00 PM"},
		{"amenities", "What amenities do you have?", "pool, spa, gym"},
		{"location", "What's your address?", "12 Seafront Road"},
		{"wifi", "Is there wifi in the rooms?", "complimentary high-speed WiFi"},
		{"dining", "When does the restaurant open?", "breakfast from 6:30 AM"},
		{"unmatched", "Tell me a joke", "Welcome to Grand Plaza!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, FallbackReply(tc.query, info), tc.want)
		})
	}
}

func TestFallbackReplyDefaults(t *testing.T) {
	reply := FallbackReply("what time is check out?", &models.HotelInfo{Name: "Grand Plaza"})
	assert.Contains(t, reply, "2:00 PM")
	assert.Contains(t, reply, "12:00 PM")

	reply = FallbackReply("hello there", nil)
	assert.Contains(t, reply, "our hotel")
}

func TestFallbackReplyRuleOrder(t *testing.T) {
	// "available room" outranks the generic booking rule even though "book"
	// also appears in the query.
	reply := FallbackReply("is there an available room I can book?", &models.HotelInfo{Name: "Grand Plaza"})
	assert.Contains(t, reply, "Which dates were you thinking of?")
}
