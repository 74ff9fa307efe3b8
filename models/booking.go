package models

import "time"

// Booking status lifecycle: pending -> confirmed -> checked-in -> completed,
// with cancelled reachable from any non-terminal state.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCheckedIn = "checked-in"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ActiveBookingStatuses are the statuses that occupy a room's date range for
// conflict checking.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

// Booking represents a stay reservation for a room.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	RoomID          string    `bson:"roomId" json:"roomId"`
	RoomName        string    `bson:"roomName" json:"roomName"`
	UserID          string    `bson:"userId" json:"userId"`
	GuestName       string    `bson:"guestName,omitempty" json:"guestName,omitempty"`
	GuestEmail      string    `bson:"guestEmail,omitempty" json:"guestEmail,omitempty"`
	CheckInDate     string    `bson:"checkInDate" json:"checkInDate"`   // YYYY-MM-DD
	CheckOutDate    string    `bson:"checkOutDate" json:"checkOutDate"` // YYYY-MM-DD
	GuestCount      int       `bson:"guestCount" json:"guestCount"`
	TotalPrice      float64   `bson:"totalPrice" json:"totalPrice"`
	Status          string    `bson:"status" json:"status"`
	SpecialRequests string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	PaymentStatus   string    `bson:"paymentStatus" json:"paymentStatus"` // "pending" or "paid"
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
	CheckedInAt     time.Time `bson:"checkedInAt,omitempty" json:"checkedInAt,omitempty"`
	CheckedOutAt    time.Time `bson:"checkedOutAt,omitempty" json:"checkedOutAt,omitempty"`
}
