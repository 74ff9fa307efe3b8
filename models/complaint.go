package models

import "time"

// Complaint represents guest feedback requiring follow-up.
type Complaint struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	BookingID   string    `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Subject     string    `bson:"subject" json:"subject"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"` // e.g. "room", "service", "food"
	Priority    string    `bson:"priority" json:"priority"` // "low", "medium", "high"
	Status      string    `bson:"status" json:"status"`     // "open", "in-progress", "resolved"
	Response    string    `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
