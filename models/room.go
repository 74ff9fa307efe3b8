package models

import "time"

// Room type values.
const (
	RoomTypeStandard  = "standard"
	RoomTypeDeluxe    = "deluxe"
	RoomTypeSuite     = "suite"
	RoomTypeExecutive = "executive"
)

// Room status values. A room is "booked" while an active (checked-in)
// booking occupies it; the state machine is the only writer of this field.
const (
	RoomStatusAvailable   = "available"
	RoomStatusBooked      = "booked"
	RoomStatusMaintenance = "maintenance"
)

// Room represents a bookable hotel room.
type Room struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Type          string    `bson:"type" json:"type"`
	PricePerNight float64   `bson:"pricePerNight" json:"pricePerNight"`
	Capacity      int       `bson:"capacity" json:"capacity"`
	Amenities     []string  `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
