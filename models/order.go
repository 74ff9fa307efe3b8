package models

import "time"

// Order represents a room-service food order.
type Order struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Items     []string  `bson:"items" json:"items"`
	Status    string    `bson:"status" json:"status"` // "pending" on creation
	OrderedAt time.Time `bson:"orderedAt" json:"orderedAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
