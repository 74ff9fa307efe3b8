package models

import "time"

// User represents a registered guest or admin.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Role        string    `bson:"role" json:"role"` // "user" or "admin"
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
