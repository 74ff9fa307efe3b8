package bookingRepo

import (
	"context"

	"ybhotels/database"
	"ybhotels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// CreateExclusive inserts the booking only if no active booking on the
	// same room overlaps its date range. It returns the conflicting booking
	// when one exists, in which case nothing is written.
	CreateExclusive(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	GetActiveByRoomID(ctx context.Context, roomID string) ([]models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
