package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"ybhotels/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateExclusive inserts the booking inside a Mongo session transaction so
// the overlap re-check and the insert commit atomically. Two near-simultaneous
// requests for the same room cannot both pass the conflict scan.
//
// Date ranges are half-open [checkIn, checkOut): a new check-in equal to an
// existing check-out is not a conflict. ISO dates compare correctly as strings.
func (r *mongoBookingRepo) CreateExclusive(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	ensureID(booking)
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var conflict *models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"roomId": booking.RoomID,
			"status": bson.M{"$in": models.ActiveBookingStatuses},
		}
		cursor, err := r.coll.Find(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict scan failed: %w", err)
		}
		var existing []models.Booking
		if err := cursor.All(sc, &existing); err != nil {
			return fmt.Errorf("conflict scan decode failed: %w", err)
		}

		for i := range existing {
			if booking.CheckInDate < existing[i].CheckOutDate && booking.CheckOutDate > existing[i].CheckInDate {
				conflict = &existing[i]
				return nil
			}
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		if conflict != nil {
			return sc.AbortTransaction(sc)
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	return conflict, nil
}
