package roomRepo

import (
	"context"
	"errors"
	"time"

	"ybhotels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new room and returns its ID.
func (r *mongoRoomRepo) Create(ctx context.Context, room models.Room) (string, error) {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return "", err
	}
	return room.ID, nil
}

// GetByID returns a room by its ID.
func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		return nil, err
	}
	return &room, nil
}

// GetAll returns every room in the inventory.
func (r *mongoRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetByStatus returns rooms with the given status.
func (r *mongoRoomRepo) GetByStatus(ctx context.Context, status string) ([]models.Room, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"status": status})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Update applies a partial update to a room.
func (r *mongoRoomRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("room not found")
	}
	return nil
}

// SetStatus updates only the room's status field.
func (r *mongoRoomRepo) SetStatus(ctx context.Context, id string, status string) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

// Delete removes a room by ID.
func (r *mongoRoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("room not found")
	}
	return nil
}
