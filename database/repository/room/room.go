package roomRepo

import (
	"context"

	"ybhotels/database"
	"ybhotels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room models.Room) (string, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	GetAll(ctx context.Context) ([]models.Room, error)
	GetByStatus(ctx context.Context, status string) ([]models.Room, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	SetStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo returns a RoomRepository backed by MongoDB.
func NewMongoRoomRepo() RoomRepository {
	return &mongoRoomRepo{coll: database.DB().Collection("rooms")}
}
