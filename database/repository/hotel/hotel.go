package hotelRepo

import (
	"context"

	"ybhotels/config"
	"ybhotels/database"
	"ybhotels/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// HotelRepository reads the hotel profile document.
type HotelRepository interface {
	GetInfo(ctx context.Context) (*models.HotelInfo, error)
}

type mongoHotelRepo struct {
	coll *mongo.Collection
}

// NewMongoHotelRepo returns a HotelRepository backed by MongoDB.
func NewMongoHotelRepo() HotelRepository {
	return &mongoHotelRepo{coll: database.DB().Collection("hotel")}
}

// GetInfo returns the hotel profile, falling back to the configured hotel
// name when no profile document exists.
func (r *mongoHotelRepo) GetInfo(ctx context.Context) (*models.HotelInfo, error) {
	var info models.HotelInfo
	err := r.coll.FindOne(ctx, bson.M{}).Decode(&info)
	if err == mongo.ErrNoDocuments {
		return &models.HotelInfo{Name: config.AppConfig.HotelName}, nil
	}
	if err != nil {
		return nil, err
	}
	if info.Name == "" {
		info.Name = config.AppConfig.HotelName
	}
	return &info, nil
}
