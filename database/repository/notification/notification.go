package notificationRepo

import (
	"context"
	"errors"
	"time"

	"ybhotels/database"
	"ybhotels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (string, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{coll: database.DB().Collection("notifications")}
}

// Create inserts a new notification and returns its ID.
func (r *mongoNotificationRepo) Create(ctx context.Context, n models.Notification) (string, error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// GetByUserID returns a user's notifications, most recent first.
func (r *mongoNotificationRepo) GetByUserID(ctx context.Context, userID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a notification as read.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}
