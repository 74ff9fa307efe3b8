package orderRepo

import (
	"context"
	"time"

	"ybhotels/database"
	"ybhotels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository defines persistence operations for food orders.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	return &mongoOrderRepo{coll: database.DB().Collection("orders")}
}

// Create inserts a new order and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = "pending"
	}
	order.OrderedAt = time.Now()
	order.UpdatedAt = order.OrderedAt

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetByID returns an order by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByUserID returns a user's orders, most recent first.
func (r *mongoOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAll returns every order, most recent first.
func (r *mongoOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
