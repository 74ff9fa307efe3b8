package userRepo

import (
	"context"
	"time"

	"ybhotels/database"
	"ybhotels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{coll: database.DB().Collection("users")}
}

// Create inserts a new user and returns its ID.
func (r *mongoUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = "user"
	}
	user.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetByID returns a user by its ID.
func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user registered with the given email.
func (r *mongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
