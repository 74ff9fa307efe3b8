package complaintRepo

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

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint models.Complaint) (string, error)
	GetByID(ctx context.Context, id string) (*models.Complaint, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Complaint, error)
	GetAll(ctx context.Context) ([]models.Complaint, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

type mongoComplaintRepo struct {
	coll *mongo.Collection
}

// NewMongoComplaintRepo returns a ComplaintRepository backed by MongoDB.
func NewMongoComplaintRepo() ComplaintRepository {
	return &mongoComplaintRepo{coll: database.DB().Collection("complaints")}
}

// Create inserts a new complaint and returns its ID.
func (r *mongoComplaintRepo) Create(ctx context.Context, complaint models.Complaint) (string, error) {
	if complaint.ID == "" {
		complaint.ID = uuid.New().String()
	}
	if complaint.Status == "" {
		complaint.Status = "open"
	}
	if complaint.Priority == "" {
		complaint.Priority = "medium"
	}
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = complaint.CreatedAt

	if _, err := r.coll.InsertOne(ctx, complaint); err != nil {
		return "", err
	}
	return complaint.ID, nil
}

// GetByID returns a complaint by its ID.
func (r *mongoComplaintRepo) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetByUserID returns a user's complaints, most recent first.
func (r *mongoComplaintRepo) GetByUserID(ctx context.Context, userID string) ([]models.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetAll returns every complaint, most recent first.
func (r *mongoComplaintRepo) GetAll(ctx context.Context) ([]models.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	if err := cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

// Update applies a partial update to a complaint.
func (r *mongoComplaintRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("complaint not found")
	}
	return nil
}
