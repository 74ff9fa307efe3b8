package receptionRepo

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

// ReceptionRepository persists the session documents the caller and the
// resolver use to exchange a request/response pair.
type ReceptionRepository interface {
	Create(ctx context.Context, msg models.ReceptionMessage) (string, error)
	GetByID(ctx context.Context, id string) (*models.ReceptionMessage, error)

	// MarkProcessed sets processed/processedAt plus the given response fields.
	// It is the resolver's single write against the document.
	MarkProcessed(ctx context.Context, id string, fields map[string]interface{}) error

	// GetSessionHistory returns up to limit processed turns for a session,
	// oldest first, for prompt context.
	GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]models.ReceptionMessage, error)

	// AwaitResult blocks until the document is marked processed or ctx is
	// done. The caller owns the timeout; a late resolver write after ctx
	// expiry is simply never observed.
	AwaitResult(ctx context.Context, id string) (*models.ReceptionMessage, error)
}

type mongoReceptionRepo struct {
	coll *mongo.Collection
}

// NewMongoReceptionRepo returns a ReceptionRepository backed by MongoDB.
func NewMongoReceptionRepo() ReceptionRepository {
	return &mongoReceptionRepo{coll: database.DB().Collection("reception")}
}

// Create inserts a new reception document and returns its ID.
func (r *mongoReceptionRepo) Create(ctx context.Context, msg models.ReceptionMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Role == "" {
		msg.Role = "user"
	}
	msg.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

// GetByID returns a reception document by its ID.
func (r *mongoReceptionRepo) GetByID(ctx context.Context, id string) (*models.ReceptionMessage, error) {
	var msg models.ReceptionMessage
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// MarkProcessed records the resolver's response on the document.
func (r *mongoReceptionRepo) MarkProcessed(ctx context.Context, id string, fields map[string]interface{}) error {
	set := bson.M{
		"processed":   true,
		"processedAt": time.Now(),
	}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("reception document not found")
	}
	return nil
}

// GetSessionHistory returns recent processed turns for a session, oldest first.
func (r *mongoReceptionRepo) GetSessionHistory(ctx context.Context, sessionID string, limit int) ([]models.ReceptionMessage, error) {
	if sessionID == "" {
		return nil, nil
	}
	filter := bson.M{"sessionId": sessionID, "processed": true}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var history []models.ReceptionMessage
	if err := cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	return history, nil
}
