package receptionRepo

import (
	"context"
	"fmt"

	"ybhotels/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AwaitResult waits for the resolver to mark the document processed, using a
// change stream scoped to the single document. A direct read runs after the
// stream opens so an update that landed in between is not missed.
func (r *mongoReceptionRepo) AwaitResult(ctx context.Context, id string) (*models.ReceptionMessage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"fullDocument.id":        id,
			"fullDocument.processed": true,
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	stream, err := r.coll.Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open change stream: %w", err)
	}
	defer stream.Close(ctx)

	// The document may already be processed by the time the stream is live.
	if msg, err := r.GetByID(ctx, id); err == nil && msg.Processed {
		return msg, nil
	}

	for stream.Next(ctx) {
		var event struct {
			FullDocument models.ReceptionMessage `bson:"fullDocument"`
		}
		if err := stream.Decode(&event); err != nil {
			return nil, fmt.Errorf("failed to decode change event: %w", err)
		}
		if event.FullDocument.Processed {
			return &event.FullDocument, nil
		}
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return nil, ctx.Err()
}
