package retrieval

import (
	"context"

	"ybhotels/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionSource feeds a Retriever from one MongoDB collection, optionally
// narrowed by a filter (e.g. only the caller's bookings). candidateLimit
// bounds how many records are pulled per query.
const candidateLimit = 50

type collectionSource struct {
	name   string
	coll   *mongo.Collection
	filter bson.M
}

// NewCollectionSource returns a Source over the named collection. A nil
// filter scans the whole collection.
func NewCollectionSource(name string, filter bson.M) Source {
	if filter == nil {
		filter = bson.M{}
	}
	return &collectionSource{
		name:   name,
		coll:   database.DB().Collection(name),
		filter: filter,
	}
}

func (s *collectionSource) Name() string { return s.name }

func (s *collectionSource) Candidates(ctx context.Context) ([]Document, error) {
	opts := options.Find().SetLimit(candidateLimit)
	cursor, err := s.coll.Find(ctx, s.filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		doc := Document{Collection: s.name, Data: map[string]interface{}(raw)}
		if id, ok := raw["id"].(string); ok {
			doc.ID = id
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}

// staticSource serves fixed documents, used for the hotel profile and in
// tests.
type staticSource struct {
	name string
	docs []Document
}

// NewStaticSource returns a Source over a fixed document set.
func NewStaticSource(name string, docs []Document) Source {
	return &staticSource{name: name, docs: docs}
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Candidates(ctx context.Context) ([]Document, error) {
	return s.docs, nil
}
