// Package mongostore implements the store backend over a MongoDB collection
// while keeping the same whole-collection load/overwrite contract as the
// file backend.
package mongostore

import (
	"context"
	"fmt"

	"innkeep/pkg/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	collection *mongo.Collection
}

func New(db *mongo.Database, collectionName string) *Store {
	return &Store{
		collection: db.Collection(collectionName),
	}
}

func (s *Store) Load(ctx context.Context) ([]store.Record, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", s.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	var documents []bson.M
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.collection.Name(), err)
	}

	records := make([]store.Record, 0, len(documents))
	for _, doc := range documents {
		record := store.Record(doc)
		// The Mongo object id is storage-internal; entity identity lives in
		// the record's own id field.
		delete(record, "_id")
		records = append(records, record)
	}
	return records, nil
}

// Save replaces the entire collection. Deleting and reinserting mirrors the
// file backend's full-overwrite semantics.
func (s *Store) Save(ctx context.Context, records []store.Record) error {
	if _, err := s.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", s.collection.Name(), err)
	}

	if len(records) == 0 {
		return nil
	}

	documents := make([]any, 0, len(records))
	for _, record := range records {
		documents = append(documents, record)
	}
	if _, err := s.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.collection.Name(), err)
	}
	return nil
}
