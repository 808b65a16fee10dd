// File: database/repository/store.go
package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripmate/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection identifiers and their partition key fields. Collections are
// provisioned idempotently at startup.
const (
	UsersCollection         = "users"
	BookingsCollection      = "bookings"
	ConversationsCollection = "conversations"
)

var partitionKeyFields = map[string]string{
	UsersCollection:         "id",
	BookingsCollection:      "user_id",
	ConversationsCollection: "user_id",
}

// DocumentStore is a generic per-collection document access layer keyed by
// (collection, document id, partition key). No transactions, no optimistic
// concurrency, no retry.
type DocumentStore interface {
	CreateItem(ctx context.Context, collection string, item interface{}) error
	// GetItem decodes the matching document into out. The second return value
	// distinguishes genuine absence from a read failure.
	GetItem(ctx context.Context, collection, id, partitionKey string, out interface{}) (bool, error)
	UpdateItem(ctx context.Context, collection, id, partitionKey string, updates bson.M) error
	UpsertItem(ctx context.Context, collection, id, partitionKey string, item interface{}) error
	DeleteItem(ctx context.Context, collection, id, partitionKey string) error
	QueryItems(ctx context.Context, collection string, filter bson.M, out interface{}) error
}

// MongoDocumentStore implements DocumentStore on MongoDB.
type MongoDocumentStore struct {
	db *mongo.Database
}

// NewMongoDocumentStore creates the store and provisions the fixed collections.
func NewMongoDocumentStore() *MongoDocumentStore {
	store := &MongoDocumentStore{db: database.DB()}
	if err := store.ensureCollections(); err != nil {
		log.Printf("failed to provision collections: %v", err)
	}
	return store
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureCollections provisions the fixed collections and their indexes.
// Creation is idempotent; an already-existing collection is not an error.
func (s *MongoDocumentStore) ensureCollections() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	existing, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for name, pkField := range partitionKeyFields {
		if !present[name] {
			if err := s.db.CreateCollection(ctx, name); err != nil {
				return fmt.Errorf("failed to create collection %s: %w", name, err)
			}
		}
		keys := bson.D{{Key: pkField, Value: 1}}
		if pkField != "id" {
			keys = append(keys, bson.E{Key: "id", Value: 1})
		}
		model := mongo.IndexModel{Keys: keys, Options: options.Index().SetUnique(true)}
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", name, err)
		}
	}
	return nil
}

func (s *MongoDocumentStore) keyFilter(collection, id, partitionKey string) bson.M {
	filter := bson.M{"id": id}
	if pkField, ok := partitionKeyFields[collection]; ok && pkField != "id" {
		filter[pkField] = partitionKey
	}
	return filter
}

// CreateItem inserts a new document into the named collection.
func (s *MongoDocumentStore) CreateItem(ctx context.Context, collection string, item interface{}) error {
	if _, err := s.db.Collection(collection).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create item in %s: %w", collection, err)
	}
	return nil
}

// GetItem fetches one document by id and partition key.
func (s *MongoDocumentStore) GetItem(ctx context.Context, collection, id, partitionKey string, out interface{}) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, s.keyFilter(collection, id, partitionKey)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get item %s from %s: %w", id, collection, err)
	}
	return true, nil
}

// UpdateItem applies a $set merge to one document.
func (s *MongoDocumentStore) UpdateItem(ctx context.Context, collection, id, partitionKey string, updates bson.M) error {
	filter := s.keyFilter(collection, id, partitionKey)
	result, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update item %s in %s: %w", id, collection, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("item %s not found in %s", id, collection)
	}
	return nil
}

// UpsertItem replaces the document, inserting it when absent.
func (s *MongoDocumentStore) UpsertItem(ctx context.Context, collection, id, partitionKey string, item interface{}) error {
	filter := s.keyFilter(collection, id, partitionKey)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.db.Collection(collection).ReplaceOne(ctx, filter, item, opts); err != nil {
		return fmt.Errorf("failed to upsert item %s in %s: %w", id, collection, err)
	}
	return nil
}

// DeleteItem removes one document by id and partition key.
func (s *MongoDocumentStore) DeleteItem(ctx context.Context, collection, id, partitionKey string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, s.keyFilter(collection, id, partitionKey))
	if err != nil {
		return fmt.Errorf("failed to delete item %s from %s: %w", id, collection, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("item %s not found in %s", id, collection)
	}
	return nil
}

// QueryItems decodes all documents matching filter into out (a slice pointer).
func (s *MongoDocumentStore) QueryItems(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query items from %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode items from %s: %w", collection, err)
	}
	return nil
}
