package supportRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripmate/database"
	"tripmate/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName  = "support_content"
	vectorIndexName = "support_content_vector"
)

// SupportContentRepository defines data access for the indexed support corpus.
type SupportContentRepository interface {
	GetByID(ctx context.Context, id string) (*models.SupportContent, error)
	Upsert(ctx context.Context, item *models.SupportContent) error
	UpsertMany(ctx context.Context, items []models.SupportContent) error
	Merge(ctx context.Context, id string, updates bson.M) error
	Delete(ctx context.Context, id string) error
	// VectorSearch runs a k-nearest-neighbor search against the stored
	// embeddings. The embedding vector is excluded from returned documents.
	VectorSearch(ctx context.Context, vector []float32, limit int) ([]models.SupportContent, error)
}

// MongoSupportRepo implements SupportContentRepository using MongoDB with an
// Atlas vector search index on the vector field.
type MongoSupportRepo struct {
	coll *mongo.Collection
}

func NewMongoSupportRepo() *MongoSupportRepo {
	coll := database.DB().Collection(collectionName)
	repo := &MongoSupportRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		log.Printf("failed to create support content indexes: %v", err)
	}
	return repo
}

func (r *MongoSupportRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoSupportRepo) GetByID(ctx context.Context, id string) (*models.SupportContent, error) {
	var item models.SupportContent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to fetch support content %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoSupportRepo) Upsert(ctx context.Context, item *models.SupportContent) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": item.ID}, item, opts); err != nil {
		return fmt.Errorf("failed to upsert support content %s: %w", item.ID, err)
	}
	return nil
}

func (r *MongoSupportRepo) UpsertMany(ctx context.Context, items []models.SupportContent) error {
	writes := make([]mongo.WriteModel, 0, len(items))
	for i := range items {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"id": items[i].ID}).
			SetReplacement(&items[i]).
			SetUpsert(true))
	}
	if _, err := r.coll.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("failed to upsert support content batch: %w", err)
	}
	return nil
}

func (r *MongoSupportRepo) Merge(ctx context.Context, id string, updates bson.M) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update support content %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("support content %s not found", id)
	}
	return nil
}

func (r *MongoSupportRepo) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete support content %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("support content %s not found", id)
	}
	return nil
}

func (r *MongoSupportRepo) VectorSearch(ctx context.Context, vector []float32, limit int) ([]models.SupportContent, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$vectorSearch", Value: bson.D{
			{Key: "index", Value: vectorIndexName},
			{Key: "path", Value: "vector"},
			{Key: "queryVector", Value: vector},
			{Key: "numCandidates", Value: limit * 10},
			{Key: "limit", Value: limit},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"vector": 0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("vector search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.SupportContent
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode support content: %w", err)
	}
	return results, nil
}
