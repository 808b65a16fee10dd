package knowledge

import (
	"context"
	"fmt"

	"tripmate/models"
	"tripmate/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// bulkImportBatchSize caps how many documents go into one upsert batch.
const bulkImportBatchSize = 100

// AddContent computes an embedding for the body text and stores the item
// together with its vector.
func (s *DefaultKnowledgeService) AddContent(ctx context.Context, item models.SupportContent) error {
	vector, err := s.Embedder.EmbedText(ctx, item.Content)
	if err != nil {
		return fmt.Errorf("failed to add content to knowledge base: %w", err)
	}
	item.Vector = vector

	if err := s.Repo.Upsert(ctx, &item); err != nil {
		return fmt.Errorf("failed to add content to knowledge base: %w", err)
	}
	utils.GetLogger().Info("Added support content", zap.String("id", item.ID), zap.String("title", item.Title))
	return nil
}

// GetContent fetches one support document by id.
func (s *DefaultKnowledgeService) GetContent(ctx context.Context, id string) (*models.SupportContent, error) {
	item, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content %s: %w", id, err)
	}
	return item, nil
}

// SearchSimilarContent embeds the query and returns up to limit nearest
// documents. The stored vectors are not part of the returned projection.
func (s *DefaultKnowledgeService) SearchSimilarContent(ctx context.Context, query string, limit int) ([]models.SupportContent, error) {
	queryVector, err := s.Embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar content: %w", err)
	}

	results, err := s.Repo.VectorSearch(ctx, queryVector, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search similar content: %w", err)
	}
	return results, nil
}

// UpdateContent merges partial fields; the embedding is recomputed only when
// the body text changes.
func (s *DefaultKnowledgeService) UpdateContent(ctx context.Context, id string, updates ContentUpdate) error {
	doc := bson.M{}
	if updates.Title != nil {
		doc["title"] = *updates.Title
	}
	if updates.Content != nil {
		vector, err := s.Embedder.EmbedText(ctx, *updates.Content)
		if err != nil {
			return fmt.Errorf("failed to update content %s: %w", id, err)
		}
		doc["content"] = *updates.Content
		doc["vector"] = vector
	}
	if updates.Category != nil {
		doc["category"] = *updates.Category
	}
	if updates.Tags != nil {
		doc["tags"] = updates.Tags
	}
	if updates.Metadata != nil {
		doc["metadata"] = *updates.Metadata
	}
	if len(doc) == 0 {
		return nil
	}

	if err := s.Repo.Merge(ctx, id, doc); err != nil {
		return fmt.Errorf("failed to update content %s: %w", id, err)
	}
	utils.GetLogger().Info("Updated support content", zap.String("id", id))
	return nil
}

func (s *DefaultKnowledgeService) DeleteContent(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content %s: %w", id, err)
	}
	return nil
}

// BulkImport embeds every item and uploads them in sequential batches.
func (s *DefaultKnowledgeService) BulkImport(ctx context.Context, items []models.SupportContent) error {
	logger := utils.GetLogger()

	for i := range items {
		vector, err := s.Embedder.EmbedText(ctx, items[i].Content)
		if err != nil {
			return fmt.Errorf("failed to bulk import support content: %w", err)
		}
		items[i].Vector = vector
	}

	for start := 0; start < len(items); start += bulkImportBatchSize {
		end := start + bulkImportBatchSize
		if end > len(items) {
			end = len(items)
		}
		if err := s.Repo.UpsertMany(ctx, items[start:end]); err != nil {
			return fmt.Errorf("failed to bulk import support content: %w", err)
		}
		logger.Info("Uploaded support content batch", zap.Int("batch", start/bulkImportBatchSize+1))
	}
	return nil
}
