package knowledge

import (
	"context"

	supportRepo "tripmate/database/repository/support"
	"tripmate/models"
)

// KnowledgeService manages the support-content corpus and similarity search
// over it. Embedding and nearest-neighbor search are delegated to the hosted
// model and index; there is no caching here.
type KnowledgeService interface {
	AddContent(ctx context.Context, item models.SupportContent) error
	GetContent(ctx context.Context, id string) (*models.SupportContent, error)
	SearchSimilarContent(ctx context.Context, query string, limit int) ([]models.SupportContent, error)
	UpdateContent(ctx context.Context, id string, updates ContentUpdate) error
	DeleteContent(ctx context.Context, id string) error
	BulkImport(ctx context.Context, items []models.SupportContent) error
}

// ContentUpdate is a partial support-content update; nil fields are untouched.
type ContentUpdate struct {
	Title    *string                 `json:"title,omitempty"`
	Content  *string                 `json:"content,omitempty"`
	Category *string                 `json:"category,omitempty"`
	Tags     []string                `json:"tags,omitempty"`
	Metadata *models.ContentMetadata `json:"metadata,omitempty"`
}

// DefaultKnowledgeService is the production implementation.
type DefaultKnowledgeService struct {
	Repo     supportRepo.SupportContentRepository
	Embedder Embedder
}
