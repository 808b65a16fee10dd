package conversationRepo

import (
	"context"
	"fmt"

	"tripmate/database/repository"
	"tripmate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ConversationRepository defines data access for conversation state.
type ConversationRepository interface {
	// Get retrieves state for a user. The boolean distinguishes genuine
	// absence from a read failure.
	Get(ctx context.Context, userID string) (*models.ConversationState, bool, error)
	Create(ctx context.Context, state *models.ConversationState) error
	// Replace overwrites the whole stored state document.
	Replace(ctx context.Context, state *models.ConversationState) error
	Delete(ctx context.Context, userID string) error
}

// DocumentConversationRepo implements ConversationRepository over the generic
// document store. Conversation documents are keyed by user ID as both id and
// partition key.
type DocumentConversationRepo struct {
	store repository.DocumentStore
}

func NewDocumentConversationRepo(store repository.DocumentStore) *DocumentConversationRepo {
	return &DocumentConversationRepo{store: store}
}

func (r *DocumentConversationRepo) Get(ctx context.Context, userID string) (*models.ConversationState, bool, error) {
	var state models.ConversationState
	found, err := r.store.GetItem(ctx, repository.ConversationsCollection, userID, userID, &state)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch conversation state for %s: %w", userID, err)
	}
	if !found {
		return nil, false, nil
	}
	return &state, true, nil
}

func (r *DocumentConversationRepo) Create(ctx context.Context, state *models.ConversationState) error {
	state.ID = state.UserID
	if err := r.store.CreateItem(ctx, repository.ConversationsCollection, state); err != nil {
		return fmt.Errorf("failed to create conversation state for %s: %w", state.UserID, err)
	}
	return nil
}

func (r *DocumentConversationRepo) Replace(ctx context.Context, state *models.ConversationState) error {
	updates := bson.M{
		"current_step":  state.CurrentStep,
		"context":       state.Context,
		"last_message":  state.LastMessage,
		"last_response": state.LastResponse,
		"updated_at":    state.UpdatedAt,
	}
	if err := r.store.UpdateItem(ctx, repository.ConversationsCollection, state.UserID, state.UserID, updates); err != nil {
		return fmt.Errorf("failed to update conversation state for %s: %w", state.UserID, err)
	}
	return nil
}

func (r *DocumentConversationRepo) Delete(ctx context.Context, userID string) error {
	if err := r.store.DeleteItem(ctx, repository.ConversationsCollection, userID, userID); err != nil {
		return fmt.Errorf("failed to delete conversation state for %s: %w", userID, err)
	}
	return nil
}
