// File: services/conversation/interface.go
package conversation

import (
	"context"

	conversationRepo "tripmate/database/repository/conversation"
	"tripmate/services/knowledge"

	"tripmate/models"
)

// ConversationService drives the per-user dialogue: it keeps the
// conversation state, assembles retrieval-augmented prompts, and
// produces replies via the completion model.
type ConversationService interface {
	// GetState returns the stored state for the user, lazily creating an
	// initial one when none exists. A read failure is returned as an
	// error rather than masked with a fresh state.
	GetState(ctx context.Context, userID string) (*models.ConversationState, error)

	// UpdateState merges the partial update into the current state,
	// refreshes the update timestamp, persists, and returns the merged
	// state.
	UpdateState(ctx context.Context, userID string, update models.StateUpdate) (*models.ConversationState, error)

	// ProcessMessage runs one retrieval-augmented turn and returns the
	// model's reply.
	ProcessMessage(ctx context.Context, userID, message string) (string, error)

	// ScriptedReply returns the canned guidance for the user's current
	// step and advances the step for the next turn.
	ScriptedReply(ctx context.Context, userID, message string) (string, models.Step, error)

	// ResetConversation deletes the stored state and recreates an
	// initial one.
	ResetConversation(ctx context.Context, userID string) error
}

// DefaultConversationService is the production implementation.
type DefaultConversationService struct {
	Repo      conversationRepo.ConversationRepository
	Cache     *StateCache
	Knowledge knowledge.KnowledgeService
	Model     CompletionModel
}
