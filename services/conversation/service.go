// File: services/conversation/service.go
package conversation

import (
	"context"
	"fmt"
	"time"

	"tripmate/config"
	"tripmate/models"
	"tripmate/utils"

	"go.uber.org/zap"
)

// GetState returns the stored conversation state for the user. When no
// state exists yet an initial one is created and persisted. Read
// failures are surfaced to the caller so an existing conversation is
// never silently replaced with a blank one.
func (s *DefaultConversationService) GetState(ctx context.Context, userID string) (*models.ConversationState, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, userID); err != nil {
			logger.Warn("Conversation state cache read failed", zap.String("userID", userID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	state, found, err := s.Repo.Get(ctx, userID)
	if err != nil {
		logger.Error("Failed to get conversation state", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	if !found {
		return s.createInitialState(ctx, userID)
	}

	state.CurrentStep = models.NormalizeStep(state.CurrentStep)
	s.cacheState(ctx, state)
	return state, nil
}

func (s *DefaultConversationService) createInitialState(ctx context.Context, userID string) (*models.ConversationState, error) {
	now := time.Now()
	state := &models.ConversationState{
		UserID:      userID,
		CurrentStep: models.StepInitial,
		Context:     models.TripContext{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create initial conversation state: %w", err)
	}
	s.cacheState(ctx, state)
	return state, nil
}

// UpdateState merges the partial update into the stored state. Slots
// not named by the update keep their previous values, and the update
// timestamp is always refreshed.
func (s *DefaultConversationService) UpdateState(ctx context.Context, userID string, update models.StateUpdate) (*models.ConversationState, error) {
	state, err := s.GetState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.CurrentStep != nil {
		state.CurrentStep = models.NormalizeStep(*update.CurrentStep)
	}
	if update.TripPurpose != nil {
		state.Context.TripPurpose = *update.TripPurpose
	}
	if update.Flight != nil {
		state.Context.Flight = update.Flight
	}
	if update.Hotel != nil {
		state.Context.Hotel = update.Hotel
	}
	if update.Transportation != nil {
		state.Context.Transportation = update.Transportation
	}
	if update.Restaurant != nil {
		state.Context.Restaurant = update.Restaurant
	}
	if update.LastMessage != nil {
		state.LastMessage = *update.LastMessage
	}
	if update.LastResponse != nil {
		state.LastResponse = *update.LastResponse
	}
	state.UpdatedAt = time.Now()

	if err := s.Repo.Replace(ctx, state); err != nil {
		utils.GetLogger().Error("Failed to update conversation state", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	s.cacheState(ctx, state)
	return state, nil
}

// ProcessMessage runs one retrieval-augmented turn: it loads state,
// fetches similar support content for the message, asks the completion
// model for a reply, and persists the message/response pair. Every
// failure propagates to the caller.
func (s *DefaultConversationService) ProcessMessage(ctx context.Context, userID, message string) (string, error) {
	logger := utils.GetLogger()

	state, err := s.GetState(ctx, userID)
	if err != nil {
		return "", err
	}

	limit := config.AppConfig.VectorSearchLimit
	if limit <= 0 {
		limit = 5
	}
	docs, err := s.Knowledge.SearchSimilarContent(ctx, message, limit)
	if err != nil {
		logger.Error("Failed to retrieve support content", zap.String("userID", userID), zap.Error(err))
		return "", err
	}

	prompt := BuildPrompt(state, message, docs)
	response, err := s.Model.Complete(ctx, prompt)
	if err != nil {
		logger.Error("Failed to generate response", zap.String("userID", userID), zap.Error(err))
		return "", err
	}

	if _, err := s.UpdateState(ctx, userID, models.StateUpdate{
		LastMessage:  &message,
		LastResponse: &response,
	}); err != nil {
		return "", err
	}
	return response, nil
}

// ScriptedReply returns the canned guidance for the user's current step
// and advances the stored step so the next turn moves forward in the
// flow. Attractions is terminal.
func (s *DefaultConversationService) ScriptedReply(ctx context.Context, userID, message string) (string, models.Step, error) {
	state, err := s.GetState(ctx, userID)
	if err != nil {
		return "", "", err
	}

	step := models.NormalizeStep(state.CurrentStep)
	reply := ResponseForStep(step)
	next := NextStep(step)

	if _, err := s.UpdateState(ctx, userID, models.StateUpdate{
		CurrentStep:  &next,
		LastMessage:  &message,
		LastResponse: &reply,
	}); err != nil {
		return "", "", err
	}
	return reply, next, nil
}

// ResetConversation deletes the stored state and recreates an initial
// one.
func (s *DefaultConversationService) ResetConversation(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		utils.GetLogger().Error("Failed to reset conversation", zap.String("userID", userID), zap.Error(err))
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Clear(ctx, userID); err != nil {
			utils.GetLogger().Warn("Failed to clear cached conversation state", zap.String("userID", userID), zap.Error(err))
		}
	}
	if _, err := s.createInitialState(ctx, userID); err != nil {
		return err
	}
	return nil
}

func (s *DefaultConversationService) cacheState(ctx context.Context, state *models.ConversationState) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Set(ctx, state); err != nil {
		utils.GetLogger().Warn("Failed to cache conversation state", zap.String("userID", state.UserID), zap.Error(err))
	}
}
