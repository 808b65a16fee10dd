package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripmate/models"
	"tripmate/services/knowledge"

	"github.com/stretchr/testify/require"
)

type stubConversationRepo struct {
	states  map[string]*models.ConversationState
	getErr  error
	saveErr error
}

func newStubConversationRepo() *stubConversationRepo {
	return &stubConversationRepo{states: make(map[string]*models.ConversationState)}
}

func (r *stubConversationRepo) Get(_ context.Context, userID string) (*models.ConversationState, bool, error) {
	if r.getErr != nil {
		return nil, false, r.getErr
	}
	state, ok := r.states[userID]
	if !ok {
		return nil, false, nil
	}
	copied := *state
	return &copied, true, nil
}

func (r *stubConversationRepo) Create(_ context.Context, state *models.ConversationState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *state
	r.states[state.UserID] = &copied
	return nil
}

func (r *stubConversationRepo) Replace(_ context.Context, state *models.ConversationState) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	copied := *state
	r.states[state.UserID] = &copied
	return nil
}

func (r *stubConversationRepo) Delete(_ context.Context, userID string) error {
	delete(r.states, userID)
	return nil
}

type stubKnowledge struct {
	docs      []models.SupportContent
	err       error
	lastQuery string
	lastLimit int
}

func (k *stubKnowledge) AddContent(context.Context, models.SupportContent) error { return nil }

func (k *stubKnowledge) GetContent(context.Context, string) (*models.SupportContent, error) {
	return nil, nil
}

func (k *stubKnowledge) UpdateContent(context.Context, string, knowledge.ContentUpdate) error {
	return nil
}

func (k *stubKnowledge) DeleteContent(context.Context, string) error { return nil }

func (k *stubKnowledge) BulkImport(context.Context, []models.SupportContent) error { return nil }

func (k *stubKnowledge) SearchSimilarContent(_ context.Context, query string, limit int) ([]models.SupportContent, error) {
	k.lastQuery = query
	k.lastLimit = limit
	return k.docs, k.err
}

type stubModel struct {
	reply   string
	err     error
	prompts []string
}

func (m *stubModel) Complete(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.reply, m.err
}

func newTestService(repo *stubConversationRepo, kn *stubKnowledge, model *stubModel) *DefaultConversationService {
	return &DefaultConversationService{Repo: repo, Knowledge: kn, Model: model}
}

func TestGetState_CreatesInitialStateWhenAbsent(t *testing.T) {
	repo := newStubConversationRepo()
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	state, err := svc.GetState(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", state.UserID)
	require.Equal(t, models.StepInitial, state.CurrentStep)
	require.Equal(t, models.TripContext{}, state.Context)
	require.Empty(t, state.LastMessage)
	require.Empty(t, state.LastResponse)
	require.False(t, state.CreatedAt.IsZero())

	// The created state must also be persisted.
	_, found, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, found)
}

func TestGetState_SurfacesReadFailure(t *testing.T) {
	repo := newStubConversationRepo()
	repo.getErr = errors.New("connection reset")
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	_, err := svc.GetState(context.Background(), "user-1")
	require.Error(t, err)
	// A read failure must not fabricate a fresh state over existing data.
	require.Empty(t, repo.states)
}

func TestGetState_NormalizesUnknownStep(t *testing.T) {
	repo := newStubConversationRepo()
	repo.states["user-1"] = &models.ConversationState{UserID: "user-1", CurrentStep: "bogus"}
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	state, err := svc.GetState(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, models.StepInitial, state.CurrentStep)
}

func TestUpdateState_FieldLevelMerge(t *testing.T) {
	repo := newStubConversationRepo()
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	purpose := "leisure"
	_, err := svc.UpdateState(context.Background(), "user-1", models.StateUpdate{TripPurpose: &purpose})
	require.NoError(t, err)

	before := repo.states["user-1"].UpdatedAt

	flight := &models.FlightSlot{Origin: "LGW", Destination: "JFK", Passengers: 1, CabinClass: "economy"}
	state, err := svc.UpdateState(context.Background(), "user-1", models.StateUpdate{Flight: flight})
	require.NoError(t, err)

	// Updating one slot leaves the others intact.
	require.Equal(t, "leisure", state.Context.TripPurpose)
	require.Equal(t, flight, state.Context.Flight)
	require.Nil(t, state.Context.Hotel)
	require.True(t, state.UpdatedAt.After(before) || state.UpdatedAt.Equal(before))
	require.False(t, state.UpdatedAt.Before(before))
}

func TestUpdateState_RefreshesTimestamp(t *testing.T) {
	repo := newStubConversationRepo()
	repo.states["user-1"] = &models.ConversationState{
		UserID:      "user-1",
		CurrentStep: models.StepInitial,
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	msg := "hello"
	state, err := svc.UpdateState(context.Background(), "user-1", models.StateUpdate{LastMessage: &msg})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), state.UpdatedAt, time.Minute)
}

func TestUpdateState_PropagatesPersistenceFailure(t *testing.T) {
	repo := newStubConversationRepo()
	repo.states["user-1"] = &models.ConversationState{UserID: "user-1", CurrentStep: models.StepInitial}
	repo.saveErr = errors.New("write timeout")
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	msg := "hello"
	_, err := svc.UpdateState(context.Background(), "user-1", models.StateUpdate{LastMessage: &msg})
	require.Error(t, err)
}

func TestProcessMessage_PersistsMessageAndResponse(t *testing.T) {
	repo := newStubConversationRepo()
	kn := &stubKnowledge{}
	model := &stubModel{reply: "You can fly from Gatwick on Tuesday."}
	svc := newTestService(repo, kn, model)

	reply, err := svc.ProcessMessage(context.Background(), "user-1", "I'm traveling for business")
	require.NoError(t, err)
	require.Equal(t, "You can fly from Gatwick on Tuesday.", reply)
	require.Equal(t, "I'm traveling for business", kn.lastQuery)
	require.Equal(t, 5, kn.lastLimit)

	stored := repo.states["user-1"]
	require.Equal(t, "I'm traveling for business", stored.LastMessage)
	require.Equal(t, "You can fly from Gatwick on Tuesday.", stored.LastResponse)
	// The step does not advance on a free-text turn.
	require.Equal(t, models.StepInitial, stored.CurrentStep)
}

func TestProcessMessage_SequentialTurnsKeepOrdering(t *testing.T) {
	repo := newStubConversationRepo()
	model := &stubModel{reply: "first"}
	svc := newTestService(repo, &stubKnowledge{}, model)

	_, err := svc.ProcessMessage(context.Background(), "user-1", "one")
	require.NoError(t, err)
	require.Equal(t, "first", repo.states["user-1"].LastResponse)

	model.reply = "second"
	_, err = svc.ProcessMessage(context.Background(), "user-1", "two")
	require.NoError(t, err)
	require.Equal(t, "two", repo.states["user-1"].LastMessage)
	require.Equal(t, "second", repo.states["user-1"].LastResponse)
}

func TestProcessMessage_PropagatesRetrievalFailure(t *testing.T) {
	repo := newStubConversationRepo()
	kn := &stubKnowledge{err: errors.New("search unavailable")}
	svc := newTestService(repo, kn, &stubModel{})

	_, err := svc.ProcessMessage(context.Background(), "user-1", "hello")
	require.Error(t, err)
}

func TestProcessMessage_PropagatesModelFailure(t *testing.T) {
	repo := newStubConversationRepo()
	model := &stubModel{err: errors.New("completion failed")}
	svc := newTestService(repo, &stubKnowledge{}, model)

	_, err := svc.ProcessMessage(context.Background(), "user-1", "hello")
	require.Error(t, err)
	require.Empty(t, repo.states["user-1"].LastResponse)
}

func TestResetConversation_YieldsInitialState(t *testing.T) {
	repo := newStubConversationRepo()
	repo.states["user-1"] = &models.ConversationState{
		UserID:      "user-1",
		CurrentStep: models.StepHotelSelection,
		Context: models.TripContext{
			TripPurpose: "business",
			Flight:      &models.FlightSlot{Origin: "LGW", Destination: "JFK"},
		},
		LastMessage: "book it",
	}
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	require.NoError(t, svc.ResetConversation(context.Background(), "user-1"))

	state, err := svc.GetState(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, models.StepInitial, state.CurrentStep)
	require.Equal(t, models.TripContext{}, state.Context)
	require.Empty(t, state.LastMessage)
}

func TestScriptedReply_AdvancesStep(t *testing.T) {
	repo := newStubConversationRepo()
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	reply, step, err := svc.ScriptedReply(context.Background(), "user-1", "hi")
	require.NoError(t, err)
	require.Equal(t, ResponseForStep(models.StepInitial), reply)
	require.Equal(t, models.StepTripPurpose, step)
	require.Equal(t, models.StepTripPurpose, repo.states["user-1"].CurrentStep)

	reply, step, err = svc.ScriptedReply(context.Background(), "user-1", "leisure")
	require.NoError(t, err)
	require.Equal(t, ResponseForStep(models.StepTripPurpose), reply)
	require.Equal(t, models.StepFlightSelection, step)
}

func TestScriptedReply_AttractionsIsTerminal(t *testing.T) {
	repo := newStubConversationRepo()
	repo.states["user-1"] = &models.ConversationState{UserID: "user-1", CurrentStep: models.StepAttractions}
	svc := newTestService(repo, &stubKnowledge{}, &stubModel{})

	_, step, err := svc.ScriptedReply(context.Background(), "user-1", "tell me more")
	require.NoError(t, err)
	require.Equal(t, models.StepAttractions, step)

	_, step, err = svc.ScriptedReply(context.Background(), "user-1", "and more")
	require.NoError(t, err)
	require.Equal(t, models.StepAttractions, step)
}
