package conversationRepo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tripmate/database/repository"
	"tripmate/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memoryStore mimics MongoDocumentStore's addressing: documents are
// marshalled through bson and then matched field by field against the
// same key filter the real store builds. A document whose stored fields
// don't satisfy the filter is unreachable, exactly as it would be in
// Mongo.
type memoryStore struct {
	docs map[string][]bson.M
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]bson.M)}
}

func toDoc(item interface{}) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func keyFilter(collection, id, partitionKey string) bson.M {
	filter := bson.M{"id": id}
	if collection == repository.ConversationsCollection || collection == repository.BookingsCollection {
		filter["user_id"] = partitionKey
	}
	return filter
}

func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func (s *memoryStore) CreateItem(_ context.Context, collection string, item interface{}) error {
	doc, err := toDoc(item)
	if err != nil {
		return err
	}
	s.docs[collection] = append(s.docs[collection], doc)
	return nil
}

func (s *memoryStore) GetItem(_ context.Context, collection, id, partitionKey string, out interface{}) (bool, error) {
	filter := keyFilter(collection, id, partitionKey)
	for _, doc := range s.docs[collection] {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return false, err
			}
			return true, bson.Unmarshal(raw, out)
		}
	}
	return false, nil
}

func (s *memoryStore) UpdateItem(_ context.Context, collection, id, partitionKey string, updates bson.M) error {
	filter := keyFilter(collection, id, partitionKey)
	for _, doc := range s.docs[collection] {
		if matches(doc, filter) {
			converted, err := toDoc(updates)
			if err != nil {
				return err
			}
			for field, value := range converted {
				doc[field] = value
			}
			return nil
		}
	}
	return fmt.Errorf("item %s not found in %s", id, collection)
}

func (s *memoryStore) UpsertItem(ctx context.Context, collection, id, partitionKey string, item interface{}) error {
	_ = s.DeleteItem(ctx, collection, id, partitionKey)
	return s.CreateItem(ctx, collection, item)
}

func (s *memoryStore) DeleteItem(_ context.Context, collection, id, partitionKey string) error {
	filter := keyFilter(collection, id, partitionKey)
	for i, doc := range s.docs[collection] {
		if matches(doc, filter) {
			s.docs[collection] = append(s.docs[collection][:i], s.docs[collection][i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("item %s not found in %s", id, collection)
}

func (s *memoryStore) QueryItems(context.Context, string, bson.M, interface{}) error {
	return fmt.Errorf("query not supported in memory store")
}

func newState(userID string) *models.ConversationState {
	now := time.Now().Truncate(time.Millisecond)
	return &models.ConversationState{
		UserID:      userID,
		CurrentStep: models.StepInitial,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	store := newMemoryStore()
	repo := NewDocumentConversationRepo(store)

	require.NoError(t, repo.Create(context.Background(), newState("user-1")))

	state, found, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, found, "a stored state must be addressable by user ID")
	require.Equal(t, "user-1", state.UserID)
	require.Equal(t, models.StepInitial, state.CurrentStep)
}

func TestCreateStampsDocumentID(t *testing.T) {
	store := newMemoryStore()
	repo := NewDocumentConversationRepo(store)

	require.NoError(t, repo.Create(context.Background(), newState("user-1")))

	require.Len(t, store.docs[repository.ConversationsCollection], 1)
	doc := store.docs[repository.ConversationsCollection][0]
	require.Equal(t, "user-1", doc["id"])
	require.Equal(t, "user-1", doc["user_id"])
}

func TestReplaceUpdatesStoredState(t *testing.T) {
	store := newMemoryStore()
	repo := NewDocumentConversationRepo(store)

	require.NoError(t, repo.Create(context.Background(), newState("user-1")))

	state, found, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, found)

	state.CurrentStep = models.StepTripPurpose
	state.LastMessage = "leisure"
	state.UpdatedAt = time.Now()
	require.NoError(t, repo.Replace(context.Background(), state))

	reloaded, found, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, models.StepTripPurpose, reloaded.CurrentStep)
	require.Equal(t, "leisure", reloaded.LastMessage)
}

func TestDeleteThenRecreate(t *testing.T) {
	store := newMemoryStore()
	repo := NewDocumentConversationRepo(store)

	require.NoError(t, repo.Create(context.Background(), newState("user-1")))
	require.NoError(t, repo.Delete(context.Background(), "user-1"))

	_, found, err := repo.Get(context.Background(), "user-1")
	require.NoError(t, err)
	require.False(t, found)

	// A fresh create after delete must leave exactly one document.
	require.NoError(t, repo.Create(context.Background(), newState("user-1")))
	require.Len(t, store.docs[repository.ConversationsCollection], 1)
}

func TestGetDistinguishesAbsenceFromOtherUsers(t *testing.T) {
	store := newMemoryStore()
	repo := NewDocumentConversationRepo(store)

	require.NoError(t, repo.Create(context.Background(), newState("user-1")))

	_, found, err := repo.Get(context.Background(), "user-2")
	require.NoError(t, err)
	require.False(t, found)
}
