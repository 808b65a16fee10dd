package repository

import (
	"testing"
	"time"

	"tripmate/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// marshalToMap round-trips a document through bson the way the driver
// stores it, so tests see the exact field names on disk.
func marshalToMap(t *testing.T, doc interface{}) bson.M {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	return m
}

// Every collection's key filter must address fields that actually exist
// on its stored documents, otherwise lookups silently match nothing.
func TestKeyFilterFieldsExistOnStoredDocuments(t *testing.T) {
	now := time.Now()
	store := &MongoDocumentStore{}

	cases := []struct {
		collection   string
		id           string
		partitionKey string
		doc          interface{}
	}{
		{
			collection:   UsersCollection,
			id:           "user-1",
			partitionKey: "user-1",
			doc:          models.User{ID: "user-1", Email: "ada@example.com", CreatedAt: now},
		},
		{
			collection:   BookingsCollection,
			id:           "booking-1",
			partitionKey: "user-1",
			doc:          models.Booking{ID: "booking-1", UserID: "user-1", Type: models.BookingFlight},
		},
		{
			collection:   ConversationsCollection,
			id:           "user-1",
			partitionKey: "user-1",
			doc: models.ConversationState{
				ID:          "user-1",
				UserID:      "user-1",
				CurrentStep: models.StepInitial,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}

	for _, tc := range cases {
		stored := marshalToMap(t, tc.doc)
		filter := store.keyFilter(tc.collection, tc.id, tc.partitionKey)
		require.NotEmpty(t, filter, tc.collection)
		for field, want := range filter {
			got, present := stored[field]
			require.True(t, present, "%s: filter field %q missing from stored document", tc.collection, field)
			require.Equal(t, want, got, "%s: filter field %q", tc.collection, field)
		}
	}
}

func TestKeyFilterUsesPartitionKeyOnlyWhenDistinct(t *testing.T) {
	store := &MongoDocumentStore{}

	require.Equal(t, bson.M{"id": "user-1"}, store.keyFilter(UsersCollection, "user-1", "user-1"))
	require.Equal(t,
		bson.M{"id": "booking-1", "user_id": "user-1"},
		store.keyFilter(BookingsCollection, "booking-1", "user-1"))
	require.Equal(t,
		bson.M{"id": "user-1", "user_id": "user-1"},
		store.keyFilter(ConversationsCollection, "user-1", "user-1"))
}
