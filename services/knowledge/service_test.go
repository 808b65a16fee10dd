package knowledge

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tripmate/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type stubEmbedder struct {
	calls []string
	err   error
}

func (e *stubEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	e.calls = append(e.calls, text)
	if e.err != nil {
		return nil, e.err
	}
	return []float32{float32(len(text)), 0.5}, nil
}

type stubSupportRepo struct {
	upserted   []models.SupportContent
	batches    [][]models.SupportContent
	merged     map[string]bson.M
	deleted    []string
	searchHits []models.SupportContent
	lastVector []float32
	lastLimit  int
}

func newStubSupportRepo() *stubSupportRepo {
	return &stubSupportRepo{merged: make(map[string]bson.M)}
}

func (r *stubSupportRepo) GetByID(_ context.Context, id string) (*models.SupportContent, error) {
	for i := range r.upserted {
		if r.upserted[i].ID == id {
			return &r.upserted[i], nil
		}
	}
	return nil, fmt.Errorf("support content %s not found", id)
}

func (r *stubSupportRepo) Upsert(_ context.Context, item *models.SupportContent) error {
	r.upserted = append(r.upserted, *item)
	return nil
}

func (r *stubSupportRepo) UpsertMany(_ context.Context, items []models.SupportContent) error {
	batch := make([]models.SupportContent, len(items))
	copy(batch, items)
	r.batches = append(r.batches, batch)
	return nil
}

func (r *stubSupportRepo) Merge(_ context.Context, id string, updates bson.M) error {
	r.merged[id] = updates
	return nil
}

func (r *stubSupportRepo) Delete(_ context.Context, id string) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubSupportRepo) VectorSearch(_ context.Context, vector []float32, limit int) ([]models.SupportContent, error) {
	r.lastVector = vector
	r.lastLimit = limit
	return r.searchHits, nil
}

func TestAddContent_EmbedsBodyBeforeStoring(t *testing.T) {
	repo := newStubSupportRepo()
	emb := &stubEmbedder{}
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: emb}

	err := svc.AddContent(context.Background(), models.SupportContent{
		ID:      "doc-1",
		Title:   "Baggage Allowance",
		Content: "One carry-on bag.",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"One carry-on bag."}, emb.calls)
	require.Len(t, repo.upserted, 1)
	require.NotEmpty(t, repo.upserted[0].Vector)
}

func TestAddContent_EmbeddingFailurePropagates(t *testing.T) {
	repo := newStubSupportRepo()
	emb := &stubEmbedder{err: errors.New("quota exceeded")}
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: emb}

	err := svc.AddContent(context.Background(), models.SupportContent{ID: "doc-1", Content: "text"})
	require.Error(t, err)
	require.Empty(t, repo.upserted)
}

func TestGetContent_ReturnsStoredDocument(t *testing.T) {
	repo := newStubSupportRepo()
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: &stubEmbedder{}}

	require.NoError(t, svc.AddContent(context.Background(), models.SupportContent{
		ID:      "doc-1",
		Title:   "Baggage Allowance",
		Content: "One carry-on bag.",
	}))

	item, err := svc.GetContent(context.Background(), "doc-1")
	require.NoError(t, err)
	require.Equal(t, "Baggage Allowance", item.Title)

	_, err = svc.GetContent(context.Background(), "doc-missing")
	require.Error(t, err)
}

func TestSearchSimilarContent_UsesQueryEmbedding(t *testing.T) {
	repo := newStubSupportRepo()
	repo.searchHits = []models.SupportContent{{ID: "doc-1", Title: "Baggage Allowance"}}
	emb := &stubEmbedder{}
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: emb}

	results, err := svc.SearchSimilarContent(context.Background(), "what can I bring?", 5)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, []string{"what can I bring?"}, emb.calls)
	require.NotEmpty(t, repo.lastVector)
	require.Equal(t, 5, repo.lastLimit)
}

func TestUpdateContent_ReembedsOnlyWhenBodyChanges(t *testing.T) {
	repo := newStubSupportRepo()
	emb := &stubEmbedder{}
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: emb}

	title := "New Title"
	require.NoError(t, svc.UpdateContent(context.Background(), "doc-1", ContentUpdate{Title: &title}))
	require.Empty(t, emb.calls)
	require.NotContains(t, repo.merged["doc-1"], "vector")

	body := "Updated body text."
	require.NoError(t, svc.UpdateContent(context.Background(), "doc-1", ContentUpdate{Content: &body}))
	require.Equal(t, []string{"Updated body text."}, emb.calls)
	require.Contains(t, repo.merged["doc-1"], "vector")
}

func TestUpdateContent_EmptyUpdateIsNoop(t *testing.T) {
	repo := newStubSupportRepo()
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: &stubEmbedder{}}

	require.NoError(t, svc.UpdateContent(context.Background(), "doc-1", ContentUpdate{}))
	require.Empty(t, repo.merged)
}

func TestBulkImport_UploadsInBatchesOf100(t *testing.T) {
	repo := newStubSupportRepo()
	emb := &stubEmbedder{}
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: emb}

	items := make([]models.SupportContent, 250)
	for i := range items {
		items[i] = models.SupportContent{
			ID:      fmt.Sprintf("doc-%d", i),
			Content: fmt.Sprintf("content %d", i),
		}
	}

	require.NoError(t, svc.BulkImport(context.Background(), items))
	require.Len(t, emb.calls, 250)
	require.Len(t, repo.batches, 3)
	require.Len(t, repo.batches[0], 100)
	require.Len(t, repo.batches[1], 100)
	require.Len(t, repo.batches[2], 50)
	// Every uploaded item carries its embedding.
	require.NotEmpty(t, repo.batches[2][49].Vector)
}

func TestDeleteContent(t *testing.T) {
	repo := newStubSupportRepo()
	svc := &DefaultKnowledgeService{Repo: repo, Embedder: &stubEmbedder{}}

	require.NoError(t, svc.DeleteContent(context.Background(), "doc-1"))
	require.Equal(t, []string{"doc-1"}, repo.deleted)
}
