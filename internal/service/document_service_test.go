package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/repository/postgres"
	"github.com/nikov/simplenote-backend/internal/service"
	"github.com/nikov/simplenote-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	docService := service.NewDocumentService(repos.Document)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	t.Run("structured content round-trips by shape", func(t *testing.T) {
		created, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{
			ID:      "doc-structured",
			Title:   "Structured",
			Content: json.RawMessage(`{"a": 1}`),
		})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, created.UserID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		got, err := docService.Get(ctx, owner.ID, "doc-structured")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, domain.DecodeContent(got.Content).Value())
	})

	t.Run("legacy plain string round-trips without wrapping", func(t *testing.T) {
		_, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{
			ID:      "doc-legacy",
			Title:   "Legacy",
			Content: json.RawMessage(`"plain text"`),
		})
		require.NoError(t, err)

		got, err := docService.Get(ctx, owner.ID, "doc-legacy")
		require.NoError(t, err)
		assert.Equal(t, "plain text", domain.DecodeContent(got.Content).Value())
	})

	t.Run("absent content defaults to empty object", func(t *testing.T) {
		_, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{
			ID:    "doc-empty",
			Title: "Empty",
		})
		require.NoError(t, err)

		got, err := docService.Get(ctx, owner.ID, "doc-empty")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, domain.DecodeContent(got.Content).Value())
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		_, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{
			ID:    "doc-structured",
			Title: "Again",
		})
		assert.ErrorIs(t, err, domain.ErrDocumentExists)
	})

	t.Run("duplicate id conflicts across owners", func(t *testing.T) {
		other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		_, err := docService.Create(ctx, other.ID, service.CreateDocumentInput{
			ID:    "doc-structured",
			Title: "Other tenant",
		})
		assert.ErrorIs(t, err, domain.ErrDocumentExists)
	})
}

func TestDocumentService_OwnershipIsolation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	docService := service.NewDocumentService(repos.Document)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewDocumentBuilder().
		WithID("alice-doc").
		WithOwner(alice).
		Build(t, testDB.DB)

	t.Run("foreign get is not found", func(t *testing.T) {
		_, err := docService.Get(ctx, bob.ID, "alice-doc")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("foreign update is not found", func(t *testing.T) {
		_, err := docService.Update(ctx, bob.ID, "alice-doc", service.UpdateDocumentInput{
			Title:   "Hijacked",
			Content: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("foreign delete is not found", func(t *testing.T) {
		err := docService.Delete(ctx, bob.ID, "alice-doc")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("owner still sees the document untouched", func(t *testing.T) {
		got, err := docService.Get(ctx, alice.ID, "alice-doc")
		require.NoError(t, err)
		assert.Equal(t, "Test Document", got.Title)
	})
}

func TestDocumentService_Update(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	docService := service.NewDocumentService(repos.Document)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	created, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{
		ID:      "doc-update",
		Title:   "Before",
		Content: json.RawMessage(`{"v": 1}`),
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := docService.Update(ctx, owner.ID, "doc-update", service.UpdateDocumentInput{
		Title:   "After",
		Content: json.RawMessage(`{"v": 2}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, map[string]any{"v": float64(2)}, domain.DecodeContent(updated.Content).Value())
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := docService.Update(ctx, owner.ID, "missing", service.UpdateDocumentInput{
			Title:   "X",
			Content: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})
}

func TestDocumentService_SoftDelete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	docService := service.NewDocumentService(repos.Document)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	testutil.NewDocumentBuilder().
		WithID("doc-del").
		WithOwner(owner).
		Build(t, testDB.DB)

	require.NoError(t, docService.Delete(ctx, owner.ID, "doc-del"))

	t.Run("deleted document is invisible to get", func(t *testing.T) {
		_, err := docService.Get(ctx, owner.ID, "doc-del")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("deleted document is invisible to update", func(t *testing.T) {
		_, err := docService.Update(ctx, owner.ID, "doc-del", service.UpdateDocumentInput{
			Title:   "X",
			Content: json.RawMessage(`{}`),
		})
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		err := docService.Delete(ctx, owner.ID, "doc-del")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("deleted document is excluded from list", func(t *testing.T) {
		docs, err := docService.List(ctx, owner.ID)
		require.NoError(t, err)
		for _, doc := range docs {
			assert.NotEqual(t, "doc-del", doc.ID)
		}
	})
}

func TestDocumentService_ListOrdering(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	docService := service.NewDocumentService(repos.Document)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := docService.Create(ctx, owner.ID, service.CreateDocumentInput{ID: "d1", Title: "First"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = docService.Create(ctx, owner.ID, service.CreateDocumentInput{ID: "d2", Title: "Second"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Touching d1 moves it back to the top.
	_, err = docService.Update(ctx, owner.ID, "d1", service.UpdateDocumentInput{
		Title:   "First touched",
		Content: json.RawMessage(`{}`),
	})
	require.NoError(t, err)

	docs, err := docService.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "d1", docs[0].ID)
	assert.Equal(t, "d2", docs[1].ID)
}
