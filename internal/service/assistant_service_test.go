package service_test

import (
	"context"
	"testing"

	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/repository/postgres"
	"github.com/nikov/simplenote-backend/internal/service"
	"github.com/nikov/simplenote-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantService_RecordsAuditRows(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	assistant := service.NewAssistantService(repos.Audit)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	doc := testutil.NewDocumentBuilder().WithOwner(owner).Build(t, testDB.DB)

	t.Run("summarize appends an interaction row", func(t *testing.T) {
		out := assistant.Summarize(ctx, doc.ID, "selected text")
		assert.Equal(t, service.SummarizePlaceholder, out)

		var rec domain.AIInteraction
		err := testDB.DB.First(&rec, "document_id = ? AND interaction_type = ?", doc.ID, "summarize").Error
		require.NoError(t, err)
		assert.Equal(t, "selected text", rec.InputText)
		assert.NotEmpty(t, rec.OutputText)
	})

	t.Run("rewrite records the style in the interaction type", func(t *testing.T) {
		out := assistant.Rewrite(ctx, doc.ID, "selected text", "casual")
		assert.Equal(t, service.RewritePlaceholder, out)

		var rec domain.AIInteraction
		err := testDB.DB.First(&rec, "document_id = ? AND interaction_type = ?", doc.ID, "rewrite_casual").Error
		require.NoError(t, err)
	})

	t.Run("rewrite defaults to the professional style", func(t *testing.T) {
		assistant.Rewrite(ctx, doc.ID, "selected text", "")

		var rec domain.AIInteraction
		err := testDB.DB.First(&rec, "document_id = ? AND interaction_type = ?", doc.ID, "rewrite_professional").Error
		require.NoError(t, err)
	})

	t.Run("transcribe appends a speech session row", func(t *testing.T) {
		out := assistant.Transcribe(ctx, doc.ID)
		assert.Equal(t, service.TranscribePlaceholder, out)

		var rec domain.SpeechSession
		err := testDB.DB.First(&rec, "document_id = ?", doc.ID).Error
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Duration)
	})
}
