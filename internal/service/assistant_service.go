package service

import (
	"context"
	"time"

	"github.com/nikov/simplenote-backend/internal/domain"
	"github.com/nikov/simplenote-backend/internal/repository"
	"github.com/nikov/simplenote-backend/pkg/logger"
)

// Placeholder outputs until a real model/speech integration lands.
const (
	SummarizePlaceholder  = "AI summarization feature coming soon!"
	RewritePlaceholder    = "AI rewriting feature coming soon!"
	TranscribePlaceholder = "Speech-to-text feature coming soon!"
)

// AssistantService backs the placeholder AI and speech endpoints. Its only
// real job is the audit trail: every request appends a row keyed to the
// document. Audit writes are fire-and-forget; a failed insert must never
// fail the request that triggered it.
type AssistantService struct {
	audits repository.AuditRepository
}

func NewAssistantService(audits repository.AuditRepository) *AssistantService {
	return &AssistantService{audits: audits}
}

func (s *AssistantService) Summarize(ctx context.Context, documentID, selectedText string) string {
	s.record(ctx, &domain.AIInteraction{
		DocumentID:      documentID,
		InteractionType: "summarize",
		InputText:       selectedText,
		OutputText:      "AI summarization will be implemented here",
		CreatedAt:       time.Now().UTC(),
	})
	return SummarizePlaceholder
}

func (s *AssistantService) Rewrite(ctx context.Context, documentID, selectedText, style string) string {
	if style == "" {
		style = "professional"
	}
	s.record(ctx, &domain.AIInteraction{
		DocumentID:      documentID,
		InteractionType: "rewrite_" + style,
		InputText:       selectedText,
		OutputText:      "AI rewriting will be implemented here",
		CreatedAt:       time.Now().UTC(),
	})
	return RewritePlaceholder
}

func (s *AssistantService) Transcribe(ctx context.Context, documentID string) string {
	rec := &domain.SpeechSession{
		DocumentID: documentID,
		Transcript: "Speech transcription will be implemented here",
		Duration:   0,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audits.CreateSpeechSession(ctx, rec); err != nil {
		logger.Sugar.Errorf("failed to record speech session for document %s: %v", documentID, err)
	}
	return TranscribePlaceholder
}

func (s *AssistantService) record(ctx context.Context, rec *domain.AIInteraction) {
	if err := s.audits.CreateInteraction(ctx, rec); err != nil {
		logger.Sugar.Errorf("failed to record %s interaction for document %s: %v",
			rec.InteractionType, rec.DocumentID, err)
	}
}
