package repository

import (
	"context"
	"time"

	"github.com/nikov/simplenote-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// DocumentRepository scopes every read and write by owner. The affected-row
// counts from Update and SoftDelete are how the service distinguishes a
// successful mutation from an absent, foreign or already-deleted document.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, userID, id string) (*domain.Document, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Document, error)
	Update(ctx context.Context, doc *domain.Document) (int64, error)
	SoftDelete(ctx context.Context, userID, id string, deletedAt time.Time) (int64, error)
}

// AuditRepository is append-only; there is no read path.
type AuditRepository interface {
	CreateInteraction(ctx context.Context, rec *domain.AIInteraction) error
	CreateSpeechSession(ctx context.Context, rec *domain.SpeechSession) error
}

type Repositories struct {
	User     UserRepository
	Document DocumentRepository
	Audit    AuditRepository
}
