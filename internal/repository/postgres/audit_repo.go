package postgres

import (
	"context"

	"github.com/nikov/simplenote-backend/internal/domain"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *auditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) CreateInteraction(ctx context.Context, rec *domain.AIInteraction) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *auditRepository) CreateSpeechSession(ctx context.Context, rec *domain.SpeechSession) error {
	return r.db.WithContext(ctx).Create(rec).Error
}
