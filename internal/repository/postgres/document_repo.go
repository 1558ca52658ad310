package postgres

import (
	"context"
	"time"

	"github.com/nikov/simplenote-backend/internal/domain"
	"gorm.io/gorm"
)

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *documentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, userID, id string) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.WithContext(ctx).
		First(&doc, "id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Document, error) {
	var docs []*domain.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("updated_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Update writes title, content and updated_at for the owner's live document
// and reports how many rows matched. Zero rows means absent, foreign or
// already deleted.
func (r *documentRepository) Update(ctx context.Context, doc *domain.Document) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", doc.ID, doc.UserID, false).
		Updates(map[string]interface{}{
			"title":      doc.Title,
			"content":    doc.Content,
			"updated_at": doc.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *documentRepository) SoftDelete(ctx context.Context, userID, id string, deletedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Document{}).
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": deletedAt,
		})
	return res.RowsAffected, res.Error
}
