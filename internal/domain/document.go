package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Document is a single note. IDs are supplied by the client and globally
// unique across all owners. OwnerID never changes after creation. Deletion
// is a soft flag: deleted documents are invisible to every read path and
// behave as if they never existed.
type Document struct {
	ID        string         `json:"id" gorm:"primaryKey;size:255"`
	UserID    string         `json:"user_id" gorm:"size:255;index;not null"`
	Title     string         `json:"title" gorm:"not null"`
	Content   datatypes.JSON `json:"content" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"index:idx_documents_updated_at,sort:desc"`
	IsDeleted bool           `json:"is_deleted" gorm:"not null;default:false;index"`
}
