package domain

import "time"

// AIInteraction is an append-only audit row for the assistant endpoints.
// Nothing in the service reads these back.
type AIInteraction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DocumentID      string    `json:"document_id" gorm:"size:255;index;not null"`
	InteractionType string    `json:"interaction_type" gorm:"size:100;not null"`
	InputText       string    `json:"input_text"`
	OutputText      string    `json:"output_text"`
	CreatedAt       time.Time `json:"created_at"`
}

// SpeechSession is an append-only audit row for voice transcription requests.
type SpeechSession struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	DocumentID string    `json:"document_id" gorm:"size:255;index;not null"`
	Transcript string    `json:"transcript"`
	Duration   int       `json:"duration"`
	CreatedAt  time.Time `json:"created_at"`
}
