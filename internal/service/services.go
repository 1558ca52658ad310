package service

import (
	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/nikov/simplenote-backend/internal/repository"
)

type Services struct {
	Auth      *AuthService
	Document  *DocumentService
	Assistant *AssistantService
}

func NewServices(repos *repository.Repositories, tokens *auth.TokenCodec) *Services {
	return &Services{
		Auth:      NewAuthService(repos.User, tokens),
		Document:  NewDocumentService(repos.Document),
		Assistant: NewAssistantService(repos.Audit),
	}
}
