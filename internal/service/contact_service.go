package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type ContactService struct {
	repo repository.ContactRepository
	log  *zap.Logger
}

func NewContactService(repo repository.ContactRepository, log *zap.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

func (s *ContactService) Send(ctx context.Context, message domain.ContactMessage) error {
	if strings.TrimSpace(message.Name) == "" {
		return ValidationError("Le nom est requis.")
	}
	if strings.TrimSpace(message.Email) == "" {
		return ValidationError("L'email est requis.")
	}
	if strings.TrimSpace(message.Message) == "" {
		return ValidationError("Le message est requis.")
	}
	if err := s.repo.Send(ctx, message); err != nil {
		s.log.Error("erreur lors de l'envoi du message de contact", zap.Error(err))
		return err
	}
	return nil
}

func (s *ContactService) GetAll(ctx context.Context) []domain.ContactMessage {
	messages, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des messages de contact", zap.Error(err))
		return []domain.ContactMessage{}
	}
	return messages
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant du message est requis.")
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		s.log.Error("erreur lors du marquage du message", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
