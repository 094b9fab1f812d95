package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type SessionService struct {
	repo repository.SessionRepository
	log  *zap.Logger
}

func NewSessionService(repo repository.SessionRepository, log *zap.Logger) *SessionService {
	return &SessionService{repo: repo, log: log}
}

func (s *SessionService) GetAll(ctx context.Context) []domain.TrainingSession {
	sessions, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des sessions", zap.Error(err))
		return []domain.TrainingSession{}
	}
	return sessions
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ValidationError("L'identifiant de la session est requis.")
	}
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("erreur lors du chargement de la session", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return session, nil
}

func (s *SessionService) Create(ctx context.Context, session domain.TrainingSession) error {
	if strings.TrimSpace(session.Subject) == "" {
		return ValidationError("Le sujet de la session est requis.")
	}
	if strings.TrimSpace(session.Module) == "" {
		return ValidationError("Le module est requis.")
	}
	if strings.TrimSpace(session.Date) == "" {
		return ValidationError("La date est requise.")
	}
	if err := s.repo.Save(ctx, session); err != nil {
		s.log.Error("erreur lors de la création de la session", zap.Error(err))
		return err
	}
	return nil
}

func (s *SessionService) Update(ctx context.Context, id string, session domain.TrainingSession) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant de la session est requis.")
	}
	if strings.TrimSpace(session.Subject) == "" {
		return ValidationError("Le sujet de la session est requis.")
	}
	if err := s.repo.Update(ctx, id, session); err != nil {
		s.log.Error("erreur lors de la mise à jour de la session", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant de la session est requis.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("erreur lors de la suppression de la session", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
