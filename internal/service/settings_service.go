package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type SettingsService struct {
	repo repository.SettingsRepository
	log  *zap.Logger
}

func NewSettingsService(repo repository.SettingsRepository, log *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

// Get degrades to the default settings (prices hidden) on any failure.
func (s *SettingsService) Get(ctx context.Context) domain.Settings {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des paramètres", zap.Error(err))
		return domain.Settings{ShowProductPrices: false}
	}
	return settings
}

func (s *SettingsService) Update(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	settings, err := s.repo.Update(ctx, update)
	if err != nil {
		s.log.Error("erreur lors de la mise à jour des paramètres", zap.Error(err))
		return domain.Settings{}, err
	}
	return settings, nil
}
