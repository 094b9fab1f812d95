package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPISettingsRepository(client *api.Client) *APISettingsRepository {
	return &APISettingsRepository{client: client}
}

type APISettingsRepository struct {
	client *api.Client
}

func (r *APISettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	var settings domain.Settings
	if err := r.client.Get(ctx, "/settings", &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}

func (r *APISettingsRepository) Update(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	var settings domain.Settings
	if err := r.client.Put(ctx, "/settings", update, &settings); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
