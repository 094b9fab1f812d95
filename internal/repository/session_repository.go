package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPISessionRepository(client *api.Client) *APISessionRepository {
	return &APISessionRepository{client: client}
}

type APISessionRepository struct {
	client *api.Client
}

func (r *APISessionRepository) GetAll(ctx context.Context) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	if err := r.client.Get(ctx, "/sessions", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *APISessionRepository) GetByID(ctx context.Context, id string) (*domain.TrainingSession, error) {
	var session domain.TrainingSession
	if err := r.client.Get(ctx, "/sessions/"+id, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *APISessionRepository) Save(ctx context.Context, session domain.TrainingSession) error {
	session.ID = ""
	return r.client.Post(ctx, "/sessions", session, nil)
}

func (r *APISessionRepository) Update(ctx context.Context, id string, session domain.TrainingSession) error {
	session.ID = ""
	return r.client.Put(ctx, "/sessions/"+id, session, nil)
}

func (r *APISessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/sessions/"+id)
}
