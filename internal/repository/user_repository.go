package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPIUserRepository(client *api.Client) *APIUserRepository {
	return &APIUserRepository{client: client}
}

type APIUserRepository struct {
	client *api.Client
}

func (r *APIUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.client.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *APIUserRepository) Save(ctx context.Context, user domain.User) error {
	return r.client.Post(ctx, "/users", user, nil)
}

func (r *APIUserRepository) Update(ctx context.Context, id string, user domain.User) error {
	return r.client.Put(ctx, "/users/"+id, user, nil)
}

func (r *APIUserRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/users/"+id)
}
