package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPICategoryRepository(client *api.Client) *APICategoryRepository {
	return &APICategoryRepository{client: client}
}

type APICategoryRepository struct {
	client *api.Client
}

func (r *APICategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := r.client.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *APICategoryRepository) Save(ctx context.Context, category domain.Category) error {
	category.ID = ""
	return r.client.Post(ctx, "/categories", category, nil)
}

func (r *APICategoryRepository) Update(ctx context.Context, id string, category domain.Category) error {
	category.ID = ""
	return r.client.Put(ctx, "/categories/"+id, category, nil)
}

func (r *APICategoryRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/categories/"+id)
}
