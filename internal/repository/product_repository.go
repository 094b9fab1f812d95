package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPIProductRepository(client *api.Client) *APIProductRepository {
	return &APIProductRepository{client: client}
}

type APIProductRepository struct {
	client *api.Client
}

func (r *APIProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.client.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *APIProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := r.client.Get(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *APIProductRepository) Save(ctx context.Context, product domain.Product) error {
	// The server assigns the id.
	product.ID = ""
	return r.client.Post(ctx, "/products", product, nil)
}

func (r *APIProductRepository) Update(ctx context.Context, id string, product domain.Product) error {
	product.ID = ""
	return r.client.Put(ctx, "/products/"+id, product, nil)
}

func (r *APIProductRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/products/"+id)
}
