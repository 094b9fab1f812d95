package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPIContactRepository(client *api.Client) *APIContactRepository {
	return &APIContactRepository{client: client}
}

type APIContactRepository struct {
	client *api.Client
}

func (r *APIContactRepository) Send(ctx context.Context, message domain.ContactMessage) error {
	message.ID = ""
	message.Read = false
	return r.client.Post(ctx, "/contact", message, nil)
}

func (r *APIContactRepository) GetAll(ctx context.Context) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	if err := r.client.Get(ctx, "/contact", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *APIContactRepository) MarkRead(ctx context.Context, id string) error {
	return r.client.Patch(ctx, "/contact/"+id+"/read", map[string]bool{"read": true}, nil)
}
