package repository

import (
	"context"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
)

func NewAPIQuoteRepository(client *api.Client) *APIQuoteRepository {
	return &APIQuoteRepository{client: client}
}

type APIQuoteRepository struct {
	client *api.Client
}

// quoteItemPayload is the wire shape of one line: the server re-derives
// product details from the id, so only id and quantity travel.
type quoteItemPayload struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type quotePayload struct {
	Customer domain.Customer    `json:"customer"`
	Items    []quoteItemPayload `json:"items"`
	Notes    string             `json:"notes,omitempty"`
}

func (r *APIQuoteRepository) GetAll(ctx context.Context) ([]domain.QuoteRequest, error) {
	var quotes []domain.QuoteRequest
	if err := r.client.Get(ctx, "/quotes", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *APIQuoteRepository) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	var quote domain.QuoteRequest
	if err := r.client.Get(ctx, "/quotes/"+id, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *APIQuoteRepository) Save(ctx context.Context, quote domain.QuoteRequest) (*domain.QuoteRequest, error) {
	payload := quotePayload{
		Customer: quote.Customer,
		Items:    make([]quoteItemPayload, len(quote.Items)),
		Notes:    quote.Notes,
	}
	for i, item := range quote.Items {
		payload.Items[i] = quoteItemPayload{ProductID: item.Product.ID, Quantity: item.Quantity}
	}

	var saved domain.QuoteRequest
	if err := r.client.Post(ctx, "/quotes", payload, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *APIQuoteRepository) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	body := map[string]domain.QuoteStatus{"status": status}
	return r.client.Patch(ctx, "/quotes/"+id+"/status", body, nil)
}

func (r *APIQuoteRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/quotes/"+id)
}
