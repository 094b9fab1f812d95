package repository

import (
	"context"

	"github.com/Emman225/bos/internal/domain"
)

// Ports consumed by the use-case layer. Adapters are stateless
// translators: they hold no state between calls and do no validation.

type ProductRepository interface {
	GetAll(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, id string, product domain.Product) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, id string, category domain.Category) error
	Delete(ctx context.Context, id string) error
}

type QuoteRepository interface {
	GetAll(ctx context.Context) ([]domain.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error)
	Save(ctx context.Context, quote domain.QuoteRequest) (*domain.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error
	Delete(ctx context.Context, id string) error
}

type SessionRepository interface {
	GetAll(ctx context.Context) ([]domain.TrainingSession, error)
	GetByID(ctx context.Context, id string) (*domain.TrainingSession, error)
	Save(ctx context.Context, session domain.TrainingSession) error
	Update(ctx context.Context, id string, session domain.TrainingSession) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, user domain.User) error
	Update(ctx context.Context, id string, user domain.User) error
	Delete(ctx context.Context, id string) error
}

type ContactRepository interface {
	Send(ctx context.Context, message domain.ContactMessage) error
	GetAll(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

// AIService returns a product recommendation for free-form customer needs.
type AIService interface {
	Recommend(ctx context.Context, userNeeds string) (string, error)
}
