package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

type QuoteService struct {
	repo repository.QuoteRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewQuoteService(repo repository.QuoteRepository, log *zap.Logger) *QuoteService {
	return &QuoteService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

func (s *QuoteService) GetAll(ctx context.Context) []domain.QuoteRequest {
	quotes, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des devis", zap.Error(err))
		return []domain.QuoteRequest{}
	}
	return quotes
}

func (s *QuoteService) GetByID(ctx context.Context, id string) (*domain.QuoteRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ValidationError("L'identifiant du devis est requis.")
	}
	quote, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("erreur lors du chargement du devis", zap.String("id", id), zap.Error(err))
		return nil, nil
	}
	return quote, nil
}

// Submit validates the cart and customer, stamps a fresh id and date, and
// sends the quote. The server is the system of record and re-derives the
// authoritative fields from its own data.
func (s *QuoteService) Submit(ctx context.Context, items []domain.QuoteItem, customer domain.Customer, notes string) (*domain.QuoteRequest, error) {
	if len(items) == 0 {
		return nil, ValidationError("Le devis doit contenir au moins un article.")
	}
	if strings.TrimSpace(customer.Name) == "" {
		return nil, ValidationError("Le nom du client est requis.")
	}
	if strings.TrimSpace(customer.Email) == "" {
		return nil, ValidationError("L'email du client est requis.")
	}

	quote := domain.QuoteRequest{
		ID:       s.newID(),
		Date:     s.now().Format("02/01/2006"),
		Customer: customer,
		Items:    append([]domain.QuoteItem(nil), items...),
		Status:   domain.QuoteStatusPending,
		Notes:    notes,
	}

	saved, err := s.repo.Save(ctx, quote)
	if err != nil {
		s.log.Error("erreur lors de la soumission du devis", zap.Error(err))
		return nil, err
	}
	return saved, nil
}

func (s *QuoteService) UpdateStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant du devis est requis.")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("erreur lors de la mise à jour du statut du devis", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *QuoteService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant du devis est requis.")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("erreur lors de la suppression du devis", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// newID yields "QT-<unix-ms>-<4 alphanumerics>".
func (s *QuoteService) newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("QT-%d-%s", s.now().UnixMilli(), suffix)
}
