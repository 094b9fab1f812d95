package store

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/localstore"
)

// Cart returns a snapshot of the current quote lines.
func (s *Store) Cart() []domain.QuoteItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.QuoteItem(nil), s.cart...)
}

func (s *Store) AddToQuote(ctx context.Context, product domain.Product) {
	s.mu.Lock()
	s.cart = domain.AddItem(s.cart, product)
	s.mu.Unlock()
	s.persistCart(ctx)
}

func (s *Store) RemoveFromQuote(ctx context.Context, productID string) {
	s.mu.Lock()
	s.cart = domain.RemoveItem(s.cart, productID)
	s.mu.Unlock()
	s.persistCart(ctx)
}

func (s *Store) UpdateItemQuantity(ctx context.Context, productID string, delta int) {
	s.mu.Lock()
	s.cart = domain.UpdateQuantity(s.cart, productID, delta)
	s.mu.Unlock()
	s.persistCart(ctx)
}

func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	s.persistCart(ctx)
}

// RestoreCart reloads the last persisted cart; corrupt or missing data
// degrades to an empty cart.
func (s *Store) RestoreCart(ctx context.Context) {
	data, err := s.local.Get(ctx, localstore.KeyCart)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			s.log.Warn("impossible de relire le panier", zap.Error(err))
		}
		return
	}
	var cart []domain.QuoteItem
	if err := json.Unmarshal(data, &cart); err != nil {
		s.log.Warn("panier persisté corrompu, repart à vide", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
}

// persistCart mirrors every cart mutation to the local store so a
// restart picks up where the user left off.
func (s *Store) persistCart(ctx context.Context) {
	cart := s.Cart()
	if cart == nil {
		cart = []domain.QuoteItem{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		s.log.Warn("impossible de sérialiser le panier", zap.Error(err))
		return
	}
	if err := s.local.Set(ctx, localstore.KeyCart, data); err != nil {
		s.log.Warn("impossible de persister le panier", zap.Error(err))
	}
}

// SubmitQuote sends the current cart. Only after the server accepted the
// quote does the cart get cleared and the quote list refreshed, in that
// order; on failure the cart is left intact for a retry.
func (s *Store) SubmitQuote(ctx context.Context, customer domain.Customer, notes string) error {
	if _, err := s.svc.Quotes.Submit(ctx, s.Cart(), customer, notes); err != nil {
		return err
	}
	s.ClearCart(ctx)
	s.RefreshQuotes(ctx)
	return nil
}

// UpdateQuoteStatus never mutates locally: the refreshed list is the only
// source of the new status.
func (s *Store) UpdateQuoteStatus(ctx context.Context, id string, status domain.QuoteStatus) error {
	if err := s.svc.Quotes.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.RefreshQuotes(ctx)
	return nil
}

func (s *Store) DeleteQuote(ctx context.Context, id string) error {
	if err := s.svc.Quotes.Delete(ctx, id); err != nil {
		return err
	}
	s.RefreshQuotes(ctx)
	return nil
}
