package store

import (
	"context"

	"github.com/Emman225/bos/internal/domain"
)

// Refreshes go through singleflight: two pages asking for the same
// collection at once trigger a single fetch.

func (s *Store) RefreshProducts(ctx context.Context) {
	s.sfg.Do("products", func() (any, error) {
		data := s.svc.Products.GetAll(ctx)
		s.mu.Lock()
		s.products = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshCategories(ctx context.Context) {
	s.sfg.Do("categories", func() (any, error) {
		data := s.svc.Categories.GetAll(ctx)
		s.mu.Lock()
		s.categories = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshQuotes(ctx context.Context) {
	s.sfg.Do("quotes", func() (any, error) {
		data := s.svc.Quotes.GetAll(ctx)
		s.mu.Lock()
		s.quotes = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshSessions(ctx context.Context) {
	s.sfg.Do("sessions", func() (any, error) {
		data := s.svc.Sessions.GetAll(ctx)
		s.mu.Lock()
		s.sessions = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshSettings(ctx context.Context) {
	s.sfg.Do("settings", func() (any, error) {
		data := s.svc.Settings.Get(ctx)
		s.mu.Lock()
		s.settings = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshUsers(ctx context.Context) {
	s.sfg.Do("users", func() (any, error) {
		data := s.svc.Auth.GetAllUsers(ctx)
		s.mu.Lock()
		s.users = data
		s.mu.Unlock()
		return nil, nil
	})
}

func (s *Store) RefreshContacts(ctx context.Context) {
	s.sfg.Do("contacts", func() (any, error) {
		data := s.svc.Contact.GetAll(ctx)
		s.mu.Lock()
		s.contacts = data
		s.mu.Unlock()
		return nil, nil
	})
}

// Writes refresh their collection only once the server confirmed.

func (s *Store) CreateProduct(ctx context.Context, product domain.Product) error {
	if err := s.svc.Products.Create(ctx, product); err != nil {
		return err
	}
	s.RefreshProducts(ctx)
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, product domain.Product) error {
	if err := s.svc.Products.Update(ctx, id, product); err != nil {
		return err
	}
	s.RefreshProducts(ctx)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.svc.Products.Delete(ctx, id); err != nil {
		return err
	}
	s.RefreshProducts(ctx)
	return nil
}

func (s *Store) CreateCategory(ctx context.Context, category domain.Category) error {
	if err := s.svc.Categories.Create(ctx, category); err != nil {
		return err
	}
	s.RefreshCategories(ctx)
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, category domain.Category) error {
	if err := s.svc.Categories.Update(ctx, id, category); err != nil {
		return err
	}
	s.RefreshCategories(ctx)
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	if err := s.svc.Categories.Delete(ctx, id); err != nil {
		return err
	}
	s.RefreshCategories(ctx)
	return nil
}

func (s *Store) CreateSession(ctx context.Context, session domain.TrainingSession) error {
	if err := s.svc.Sessions.Create(ctx, session); err != nil {
		return err
	}
	s.RefreshSessions(ctx)
	return nil
}

func (s *Store) UpdateSession(ctx context.Context, id string, session domain.TrainingSession) error {
	if err := s.svc.Sessions.Update(ctx, id, session); err != nil {
		return err
	}
	s.RefreshSessions(ctx)
	return nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if err := s.svc.Sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.RefreshSessions(ctx)
	return nil
}

// UpdateSettings keeps the server echo rather than refreshing: the reply
// already carries the authoritative state.
func (s *Store) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) error {
	settings, err := s.svc.Settings.Update(ctx, update)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	if err := s.svc.Auth.CreateUser(ctx, user); err != nil {
		return err
	}
	s.RefreshUsers(ctx)
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, user domain.User) error {
	if err := s.svc.Auth.UpdateUser(ctx, id, user); err != nil {
		return err
	}
	s.RefreshUsers(ctx)
	return nil
}

// DeleteUser reports false when the last-admin guard blocked the removal.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	ok, err := s.svc.Auth.DeleteUser(ctx, id)
	if err != nil || !ok {
		return ok, err
	}
	s.RefreshUsers(ctx)
	return true, nil
}

func (s *Store) SendContactMessage(ctx context.Context, message domain.ContactMessage) error {
	return s.svc.Contact.Send(ctx, message)
}

func (s *Store) MarkContactRead(ctx context.Context, id string) error {
	if err := s.svc.Contact.MarkRead(ctx, id); err != nil {
		return err
	}
	s.RefreshContacts(ctx)
	return nil
}
