package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/localstore"
	"github.com/Emman225/bos/internal/service"
)

// Login signs the user in and persists the session so a restart does not
// force a new login.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.svc.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.setCurrentUser(ctx, user)
	s.RefreshUsers(ctx)
	s.RefreshQuotes(ctx)
	return user, nil
}

// Logout clears both session copies; the server call inside the use case
// is best-effort.
func (s *Store) Logout(ctx context.Context) {
	s.svc.Auth.Logout(ctx)
	s.clearSession(ctx)
}

// RestoreSession reloads the persisted user; corrupt data degrades to a
// signed-out state.
func (s *Store) RestoreSession(ctx context.Context) {
	data, err := s.local.Get(ctx, localstore.KeySession)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			s.log.Warn("impossible de relire la session", zap.Error(err))
		}
		return
	}
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn("session persistée corrompue, ignorée", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.currentUser = &user
	s.mu.Unlock()
}

// ValidateSession probes /auth/me for a restored session and drops it
// when the server no longer recognizes the token.
func (s *Store) ValidateSession(ctx context.Context) {
	if s.CurrentUser() == nil {
		return
	}
	if _, err := s.svc.Auth.Probe(ctx); err != nil {
		s.log.Info("session expirée, déconnexion", zap.Error(err))
		s.clearSession(ctx)
	}
}

func (s *Store) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (*domain.User, error) {
	user, err := s.svc.Auth.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	s.setCurrentUser(ctx, user)
	return user, nil
}

func (s *Store) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*domain.User, error) {
	user, err := s.svc.Auth.UploadAvatar(ctx, fileName, file)
	if err != nil {
		return nil, err
	}
	s.setCurrentUser(ctx, user)
	return user, nil
}

func (s *Store) ChangePassword(ctx context.Context, currentPassword, password, confirmation string) error {
	return s.svc.Auth.ChangePassword(ctx, currentPassword, password, confirmation)
}

func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	return s.svc.Auth.ForgotPassword(ctx, email)
}

func (s *Store) ResetPassword(ctx context.Context, token, password, confirmation string) error {
	return s.svc.Auth.ResetPassword(ctx, token, password, confirmation)
}

func (s *Store) setCurrentUser(ctx context.Context, user *domain.User) {
	s.mu.Lock()
	s.currentUser = user
	s.mu.Unlock()

	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn("impossible de sérialiser la session", zap.Error(err))
		return
	}
	if err := s.local.Set(ctx, localstore.KeySession, data); err != nil {
		s.log.Warn("impossible de persister la session", zap.Error(err))
	}
}

func (s *Store) clearSession(ctx context.Context) {
	s.mu.Lock()
	s.currentUser = nil
	s.users = nil
	s.quotes = nil
	s.mu.Unlock()
	if err := s.local.Delete(ctx, localstore.KeySession); err != nil {
		s.log.Warn("impossible d'effacer la session persistée", zap.Error(err))
	}
}
