package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/localstore"
	"github.com/Emman225/bos/internal/service"
)

// Services groups the use-case layer the store drives.
type Services struct {
	Products   *service.ProductService
	Categories *service.CategoryService
	Quotes     *service.QuoteService
	Sessions   *service.SessionService
	Settings   *service.SettingsService
	Auth       *service.AuthService
	Contact    *service.ContactService
	AI         *service.AIService
}

// Store is the single writer of all cross-component state. Every action
// is atomic from invocation to resolution: collections are only replaced
// after the underlying call succeeded, never partially.
type Store struct {
	svc   Services
	local localstore.Store
	log   *zap.Logger

	// Dedupes concurrent refreshes of the same collection.
	sfg singleflight.Group

	mu           sync.RWMutex
	products     []domain.Product
	categories   []domain.Category
	quotes       []domain.QuoteRequest
	sessions     []domain.TrainingSession
	users        []domain.User
	contacts     []domain.ContactMessage
	settings     domain.Settings
	currentUser  *domain.User
	cart         []domain.QuoteItem
	notification *Notification
	notifyGen    uint64
	loading      bool

	errorNotifyTTL time.Duration
	notifyTTL      time.Duration
}

func New(svc Services, local localstore.Store, log *zap.Logger) *Store {
	return &Store{
		svc:            svc,
		local:          local,
		log:            log,
		loading:        true,
		errorNotifyTTL: 5 * time.Second,
		notifyTTL:      3 * time.Second,
	}
}

// Load fires the public-data refreshes concurrently; each one degrades
// independently, so a categories outage never hides the catalog. Admin
// data follows only when a user is signed in.
func (s *Store) Load(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { s.RefreshProducts(ctx); return nil })
	g.Go(func() error { s.RefreshCategories(ctx); return nil })
	g.Go(func() error { s.RefreshSessions(ctx); return nil })
	g.Go(func() error { s.RefreshSettings(ctx); return nil })
	g.Wait()

	if s.CurrentUser() != nil {
		s.RefreshUsers(ctx)
		s.RefreshQuotes(ctx)
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...)
}

func (s *Store) Quotes() []domain.QuoteRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.QuoteRequest(nil), s.quotes...)
}

func (s *Store) Sessions() []domain.TrainingSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TrainingSession(nil), s.sessions...)
}

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Store) Contacts() []domain.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ContactMessage(nil), s.contacts...)
}

func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *Store) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return nil
	}
	user := *s.currentUser
	return &user
}

// Recommend is a passthrough; the use case already guarantees a usable
// answer on failure.
func (s *Store) Recommend(ctx context.Context, userNeeds string) string {
	return s.svc.AI.Recommend(ctx, userNeeds)
}
