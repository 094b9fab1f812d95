package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/config"
	"github.com/Emman225/bos/internal/localstore"
	"github.com/Emman225/bos/internal/repository"
	"github.com/Emman225/bos/internal/router"
	"github.com/Emman225/bos/internal/service"
	"github.com/Emman225/bos/internal/store"
)

func main() {
	cfg := config.Load()
	if !cfg.Production() {
		godotenv.Load()
		cfg = config.Load()
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	local := newLocalStore(ctx, cfg, logger)
	client := api.NewClient(cfg.APIBaseURL, local, logger)

	svc := store.Services{
		Products:   service.NewProductService(repository.NewAPIProductRepository(client), logger),
		Categories: service.NewCategoryService(repository.NewAPICategoryRepository(client), logger),
		Quotes:     service.NewQuoteService(repository.NewAPIQuoteRepository(client), logger),
		Sessions:   service.NewSessionService(repository.NewAPISessionRepository(client), logger),
		Settings:   service.NewSettingsService(repository.NewAPISettingsRepository(client), logger),
		Auth:       service.NewAuthService(client, repository.NewAPIUserRepository(client), logger),
		Contact:    service.NewContactService(repository.NewAPIContactRepository(client), logger),
		AI:         service.NewAIService(repository.NewAPIAIService(client), logger),
	}

	app := store.New(svc, local, logger)
	nav := router.New(router.NewMemoryHistory(), router.WithScrollToTop(func() {}))

	// Same startup order as the browser app: restore what the last run
	// persisted, check the session against the server, then load data.
	app.RestoreCart(ctx)
	app.RestoreSession(ctx)
	app.ValidateSession(ctx)
	app.Load(ctx)
	nav.ResolveInitial("/")

	page, _ := nav.Current()
	logger.Info("storefront prêt",
		zap.String("api", cfg.APIBaseURL),
		zap.String("page", string(page)),
		zap.Int("produits", len(app.Products())),
		zap.Int("catégories", len(app.Categories())),
		zap.Int("sessions", len(app.Sessions())),
		zap.Bool("connecté", app.CurrentUser() != nil),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("arrêt du storefront")
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newLocalStore tries Redis first; when it is unreachable the run keeps
// going with in-memory persistence, losing only cross-restart state.
func newLocalStore(ctx context.Context, cfg config.Config, logger *zap.Logger) localstore.Store {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: config.RedisDialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis injoignable, persistance en mémoire", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		client.Close()
		return localstore.NewMemoryStore()
	}
	logger.Info("persistance locale sur redis", zap.String("addr", cfg.RedisAddr))
	return localstore.NewRedisStore(client)
}
