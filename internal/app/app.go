package app

import (
	"fmt"

	gateway "assistant-client/internal/adapters/input/http"
	"assistant-client/internal/adapters/output/api"
	"assistant-client/internal/adapters/output/mock"
	"assistant-client/internal/adapters/output/persistence"
	"assistant-client/internal/domain/service"
	"assistant-client/internal/domain/translator"
	"assistant-client/internal/infrastructure/config"
	"assistant-client/internal/infrastructure/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the wired components of the client.
type App struct {
	Config     *config.Config
	Log        *zap.Logger
	Metrics    *metrics.Metrics
	DB         *gorm.DB
	Cache      *persistence.CacheRepository
	Auth       *persistence.AuthRepository
	Provider   *api.ClientProvider
	API        *api.Client
	Repository *service.Repository
	Control    *service.ThingControl
}

func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	db, err := persistence.Open(cfg.Cache.Path, log)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	cache := persistence.NewCacheRepository(db)
	auth := persistence.NewAuthRepository(db)

	providerCfg := api.ProviderConfig{
		DefaultURL: cfg.Server.URL,
		Timeout:    cfg.Server.Timeout,
	}
	if cfg.Mock.Enabled {
		matcher, err := mock.NewRequestMatcher()
		if err != nil {
			_ = persistence.Close(db)
			return nil, fmt.Errorf("load mock fixtures: %w", err)
		}
		providerCfg.Transport = mock.NewTransport(matcher, cfg.Mock.ErrorToken, log)
		log.Info("requests are served by the mocking interceptor")
	}

	provider := api.NewClientProvider(auth, providerCfg, log, m)
	client := api.NewClient(provider, log)
	repo := service.NewRepository(client, cache, auth, provider, log, m)
	control := service.NewThingControl(repo, translator.NewFactory(&cfg.Translator))

	return &App{
		Config:     cfg,
		Log:        log,
		Metrics:    m,
		DB:         db,
		Cache:      cache,
		Auth:       auth,
		Provider:   provider,
		API:        client,
		Repository: repo,
		Control:    control,
	}, nil
}

func (a *App) Gateway() *gateway.Server {
	return gateway.NewServer(a.Repository, a.Control, a.Metrics, a.Log)
}

func (a *App) Close() error {
	a.Provider.Delete()
	// Sync returns EINVAL for stderr on Linux.
	_ = a.Log.Sync()
	return persistence.Close(a.DB)
}
