package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printshop/printshop/internal/cache"
	"github.com/printshop/printshop/internal/catalog"
	"github.com/printshop/printshop/internal/config"
	"github.com/printshop/printshop/internal/db"
	"github.com/printshop/printshop/internal/handlers"
	"github.com/printshop/printshop/internal/logging"
	"github.com/printshop/printshop/internal/observability"
	"github.com/printshop/printshop/internal/pricing"
	"github.com/printshop/printshop/internal/services"
)

// Version is set at build time with -ldflags.
var Version = "dev"

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	DB            *pgxpool.Pool
	CacheProvider cache.Provider
	Handlers      *handlers.Handlers

	sentryEnabled bool
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	sentryEnabled, err := observability.InitSentry(observability.SentryOptions{
		DSN:              cfg.SentryDSN,
		Environment:      cfg.SentryEnvironment,
		Release:          Version,
		TracesSampleRate: cfg.SentryTracesSampleRate,
	})
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stdout, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Sentry: sentryEnabled,
	})

	a := &App{
		Config:        cfg,
		Logger:        logger,
		sentryEnabled: sentryEnabled,
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	source, err := a.catalogSource(startupCtx)
	if err != nil {
		a.Close()
		return nil, err
	}

	cacheProvider, err := cache.NewProvider(cache.Config{
		Provider:              cfg.CacheProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize cache provider: %w", err)
	}
	a.CacheProvider = cacheProvider

	cachedSource, err := catalog.NewCachedSource(source, cacheProvider, cfg.CatalogCacheTTL, logger.With("component", "catalog"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize catalog cache: %w", err)
	}

	quoteService, err := services.NewQuoteService(cachedSource, pricing.NewEngine(), cfg.QuoteTolerance(), logger.With("component", "quote_service"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize quote service: %w", err)
	}

	if _, err := quoteService.CheckCatalog(startupCtx); err != nil {
		a.Close()
		return nil, fmt.Errorf("initial catalog load failed: %w", err)
	}

	h, err := handlers.New(handlers.Dependencies{
		Config:       cfg,
		QuoteService: quoteService,
		Logger:       logger,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}
	a.Handlers = h

	logger.Info("app initialized",
		"catalog_source", cfg.CatalogSource,
		"cache_provider", cfg.CacheProvider,
		"sentry", sentryEnabled,
		"version", Version,
	)

	return a, nil
}

func (a *App) catalogSource(ctx context.Context) (catalog.Source, error) {
	switch a.Config.CatalogSource {
	case "postgres":
		database, err := db.Connect(ctx, a.Config.DatabaseURL, db.Options{MaxConns: 4})
		if err != nil {
			return nil, err
		}
		a.DB = database
		source, err := catalog.NewPostgresSource(database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres catalog: %w", err)
		}
		return source, nil
	default:
		source, err := catalog.NewFileSource(a.Config.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file catalog: %w", err)
		}
		return source, nil
	}
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.CacheProvider != nil {
		closeCacheProvider(a.Logger, a.CacheProvider)
	}
	if a.DB != nil {
		a.DB.Close()
	}
	if a.sentryEnabled {
		observability.Flush(2 * time.Second)
	}
}

func closeCacheProvider(logger *slog.Logger, provider cache.Provider) {
	if provider == nil {
		return
	}
	if err := provider.Close(); err != nil && logger != nil {
		logger.Warn("failed to close cache provider", "error", err)
	}
}
