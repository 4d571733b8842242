package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/eletropro/app-core/internal/cache"
	"github.com/eletropro/app-core/internal/config"
	"github.com/eletropro/app-core/internal/scheduler"
	"github.com/eletropro/app-core/internal/server/handlers"
	"github.com/eletropro/app-core/internal/server/router"
	authsvc "github.com/eletropro/app-core/internal/service/auth"
	budgetsvc "github.com/eletropro/app-core/internal/service/budget"
	catalogsvc "github.com/eletropro/app-core/internal/service/catalog"
	clientsvc "github.com/eletropro/app-core/internal/service/clientbook"
	materiallistsvc "github.com/eletropro/app-core/internal/service/materiallist"
	"github.com/eletropro/app-core/pkg/clients/eletropro"
	"github.com/eletropro/app-core/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, closeStore, err := newStore(context.Background(), cfg)
	if err != nil {
		baseLogger.Fatal("failed to init cache store", zap.Error(err))
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			baseLogger.Error("failed to close cache store", zap.Error(err))
		}
	}()

	sessions := authsvc.NewSessionStore(store)
	apiClient := eletropro.NewClient(eletropro.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, sessions, baseLogger.Named("client.eletropro"))

	authService := authsvc.NewService(apiClient, sessions, baseLogger.Named("svc.auth"))
	budgetService := budgetsvc.NewService(apiClient, store, baseLogger.Named("svc.budget"))
	materialListService := materiallistsvc.NewService(apiClient, store, baseLogger.Named("svc.materiallist"))
	catalogService := catalogsvc.NewService(apiClient, store, baseLogger.Named("svc.catalog"))
	clientService := clientsvc.NewService(apiClient, store, baseLogger.Named("svc.client"))

	dashboardHandler := handlers.NewDashboardHandler(budgetService, materialListService, baseLogger.Named("handlers.dashboard"))
	referenceHandler := handlers.NewReferenceHandler(catalogService, clientService, baseLogger.Named("handlers.reference"))
	sessionHandler := handlers.NewSessionHandler(authService, baseLogger.Named("handlers.session"))
	engine := router.New(dashboardHandler, referenceHandler, sessionHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(store, cfg.Cache.SweepSchedule, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore builds the configured cache backend. The returned close function
// is a no-op for backends without a connection to release.
func newStore(ctx context.Context, cfg *config.Config) (cache.Store, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryStore(), noop, nil
	case "file":
		store, err := cache.NewFileStore(cfg.Cache.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case "mongo":
		store, err := cache.NewMongoStore(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, errors.New("unknown cache backend " + cfg.Cache.Backend)
	}
}
