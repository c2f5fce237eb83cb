// cmd/api-server/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"unihub-api/internal/ai"
	"unihub-api/internal/api"
	"unihub-api/internal/catalog"
	"unihub-api/internal/common/config"
	"unihub-api/internal/common/database"
	"unihub-api/internal/common/logger"
	"unihub-api/internal/common/observability"
	"unihub-api/internal/portfolio"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Reference data ---
	cat, err := catalog.Load(cfg.Catalog.UniversitiesPath, cfg.Catalog.ProgramsPath, log)
	if err != nil {
		zapLog.Fatal("failed to load catalog", zap.Error(err))
	}

	// --- Storage ---
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pg.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := pg.Ping(pingCtx); err != nil {
		zapLog.Warn("postgres not reachable at startup", zap.Error(err))
	}
	cancelPing()

	var store portfolio.Store = portfolio.NewPostgresStore(pg.GetDB(), log)

	if cfg.Database.Redis.Address != "" {
		rdb, err := database.NewRedis(cfg.Database.Redis)
		if err != nil {
			zapLog.Warn("redis unavailable, serving without portfolio cache", zap.Error(err))
		} else {
			defer rdb.Close()
			ttl := time.Duration(cfg.Database.Redis.CacheTTL) * time.Second
			store = portfolio.NewCachedStore(store, rdb.GetClient(), ttl, log)
		}
	}

	// --- Provider chain: local model, then cloud, then canned fallback ---
	var providers []ai.Provider
	if cfg.AI.Local.Enabled {
		providers = append(providers, ai.NewLocalProvider(ai.LocalProviderOptions{
			BaseURL:         cfg.AI.Local.BaseURL,
			Model:           cfg.AI.Local.Model,
			HealthTimeout:   time.Duration(cfg.AI.Local.HealthTimeout) * time.Millisecond,
			GenerateTimeout: time.Duration(cfg.AI.Local.GenerateTimeout) * time.Millisecond,
			Logger:          log,
		}))
	}
	if cfg.AI.Gemini.Enabled {
		gemini, err := ai.NewGeminiProvider(context.Background(), ai.GeminiProviderOptions{
			APIKey:  cfg.AI.Gemini.APIKey,
			Model:   cfg.AI.Gemini.Model,
			Timeout: time.Duration(cfg.AI.Gemini.Timeout) * time.Millisecond,
			Logger:  log,
		})
		if err != nil {
			zapLog.Warn("gemini provider disabled", zap.Error(err))
		} else {
			providers = append(providers, gemini)
		}
	}
	chain := ai.NewChain(ai.ChainOptions{
		Providers:         providers,
		MinResponseLength: cfg.AI.MinResponseLength,
		Logger:            log,
	})

	// --- HTTP server ---
	handlers := api.NewHandlers(cat, store, chain, log)
	server := api.NewServer(cfg.Server, handlers, log, obs)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error during shutdown", zap.Error(err))
	}

	zapLog.Info("api server stopped gracefully")
}
