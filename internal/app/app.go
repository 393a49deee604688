// Package app assembles and runs the backend: configuration, logging,
// storage, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/ofirgaash1/engsub/internal/adapter/postgres"
	"github.com/ofirgaash1/engsub/internal/adapter/postgres/subfile"
	"github.com/ofirgaash1/engsub/internal/adapter/postgres/word"
	"github.com/ofirgaash1/engsub/internal/adapter/redis"
	"github.com/ofirgaash1/engsub/internal/config"
	"github.com/ofirgaash1/engsub/internal/freq"
	"github.com/ofirgaash1/engsub/internal/service/impex"
	"github.com/ofirgaash1/engsub/internal/service/library"
	"github.com/ofirgaash1/engsub/internal/service/quote"
	"github.com/ofirgaash1/engsub/internal/service/vocabulary"
	"github.com/ofirgaash1/engsub/internal/subtitle/parsework"
	"github.com/ofirgaash1/engsub/internal/transport/middleware"
	"github.com/ofirgaash1/engsub/internal/transport/rest"
)

// Run assembles the application and serves HTTP until ctx is cancelled,
// then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, logger, cfg.Database); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	cache, err := redis.NewCueCache(ctx, cfg.Redis, logger)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer cache.Close() //nolint:errcheck

	parsePool := parsework.NewPool(logger, cfg.Subtitle.Workers, cfg.Subtitle.QueueSize)
	defer parsePool.Close()

	// Repositories.
	wordRepo := word.New(pool)
	fileRepo := subfile.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	libraryService := library.NewService(fileRepo, txManager, parsePool, cache, logger)
	vocabularyService := vocabulary.NewService(logger, wordRepo, libraryService, freq.NewTable())
	quoteService := quote.NewService(wordRepo, libraryService, cfg.Quotes, logger)
	impexService := impex.NewService(wordRepo, fileRepo, logger)

	// HTTP surface.
	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, cache, BuildVersion()),
		Subtitles: rest.NewSubtitleHandler(libraryService, cfg.Subtitle.MaxUploadBytes, logger),
		Words:     rest.NewWordHandler(vocabularyService, logger),
		Quotes:    rest.NewQuoteHandler(quoteService, logger),
		Impex:     rest.NewImpexHandler(impexService, logger),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
