package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/screwyprof/tokenscout/lookup"
	"github.com/screwyprof/tokenscout/pkg/logger"
	"github.com/screwyprof/tokenscout/pkg/pagefetch"
	"github.com/screwyprof/tokenscout/pkg/ratelimit"
	"github.com/screwyprof/tokenscout/web"
	"github.com/screwyprof/tokenscout/web/config"
)

var (
	version = "dev"
	date    = "unknown"
)

func main() {
	// Load configuration
	cfg := config.New()

	// Initialize logger and set as default
	log := logger.NewFromConfig(logger.Config{
		LogLevel:         cfg.LogLevel,
		LogHumanFriendly: cfg.LogHumanFriendly,
		Service:          "tokenscout",
	})
	slog.SetDefault(log)

	// Prepare context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.InfoContext(ctx, "Token Lookup Service starting",
		slog.String("version", version),
		slog.String("date", date),
	)

	catalog, err := loadCatalog(cfg.Lookup.SourcesFile)
	if err != nil {
		log.ErrorContext(ctx, "Failed to load source catalog", slog.Any("error", err))
		os.Exit(1)
	}
	log.InfoContext(ctx, "Source catalog loaded", slog.Int("sources", len(catalog)))

	client := pagefetch.NewClient(&http.Client{},
		pagefetch.WithTimeout(cfg.Lookup.FetchTimeout),
		pagefetch.WithUserAgent(cfg.Lookup.UserAgent),
		pagefetch.WithMaxBodyBytes(cfg.Lookup.MaxBodyBytes),
	)

	service := lookup.NewService(
		lookup.NewFetcher(client, catalog),
		lookup.WithObserver(newLookupLogger(log)),
	)

	limiter := ratelimit.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	if !limiter.Enabled() {
		log.WarnContext(ctx, "Rate limiting disabled")
	}

	handler := web.NewHandler(web.Deps{
		Looker:         service,
		Limiter:        limiter,
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create server address
	addr := net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Start server in a goroutine
	go func() {
		log.InfoContext(ctx, "Server started", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Server failed to start", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.InfoContext(ctx, "Shutting down server...")

	// Give outstanding lookups time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Server forced to shutdown", slog.Any("error", err))
		os.Exit(1)
	}

	log.InfoContext(ctx, "Server exited gracefully")
}

func loadCatalog(path string) (lookup.Catalog, error) {
	if path == "" {
		return lookup.DefaultCatalog(), nil
	}
	return lookup.LoadCatalog(path)
}

// newLookupLogger turns lookup events into log lines
func newLookupLogger(log *slog.Logger) lookup.Observer {
	return lookup.NewSubscriber(
		lookup.OnSourceFetched(func(e lookup.SourceFetched) {
			log.Debug("Source fetched",
				slog.String("address", e.Address),
				slog.String("source", e.Source),
				slog.String("url", e.URL),
				slog.Int("bytes", e.Bytes),
				slog.Duration("duration", e.Duration),
			)
		}),
		lookup.OnSourceFailed(func(e lookup.SourceFailed) {
			log.Warn("Source fetch failed",
				slog.String("address", e.Address),
				slog.String("source", e.Source),
				slog.String("url", e.URL),
				slog.Any("error", e.Err),
				slog.Duration("duration", e.Duration),
			)
		}),
		lookup.OnLookupCompleted(func(e lookup.LookupCompleted) {
			log.Info("Lookup completed",
				slog.String("address", e.Address),
				slog.Int("sources", e.Sources),
				slog.Int("succeeded", e.Succeeded),
				slog.Bool("name_found", e.Record.Name.Valid),
				slog.Duration("duration", e.Duration),
			)
		}),
	)
}
