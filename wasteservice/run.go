// Package wasteservice boots the EcoSort HTTP service: config, store,
// blob storage, classifier, health checkers, router and server lifecycle.
package wasteservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecosort/ecosort/internal/api"
	"github.com/ecosort/ecosort/internal/blob"
	"github.com/ecosort/ecosort/internal/classify"
	"github.com/ecosort/ecosort/internal/config"
	"github.com/ecosort/ecosort/internal/factory"
	"github.com/ecosort/ecosort/internal/health"
	"github.com/ecosort/ecosort/internal/logger"
	"github.com/ecosort/ecosort/internal/store"
)

// Run starts the waste service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("waste-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("ai_model", cfg.AIModel).
		Msg("Waste service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	// Initialize dependencies (store, blobs, classifier)
	st, blobs, classifier, err := initDependencies(cfg, log)
	if err != nil {
		return err
	}

	// Start health checkers and bind service health
	svcHealth, gate := startHealthCheckers(ctx, cfg, log, st, classifier)

	// Block startup until the store reports healthy; fail fast otherwise.
	// Classification is best-effort and never holds up boot.
	if err := waitUntilHealthy(ctx, cfg, gate); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	router := api.NewRouter(st, blobs, classifier, svcHealth, cfg.AdminAPIKey)

	// HTTP server and serve
	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs required components and enforces fail-fast on missing deps.
func initDependencies(cfg *config.Config, log zerolog.Logger) (store.Store, *blob.LocalStore, *classify.OpenAIClassifier, error) {
	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return nil, nil, nil, err
	}

	blobs, err := blob.NewLocal(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Upload directory unavailable")
		return nil, nil, nil, err
	}

	classifier := classify.NewOpenAI(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, log)
	return st, blobs, classifier, nil
}

// startHealthCheckers starts component checkers and the service-level aggregator.
// The returned gate is the store checker, the only dependency that blocks boot;
// the classifier checker only feeds the aggregate /api/health view.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store, classifier health.HealthPinger) (*health.ServiceHealthChecker, health.HealthChecker) {
	probeTimeout := time.Duration(cfg.HealthTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	var checkers []health.HealthChecker
	var gate health.HealthChecker
	if p, ok := st.(health.HealthPinger); ok {
		storeChecker := health.NewPingChecker("store", p, log, probeTimeout)
		go storeChecker.Start(ctx, interval)
		checkers = append(checkers, storeChecker)
		gate = storeChecker
	}

	classifierChecker := health.NewPingChecker("classifier", classifier, log, probeTimeout)
	go classifierChecker.Start(ctx, interval)
	checkers = append(checkers, classifierChecker)

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	return svcHealth, gate
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second, // analyze calls wait on the vision model
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns the startup health timeout in seconds,
// calculated as interval*2 with a minimum of 60 seconds.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// waitUntilHealthy blocks until the startup-critical checker is healthy or the
// startup window expires. A nil gate means nothing blocks boot.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, gate health.HealthChecker) error {
	if gate == nil {
		return nil
	}
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if gate.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: %s not healthy within %d seconds", gate.Name(), timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
