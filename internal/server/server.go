package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mydehq/pagesel/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// Run serves the pagesel API on cfg.Addr until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context, cfg *Config, logger *ui.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           New(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	if logger != nil {
		logger.Info("Listening", "addr", cfg.Addr)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if logger != nil {
		logger.Info("Server stopped")
	}
	return nil
}
