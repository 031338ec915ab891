// Package server собирает HTTP сервер синхронизации фраз.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/phrasesync/internal/server/config"
	"github.com/iudanet/phrasesync/internal/server/handlers"
	"github.com/iudanet/phrasesync/internal/server/middleware"
	"github.com/iudanet/phrasesync/internal/server/storage"
	"github.com/iudanet/phrasesync/internal/server/translate"
)

// Server HTTP сервер со всеми зависимостями
type Server struct {
	logger           *slog.Logger
	store            *storage.Lazy
	phrasesLimiter   *middleware.RateLimiter
	translateLimiter *middleware.RateLimiter
	httpServer       *http.Server
	shutdownTimeout  time.Duration
}

// New создает сервер по конфигурации. Remote Store не открывается до первого запроса.
func New(cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	opener, err := StoreOpener(cfg.Store)
	if err != nil {
		return nil, err
	}

	var translator handlers.Translator
	if cfg.Translate.APIKey != "" {
		t, err := translate.NewAnthropicTranslator(translate.Config{
			APIKey:  cfg.Translate.APIKey,
			Model:   cfg.Translate.Model,
			BaseURL: cfg.Translate.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create translator: %w", err)
		}
		translator = t
	} else {
		logger.Warn("Translation API key is not set, /translate is disabled")
	}

	return newServer(cfg, logger, version, storage.NewLazy(opener), translator), nil
}

func newServer(cfg *config.Config, logger *slog.Logger, version string, store *storage.Lazy, translator handlers.Translator) *Server {
	s := &Server{
		logger:           logger,
		store:            store,
		phrasesLimiter:   middleware.NewRateLimiter(cfg.RateLimit.Phrases.Requests, cfg.RateLimit.Phrases.Window),
		translateLimiter: middleware.NewRateLimiter(cfg.RateLimit.Translate.Requests, cfg.RateLimit.Translate.Window),
		shutdownTimeout:  cfg.ShutdownTimeout,
	}

	router := NewRouter(RouterConfig{
		Logger:           logger,
		Store:            store,
		Translator:       translator,
		PhrasesLimiter:   s.phrasesLimiter,
		TranslateLimiter: s.translateLimiter,
		Version:          version,
	})

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// Handler возвращает корневой HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run слушает адрес из конфигурации до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx, затем корректно завершается:
// дожидается активных запросов, останавливает лимитеры и закрывает Remote Store.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("Server starting", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
	case serveErr = <-errCh:
		s.logger.Error("Server stopped unexpectedly", "error", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	shutdownErr := s.httpServer.Shutdown(shutdownCtx)
	if shutdownErr != nil {
		s.logger.Error("Graceful shutdown failed", "error", shutdownErr)
	}

	s.phrasesLimiter.Stop()
	s.translateLimiter.Stop()

	if err := s.store.Close(); err != nil {
		s.logger.Error("Failed to close remote store", "error", err)
	}

	s.logger.Info("Server stopped")
	return errors.Join(serveErr, shutdownErr)
}
