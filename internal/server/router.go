package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/phrasesync/internal/server/handlers"
	"github.com/iudanet/phrasesync/internal/server/middleware"
	"github.com/iudanet/phrasesync/internal/server/storage"
)

// RouterConfig зависимости HTTP маршрутов
type RouterConfig struct {
	Logger *slog.Logger
	Store  storage.RemoteStore
	// Translator может быть nil, тогда /translate отвечает 503
	Translator       handlers.Translator
	PhrasesLimiter   middleware.Limiter
	TranslateLimiter middleware.Limiter
	Version          string
}

// NewRouter собирает маршруты сервера
func NewRouter(cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(
		middleware.RecoveryMiddleware(cfg.Logger),
		middleware.LoggingWithSkip(cfg.Logger, []string{"/health"}),
	)

	phrases := handlers.NewPhrasesHandler(cfg.Logger, cfg.Store, cfg.PhrasesLimiter)
	r.HandleFunc("/phrases", phrases.GetPhrases).Methods(http.MethodGet)
	r.HandleFunc("/phrases", phrases.SavePhrases).Methods(http.MethodPost)

	health := handlers.NewHealthHandler(cfg.Logger, cfg.Store, cfg.Version)
	r.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	var translate http.Handler = http.HandlerFunc(translateDisabled)
	if cfg.Translator != nil {
		translate = http.HandlerFunc(handlers.NewTranslateHandler(cfg.Logger, cfg.Translator).Translate)
	}
	r.Handle("/translate", middleware.RateLimitMiddleware(cfg.TranslateLimiter, cfg.Logger)(translate)).
		Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	return r
}

func translateDisabled(w http.ResponseWriter, r *http.Request) {
	writeJSONError(w, "Translation is not configured", http.StatusServiceUnavailable)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
