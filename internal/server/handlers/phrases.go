package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/phrasesync/internal/server/middleware"
	"github.com/iudanet/phrasesync/internal/server/storage"
	"github.com/iudanet/phrasesync/internal/validation"
	"github.com/iudanet/phrasesync/pkg/api"
)

// MaxBodyBytes максимальный размер тела POST /phrases.
// Вмещает 10000 фраз с полями предельной длины в UTF-8 (около 20 МБ) с запасом.
const MaxBodyBytes = 64 << 20

// Сообщения об ошибках, которые видит клиент
const (
	msgSyncKeyRequired = "Sync key is required"
	msgSyncKeyInvalid  = "Invalid sync key format"
	msgInvalidBody     = "Invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgNotArray        = "Phrases must be an array"
	msgTooManyPhrases  = "Too many phrases (max 10000)"
	msgLoadFailed      = "Failed to load phrases"
	msgSaveFailed      = "Failed to save phrases"
)

// PhraseStorage определяет интерфейс хранилища коллекций фраз
type PhraseStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// PhrasesHandler обрабатывает GET и POST /phrases
// Лимит проверяется после валидации: невалидные запросы не расходуют окно клиента.
type PhrasesHandler struct {
	logger  *slog.Logger
	storage PhraseStorage
	limiter middleware.Limiter
}

// NewPhrasesHandler создает новый handler для коллекций фраз.
// limiter может быть nil, тогда лимит не применяется.
func NewPhrasesHandler(logger *slog.Logger, storage PhraseStorage, limiter middleware.Limiter) *PhrasesHandler {
	return &PhrasesHandler{
		logger:  logger,
		storage: storage,
		limiter: limiter,
	}
}

// phrasesEnvelope ответ GET /phrases. Коллекция передается как сохранена,
// без повторной сериализации, поэтому GET после POST возвращает тот же массив.
type phrasesEnvelope struct {
	Phrases json.RawMessage `json:"phrases"`
}

// saveRequest тело POST /phrases. Phrases читается сырым, чтобы отличить
// отсутствующий или не-массив от пустого массива.
type saveRequest struct {
	SyncKey string          `json:"syncKey"`
	Phrases json.RawMessage `json:"phrases"`
}

// GetPhrases обрабатывает GET /phrases?syncKey=K
func (h *PhrasesHandler) GetPhrases(w http.ResponseWriter, r *http.Request) {
	syncKey := r.URL.Query().Get("syncKey")
	if msg, ok := h.checkSyncKey(syncKey); !ok {
		sendError(w, h.logger, msg, http.StatusBadRequest)
		return
	}

	if !middleware.CheckRateLimit(w, r, h.limiter, h.logger) {
		return
	}

	masked := validation.MaskSyncKey(syncKey)

	value, err := h.storage.Get(r.Context(), storage.PhrasesKey(syncKey))
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		// Отсутствие коллекции не ошибка
		value = ""
	case err != nil:
		h.logger.Error("Failed to load phrases", "sync_key", masked, "error", err)
		sendError(w, h.logger, msgLoadFailed, http.StatusInternalServerError)
		return
	}

	phrases := json.RawMessage("[]")
	if value != "" {
		if !json.Valid([]byte(value)) {
			h.logger.Error("Stored phrases are not valid JSON", "sync_key", masked, "bytes", len(value))
			sendError(w, h.logger, msgLoadFailed, http.StatusInternalServerError)
			return
		}
		phrases = json.RawMessage(value)
	}

	h.logger.Debug("Phrases loaded", "sync_key", masked, "bytes", len(value))
	sendJSON(w, h.logger, phrasesEnvelope{Phrases: phrases}, http.StatusOK)
}

// SavePhrases обрабатывает POST /phrases {syncKey, phrases}
// Коллекция перезаписывается целиком, без слияния (last write wins).
func (h *PhrasesHandler) SavePhrases(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("Request body too large", "limit", tooLarge.Limit)
			sendError(w, h.logger, msgBodyTooLarge, http.StatusBadRequest)
			return
		}
		h.logger.Warn("Failed to decode save request", "error", err)
		sendError(w, h.logger, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if msg, ok := h.checkSyncKey(req.SyncKey); !ok {
		sendError(w, h.logger, msg, http.StatusBadRequest)
		return
	}

	masked := validation.MaskSyncKey(req.SyncKey)

	trimmed := bytes.TrimSpace(req.Phrases)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		h.logger.Warn("Phrases is not an array", "sync_key", masked)
		sendError(w, h.logger, msgNotArray, http.StatusBadRequest)
		return
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		h.logger.Warn("Failed to parse phrases array", "sync_key", masked, "error", err)
		sendError(w, h.logger, msgNotArray, http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePhraseCount(len(items)); err != nil {
		h.logger.Warn("Too many phrases", "sync_key", masked, "count", len(items))
		sendError(w, h.logger, msgTooManyPhrases, http.StatusBadRequest)
		return
	}

	if !middleware.CheckRateLimit(w, r, h.limiter, h.logger) {
		return
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		h.logger.Warn("Failed to compact phrases", "sync_key", masked, "error", err)
		sendError(w, h.logger, msgNotArray, http.StatusBadRequest)
		return
	}

	if err := h.storage.Set(r.Context(), storage.PhrasesKey(req.SyncKey), compact.String()); err != nil {
		h.logger.Error("Failed to save phrases", "sync_key", masked, "error", err)
		sendError(w, h.logger, msgSaveFailed, http.StatusInternalServerError)
		return
	}

	h.logger.Info("Phrases saved", "sync_key", masked, "count", len(items))
	sendJSON(w, h.logger, api.SuccessResponse{Success: true}, http.StatusOK)
}

// checkSyncKey проверяет ключ и возвращает сообщение для клиента
func (h *PhrasesHandler) checkSyncKey(syncKey string) (string, bool) {
	err := validation.ValidateSyncKey(syncKey)
	switch {
	case err == nil:
		return "", true
	case errors.Is(err, validation.ErrSyncKeyRequired):
		h.logger.Warn("Sync key is missing")
		return msgSyncKeyRequired, false
	default:
		h.logger.Warn("Invalid sync key", "sync_key", validation.MaskSyncKey(syncKey))
		return msgSyncKeyInvalid, false
	}
}
