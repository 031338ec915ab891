package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"log/slog"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/iudanet/phrasesync/internal/models"
	"github.com/iudanet/phrasesync/internal/validation"
	"github.com/iudanet/phrasesync/pkg/api"
)

const (
	msgTextRequired    = "Text is required"
	msgTextTooLong     = "Text must not exceed 500 characters"
	msgTranslateFailed = "Translation failed"
)

//go:generate moq -out translator_mock.go . Translator

// Translator переводит английский текст на вьетнамский
type Translator interface {
	Translate(ctx context.Context, text string) (models.Translation, error)
}

// TranslateHandler обрабатывает POST /translate
type TranslateHandler struct {
	logger     *slog.Logger
	translator Translator
	policy     *bluemonday.Policy
}

// NewTranslateHandler создает новый handler перевода
func NewTranslateHandler(logger *slog.Logger, translator Translator) *TranslateHandler {
	return &TranslateHandler{
		logger:     logger,
		translator: translator,
		policy:     bluemonday.StrictPolicy(),
	}
}

// MaxTranslateBodyBytes максимальный размер тела POST /translate
const MaxTranslateBodyBytes = 64 << 10

// Translate обрабатывает POST /translate {text}
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxTranslateBodyBytes)

	var req api.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode translate request", "error", err)
		sendError(w, h.logger, msgInvalidBody, http.StatusBadRequest)
		return
	}

	text, err := validation.NormalizeEnglish(h.sanitize(req.Text))
	if err != nil {
		msg := msgTextRequired
		if errors.Is(err, validation.ErrTextTooLong) {
			msg = msgTextTooLong
		}
		h.logger.Warn("Invalid translate text", "error", err)
		sendError(w, h.logger, msg, http.StatusBadRequest)
		return
	}

	tr, err := h.translator.Translate(r.Context(), text)
	if err != nil {
		h.logger.Error("Translation failed", "error", err, "chars", len([]rune(text)))
		sendError(w, h.logger, msgTranslateFailed, http.StatusBadGateway)
		return
	}

	// пустая категория остается пустой, клиент подставит uncategorized
	if tr.Category != "" && !models.IsKnownCategory(tr.Category) {
		h.logger.Debug("Unknown category coerced", "category", tr.Category)
		tr.Category = models.CategoryGeneral
	}

	sendJSON(w, h.logger, api.TranslateResponse{
		Vietnamese: tr.Vietnamese,
		Phonetic:   tr.Phonetic,
		Category:   tr.Category,
	}, http.StatusOK)
}

// sanitize удаляет разметку. StrictPolicy экранирует сущности,
// поэтому результат раскодируется обратно в обычный текст.
func (h *TranslateHandler) sanitize(text string) string {
	return html.UnescapeString(h.policy.Sanitize(text))
}
