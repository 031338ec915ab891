package api

import "github.com/iudanet/phrasesync/internal/models"

// PhrasesResponse ответ на GET /phrases
type PhrasesResponse struct {
	Phrases []models.Phrase `json:"phrases"`
}

// SavePhrasesRequest тело запроса POST /phrases
type SavePhrasesRequest struct {
	SyncKey string          `json:"syncKey"`
	Phrases []models.Phrase `json:"phrases"`
}

// SuccessResponse ответ на успешную запись
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // описание ошибки
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
