package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/phrasesync/internal/models"
	"github.com/iudanet/phrasesync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает обращения клиента к Sync Endpoint
type ClientAPI interface {
	// GetPhrases загружает коллекцию по sync key.
	// Неизвестный ключ дает пустую коллекцию, а не ошибку.
	GetPhrases(ctx context.Context, syncKey string) (models.PhraseCollection, error)
	// SavePhrases полностью заменяет коллекцию на сервере
	SavePhrases(ctx context.Context, syncKey string, phrases models.PhraseCollection) error
	// Translate переводит английский текст на вьетнамский
	Translate(ctx context.Context, text string) (models.Translation, error)
	// Health проверяет доступность сервера
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// StatusError ответ сервера с кодом вне диапазона 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus проверяет, что err является ответом сервера с данным кодом
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// GetPhrases загружает коллекцию фраз по sync key
func (c *Client) GetPhrases(ctx context.Context, syncKey string) (models.PhraseCollection, error) {
	var resp api.PhrasesResponse
	path := "/phrases?syncKey=" + url.QueryEscape(syncKey)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get phrases request failed: %w", err)
	}

	phrases := models.PhraseCollection(resp.Phrases)
	if phrases == nil {
		phrases = models.PhraseCollection{}
	}
	return phrases, nil
}

// SavePhrases отправляет всю коллекцию на сервер
func (c *Client) SavePhrases(ctx context.Context, syncKey string, phrases models.PhraseCollection) error {
	if phrases == nil {
		phrases = models.PhraseCollection{}
	}
	req := api.SavePhrasesRequest{
		SyncKey: syncKey,
		Phrases: phrases,
	}

	var resp api.SuccessResponse
	if err := c.doRequest(ctx, http.MethodPost, "/phrases", req, &resp); err != nil {
		return fmt.Errorf("save phrases request failed: %w", err)
	}
	if !resp.Success {
		return errors.New("save phrases request failed: server did not confirm write")
	}
	return nil
}

// Translate запрашивает перевод у сервера
func (c *Client) Translate(ctx context.Context, text string) (models.Translation, error) {
	var resp api.TranslateResponse
	if err := c.doRequest(ctx, http.MethodPost, "/translate", api.TranslateRequest{Text: text}, &resp); err != nil {
		return models.Translation{}, fmt.Errorf("translate request failed: %w", err)
	}
	return models.Translation{
		Vietnamese: resp.Vietnamese,
		Phonetic:   resp.Phonetic,
		Category:   resp.Category,
	}, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			statusErr.Message = errResp.Error
		}
		return statusErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
