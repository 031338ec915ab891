// Package translate реализует перевод английских фраз на вьетнамский
// через Anthropic Messages API.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/iudanet/phrasesync/internal/models"
)

// DefaultModel модель по умолчанию
const DefaultModel = "claude-haiku-4-5"

const maxTokens = 512

// ErrEmptyReply модель не вернула текстового ответа
var ErrEmptyReply = errors.New("empty translation reply")

// ErrMalformedReply ответ модели не содержит ожидаемого JSON
var ErrMalformedReply = errors.New("malformed translation reply")

var systemPrompt = `You translate short English phrases into Vietnamese for a traveller.
Reply with a single JSON object and nothing else:
{"vietnamese": "<translation with diacritics>", "phonetic": "<English-speaker pronunciation, syllables separated by spaces, stressed syllables in capitals>", "category": "<one of: ` + strings.Join(models.Categories, ", ") + `>"}`

// Config параметры клиента Anthropic
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // пустой для api.anthropic.com
}

// AnthropicTranslator переводит текст через Anthropic Messages API
type AnthropicTranslator struct {
	client anthropic.Client
	model  string
}

// NewAnthropicTranslator создает переводчик
func NewAnthropicTranslator(cfg Config, opts ...option.RequestOption) (*AnthropicTranslator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, opts...)

	return &AnthropicTranslator{
		client: anthropic.NewClient(clientOpts...),
		model:  cfg.Model,
	}, nil
}

// Translate переводит text и возвращает перевод, произношение и категорию
func (t *AnthropicTranslator) Translate(ctx context.Context, text string) (models.Translation, error) {
	msg, err := t.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(t.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return models.Translation{}, fmt.Errorf("anthropic request failed: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}

	return ParseReply(reply.String())
}

// ParseReply извлекает JSON объект перевода из ответа модели.
// Модель иногда оборачивает JSON в markdown или добавляет текст вокруг.
func ParseReply(reply string) (models.Translation, error) {
	if strings.TrimSpace(reply) == "" {
		return models.Translation{}, ErrEmptyReply
	}

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return models.Translation{}, fmt.Errorf("%w: no JSON object", ErrMalformedReply)
	}

	var tr models.Translation
	if err := json.Unmarshal([]byte(reply[start:end+1]), &tr); err != nil {
		return models.Translation{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	tr.Vietnamese = strings.TrimSpace(tr.Vietnamese)
	tr.Phonetic = strings.TrimSpace(tr.Phonetic)
	tr.Category = strings.ToLower(strings.TrimSpace(tr.Category))

	if tr.Vietnamese == "" {
		return models.Translation{}, fmt.Errorf("%w: missing vietnamese", ErrMalformedReply)
	}

	return tr, nil
}
