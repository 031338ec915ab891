package translate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/phrasesync/internal/models"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    models.Translation
		wantErr error
	}{
		{
			name:  "plain json",
			reply: `{"vietnamese":"Xin chào","phonetic":"sin CHOW","category":"greetings"}`,
			want:  models.Translation{Vietnamese: "Xin chào", Phonetic: "sin CHOW", Category: "greetings"},
		},
		{
			name:  "markdown fenced",
			reply: "```json\n{\"vietnamese\": \"Bao nhiêu tiền?\", \"phonetic\": \"bow NYEW tee-EN\", \"category\": \"Shopping\"}\n```",
			want:  models.Translation{Vietnamese: "Bao nhiêu tiền?", Phonetic: "bow NYEW tee-EN", Category: "shopping"},
		},
		{
			name:  "missing category",
			reply: `Sure! {"vietnamese":"Cứu tôi","phonetic":"KUHU toy"}`,
			want:  models.Translation{Vietnamese: "Cứu tôi", Phonetic: "KUHU toy"},
		},
		{name: "empty", reply: "  ", wantErr: ErrEmptyReply},
		{name: "no object", reply: "I cannot translate that.", wantErr: ErrMalformedReply},
		{name: "broken object", reply: `{"vietnamese": }`, wantErr: ErrMalformedReply},
		{name: "no vietnamese", reply: `{"phonetic":"x"}`, wantErr: ErrMalformedReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReply(tt.reply)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAnthropicTranslator_RequiresKey(t *testing.T) {
	tr, err := NewAnthropicTranslator(Config{})
	assert.Error(t, err)
	assert.Nil(t, tr)
}

func TestAnthropicTranslator_Translate(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "test-model",
			"content": [{"type": "text", "text": "{\"vietnamese\":\"Cảm ơn\",\"phonetic\":\"gahm UHN\",\"category\":\"greetings\"}"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`))
	}))
	defer srv.Close()

	tr, err := NewAnthropicTranslator(Config{APIKey: "test-key", Model: "test-model", BaseURL: srv.URL}, option.WithMaxRetries(0))
	require.NoError(t, err)

	got, err := tr.Translate(context.Background(), "Thank you")
	require.NoError(t, err)
	assert.Equal(t, models.Translation{Vietnamese: "Cảm ơn", Phonetic: "gahm UHN", Category: "greetings"}, got)

	assert.Equal(t, "test-model", captured["model"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Contains(t, mustJSON(t, messages[0]), "Thank you")
}

func TestAnthropicTranslator_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"overloaded"}}`))
	}))
	defer srv.Close()

	tr, err := NewAnthropicTranslator(Config{APIKey: "k", BaseURL: srv.URL}, option.WithMaxRetries(0))
	require.NoError(t, err)

	_, err = tr.Translate(context.Background(), "Hello")
	assert.Error(t, err)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
