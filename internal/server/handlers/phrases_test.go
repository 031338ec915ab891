package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/phrasesync/internal/server/middleware"
	"github.com/iudanet/phrasesync/internal/server/storage"
	"github.com/iudanet/phrasesync/pkg/api"
)

const samplePhrases = `[
	{"id":"b","english":"Thank you","vietnamese":"Cảm ơn","phonetic":"gahm UHN","category":"greetings","createdAt":1700000000001,"reviewCount":3,"lastReviewed":1700000500000},
	{"id":"a","english":"Hello","vietnamese":"Xin chào","phonetic":"sin CHOW","category":"greetings","createdAt":1700000000000,"reviewCount":0,"lastReviewed":null}
]`

func doGet(h *PhrasesHandler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/phrases"+query, nil)
	w := httptest.NewRecorder()
	h.GetPhrases(w, req)
	return w
}

func doPost(h *PhrasesHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/phrases", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SavePhrases(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

func TestPhrasesHandler_RoundTrip(t *testing.T) {
	store, data := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	w := doPost(h, `{"syncKey":"ab12cd34","phrases":`+samplePhrases+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Contains(t, data, "phrases:ab12cd34")

	w = doGet(h, "?syncKey=ab12cd34")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"phrases":`+samplePhrases+`}`, w.Body.String())

	// Ответ разбирается в типизированную коллекцию
	var resp api.PhrasesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Phrases, 2)
	assert.Equal(t, "b", resp.Phrases[0].ID)
	require.NotNil(t, resp.Phrases[0].LastReviewed)
	assert.Nil(t, resp.Phrases[1].LastReviewed)
}

func TestPhrasesHandler_GetMissingReturnsEmpty(t *testing.T) {
	store, _ := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	w := doGet(h, "?syncKey=nobody1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"phrases":[]}`, w.Body.String())
}

func TestPhrasesHandler_EmptyCollectionOverwrites(t *testing.T) {
	store, _ := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"ab12cd34","phrases":`+samplePhrases+`}`).Code)
	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"ab12cd34","phrases":[]}`).Code)

	w := doGet(h, "?syncKey=ab12cd34")
	assert.JSONEq(t, `{"phrases":[]}`, w.Body.String())
}

func TestPhrasesHandler_GetValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{name: "missing key", query: "", wantMsg: msgSyncKeyRequired},
		{name: "empty key", query: "?syncKey=", wantMsg: msgSyncKeyRequired},
		{name: "too short", query: "?syncKey=abc", wantMsg: msgSyncKeyInvalid},
		{name: "bad characters", query: "?syncKey=abc-123", wantMsg: msgSyncKeyInvalid},
		{name: "too long", query: "?syncKey=" + strings.Repeat("a", 33), wantMsg: msgSyncKeyInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newMemoryStore()
			h := NewPhrasesHandler(setupTestLogger(), store, nil)

			w := doGet(h, tt.query)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
			assert.Empty(t, store.GetCalls(), "store must not be touched")
		})
	}
}

func TestPhrasesHandler_SaveValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "invalid json", body: `{"syncKey":`, wantMsg: msgInvalidBody},
		{name: "missing key", body: `{"phrases":[]}`, wantMsg: msgSyncKeyRequired},
		{name: "invalid key", body: `{"syncKey":"ab_12","phrases":[]}`, wantMsg: msgSyncKeyInvalid},
		{name: "missing phrases", body: `{"syncKey":"ab12cd34"}`, wantMsg: msgNotArray},
		{name: "null phrases", body: `{"syncKey":"ab12cd34","phrases":null}`, wantMsg: msgNotArray},
		{name: "object phrases", body: `{"syncKey":"ab12cd34","phrases":{"id":"1"}}`, wantMsg: msgNotArray},
		{name: "string phrases", body: `{"syncKey":"ab12cd34","phrases":"[]"}`, wantMsg: msgNotArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newMemoryStore()
			h := NewPhrasesHandler(setupTestLogger(), store, nil)

			w := doPost(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w))
			assert.Empty(t, store.SetCalls(), "store must not be touched")
		})
	}
}

func buildCollection(n int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"id":"%d","english":"p%d"}`, i, i)
	}
	b.WriteByte(']')
	return b.String()
}

func TestPhrasesHandler_SizeLimit(t *testing.T) {
	store, data := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"ab12cd34","phrases":`+samplePhrases+`}`).Code)
	before := data["phrases:ab12cd34"]

	w := doPost(h, `{"syncKey":"ab12cd34","phrases":`+buildCollection(10001)+`}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgTooManyPhrases, decodeError(t, w))
	assert.Equal(t, before, data["phrases:ab12cd34"], "prior value must be unchanged")

	w = doPost(h, `{"syncKey":"ab12cd34","phrases":`+buildCollection(10000)+`}`)
	assert.Equal(t, http.StatusOK, w.Code, "exactly the maximum is accepted")
}

func TestPhrasesHandler_MaxSizeCollectionRoundTrips(t *testing.T) {
	store, _ := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	english := strings.Repeat("a", 500)
	vietnamese := strings.Repeat("ă", 500)
	phonetic := strings.Repeat("ờ", 500)

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < 10000; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"id":"%036d","english":"%s","vietnamese":"%s","phonetic":"%s","category":"uncategorized","createdAt":1700000000000,"reviewCount":0,"lastReviewed":null}`,
			i, english, vietnamese, phonetic)
	}
	b.WriteByte(']')
	collection := b.String()
	require.Greater(t, len(collection), 16<<20)

	w := doPost(h, `{"syncKey":"ab12cd34","phrases":`+collection+`}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doGet(h, "?syncKey=ab12cd34")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Phrases json.RawMessage `json:"phrases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, collection, string(resp.Phrases))
}

func TestPhrasesHandler_BodyTooLarge(t *testing.T) {
	store, _ := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	padding := strings.Repeat(" ", MaxBodyBytes)
	w := doPost(h, `{"syncKey":"ab12cd34",`+padding+`"phrases":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgBodyTooLarge, decodeError(t, w))
	assert.Empty(t, store.SetCalls())
}

func TestPhrasesHandler_StoreFailures(t *testing.T) {
	boom := errors.New("connection refused")
	store := &storage.RemoteStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			return "", boom
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			return boom
		},
	}
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	w := doGet(h, "?syncKey=ab12cd34")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load phrases"}`, w.Body.String())

	w = doPost(h, `{"syncKey":"ab12cd34","phrases":[]}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to save phrases"}`, w.Body.String())
}

func TestPhrasesHandler_CorruptStoredValue(t *testing.T) {
	store, data := newMemoryStore()
	data["phrases:ab12cd34"] = "{not json"
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	w := doGet(h, "?syncKey=ab12cd34")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, msgLoadFailed, decodeError(t, w))
}

func TestPhrasesHandler_StoresCompactJSON(t *testing.T) {
	store, data := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"ab12cd34","phrases":[ {"id": "1"} ]}`).Code)
	assert.Equal(t, `[{"id":"1"}]`, data["phrases:ab12cd34"])
}

func TestPhrasesHandler_KeysArePartitioned(t *testing.T) {
	store, _ := newMemoryStore()
	h := NewPhrasesHandler(setupTestLogger(), store, nil)

	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"deviceA1","phrases":[{"id":"a"}]}`).Code)
	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"deviceB2","phrases":[{"id":"b"}]}`).Code)

	assert.JSONEq(t, `{"phrases":[{"id":"a"}]}`, doGet(h, "?syncKey=deviceA1").Body.String())
	assert.JSONEq(t, `{"phrases":[{"id":"b"}]}`, doGet(h, "?syncKey=deviceB2").Body.String())
}

func TestPhrasesHandler_LogsMaskedKey(t *testing.T) {
	var logBuf bytes.Buffer
	store, _ := newMemoryStore()
	logger := newBufferLogger(&logBuf)
	h := NewPhrasesHandler(logger, store, nil)

	require.Equal(t, http.StatusOK, doPost(h, `{"syncKey":"secret99","phrases":[]}`).Code)

	assert.Contains(t, logBuf.String(), "se***")
	assert.NotContains(t, logBuf.String(), "secret99")
}

func TestPhrasesHandler_RateLimitAfterValidation(t *testing.T) {
	store, _ := newMemoryStore()
	limiter := &middleware.LimiterMock{
		AllowFunc: func(key string) bool { return false },
	}
	h := NewPhrasesHandler(setupTestLogger(), store, limiter)

	// Невалидный запрос отклоняется до лимитера
	w := doGet(h, "?syncKey=bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, limiter.AllowCalls())

	w = doPost(h, `{"syncKey":"ab12cd34","phrases":` + buildCollection(10001) + `}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, limiter.AllowCalls())

	// Валидный запрос упирается в лимит и не доходит до хранилища
	w = doGet(h, "?syncKey=ab12cd34")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	w = doPost(h, `{"syncKey":"ab12cd34","phrases":[]}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	assert.Len(t, limiter.AllowCalls(), 2)
	assert.Empty(t, store.GetCalls())
	assert.Empty(t, store.SetCalls())
}
