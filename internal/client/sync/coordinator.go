// Package sync держит коллекцию фраз клиента в памяти, сохраняет ее
// в Local Cache и отправляет на сервер с задержкой после изменений.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/phrasesync/internal/client/api"
	"github.com/iudanet/phrasesync/internal/client/storage"
	"github.com/iudanet/phrasesync/internal/models"
	"github.com/iudanet/phrasesync/internal/validation"
)

// DefaultPushTimeout ограничивает фоновую отправку коллекции
const DefaultPushTimeout = 30 * time.Second

// ErrPhraseNotFound фраза с указанным id отсутствует в коллекции
var ErrPhraseNotFound = errors.New("phrase not found")

// ErrNotInitialized Init еще не вызывался
var ErrNotInitialized = errors.New("coordinator is not initialized")

// KeyGenerator создает новые sync key
type KeyGenerator interface {
	Generate() (string, error)
}

// Source откуда взята коллекция при Init
type Source string

const (
	// SourceRemote коллекция получена с сервера
	SourceRemote Source = "remote"
	// SourceLocal сервер пуст, взят Local Cache
	SourceLocal Source = "local"
	// SourceOffline сервер недоступен, взят Local Cache
	SourceOffline Source = "offline"
)

// InitResult итог запуска координатора
type InitResult struct {
	SyncKey    string
	Source     Source
	Count      int
	Pushed     bool // локальная коллекция отправлена на сервер
	KeyCreated bool // ключ сгенерирован при этом запуске
}

// Config настройки координатора
type Config struct {
	Debounce    time.Duration
	PushTimeout time.Duration
}

// Coordinator управляет коллекцией фраз одного устройства.
// Коллекция в памяти является источником истины, Local Cache обновляется
// синхронно при каждом изменении, сервер догоняет отложенной отправкой.
type Coordinator struct {
	apiClient   api.ClientAPI
	cache       storage.LocalCache
	keys        KeyGenerator
	logger      *slog.Logger
	debouncer   *Debouncer
	ctx         context.Context
	cancel      context.CancelFunc
	syncKey     string
	phrases     models.PhraseCollection
	pushTimeout time.Duration
	mu          sync.Mutex
	// pushMu не дает двум отправкам идти одновременно
	pushMu sync.Mutex
	ready  bool
}

// NewCoordinator создает координатор. Перед использованием нужно вызвать Init.
func NewCoordinator(apiClient api.ClientAPI, cache storage.LocalCache, keys KeyGenerator, logger *slog.Logger, cfg Config) *Coordinator {
	if cfg.PushTimeout <= 0 {
		cfg.PushTimeout = DefaultPushTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		apiClient:   apiClient,
		cache:       cache,
		keys:        keys,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		pushTimeout: cfg.PushTimeout,
		phrases:     models.PhraseCollection{},
	}
	c.debouncer = NewDebouncer(cfg.Debounce, c.debouncedPush)
	return c
}

// Init читает или создает sync key и загружает коллекцию.
// Непустая коллекция на сервере побеждает локальную. Если сервер пуст,
// а в Local Cache есть фразы, они берутся и сразу один раз отправляются
// на сервер. Если сервер недоступен, используется только Local Cache.
func (c *Coordinator) Init(ctx context.Context) (*InitResult, error) {
	result := &InitResult{}

	key, err := c.cache.LoadSyncKey(ctx)
	switch {
	case errors.Is(err, storage.ErrSyncKeyNotFound):
		key, err = c.keys.Generate()
		if err != nil {
			return nil, err
		}
		if err := c.cache.StoreSyncKey(ctx, key); err != nil {
			return nil, fmt.Errorf("failed to store sync key: %w", err)
		}
		result.KeyCreated = true
		c.logger.Info("Generated new sync key", "sync_key", validation.MaskSyncKey(key))
	case err != nil:
		return nil, fmt.Errorf("failed to load sync key: %w", err)
	}
	result.SyncKey = key

	local, err := c.cache.LoadPhrases(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrPhrasesNotFound) {
			return nil, fmt.Errorf("failed to load local phrases: %w", err)
		}
		local = models.PhraseCollection{}
	}

	remote, err := c.apiClient.GetPhrases(ctx, key)
	if err != nil {
		c.logger.Warn("Failed to load phrases from server, working offline",
			"sync_key", validation.MaskSyncKey(key),
			"error", err)
		c.adopt(key, local)
		result.Source = SourceOffline
		result.Count = len(local)
		return result, nil
	}

	if len(remote) > 0 {
		c.adopt(key, remote)
		result.Source = SourceRemote
		result.Count = len(remote)
		c.logger.Info("Loaded phrases from server", "count", len(remote))

		if err := c.cache.StorePhrases(ctx, remote); err != nil {
			return result, fmt.Errorf("failed to cache remote phrases: %w", err)
		}
		return result, nil
	}

	c.adopt(key, local)
	result.Source = SourceLocal
	result.Count = len(local)

	if len(local) > 0 {
		c.logger.Info("Server collection is empty, uploading local phrases", "count", len(local))
		if err := c.push(ctx); err != nil {
			c.logger.Warn("Failed to upload local phrases", "error", err)
		} else {
			result.Pushed = true
		}
	}

	return result, nil
}

func (c *Coordinator) adopt(key string, phrases models.PhraseCollection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.syncKey = key
	c.phrases = phrases.Clone()
	c.ready = true
}

// SyncKey возвращает текущий sync key
func (c *Coordinator) SyncKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncKey
}

// Phrases возвращает копию коллекции, новые фразы первыми
func (c *Coordinator) Phrases() models.PhraseCollection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phrases.Clone()
}

// Add переводит английский текст и добавляет фразу в начало коллекции.
// Если фраза с таким текстом (без учета регистра) уже есть, возвращается
// она и created=false, сервис перевода не вызывается.
func (c *Coordinator) Add(ctx context.Context, english string) (phrase models.Phrase, created bool, err error) {
	text, err := validation.NormalizeEnglish(english)
	if err != nil {
		return models.Phrase{}, false, err
	}

	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return models.Phrase{}, false, ErrNotInitialized
	}
	existing, ok := c.phrases.FindByEnglish(text)
	c.mu.Unlock()
	if ok {
		return existing, false, nil
	}

	tr, err := c.apiClient.Translate(ctx, text)
	if err != nil {
		return models.Phrase{}, false, fmt.Errorf("failed to translate phrase: %w", err)
	}
	phrase = models.NewPhrase(text, tr)

	c.mu.Lock()
	// пока шел перевод, такую же фразу могли добавить
	if existing, ok := c.phrases.FindByEnglish(text); ok {
		c.mu.Unlock()
		return existing, false, nil
	}
	err = c.mutateLocked(ctx, c.phrases.Prepend(phrase))
	c.mu.Unlock()

	c.logger.Info("Phrase added", "id", phrase.ID, "category", phrase.Category)
	return phrase, true, err
}

// Delete удаляет фразу по id
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.ready {
		return ErrNotInitialized
	}

	next, found := c.phrases.Remove(id)
	if !found {
		return fmt.Errorf("%w: %s", ErrPhraseNotFound, id)
	}

	c.logger.Info("Phrase deleted", "id", id)
	return c.mutateLocked(ctx, next)
}

// ClearAll удаляет все фразы и сразу, без задержки, отправляет пустую
// коллекцию на сервер. Ожидающая отложенная отправка отменяется.
// Ошибка отправки только логируется.
func (c *Coordinator) ClearAll(ctx context.Context) error {
	c.mu.Lock()
	if !c.ready {
		c.mu.Unlock()
		return ErrNotInitialized
	}
	c.debouncer.Cancel()
	c.phrases = models.PhraseCollection{}
	storeErr := c.cache.StorePhrases(ctx, c.phrases)
	c.mu.Unlock()

	if storeErr != nil {
		storeErr = fmt.Errorf("failed to store phrases locally: %w", storeErr)
	}

	c.logger.Info("All phrases cleared")
	if err := c.push(ctx); err != nil {
		c.logger.Warn("Failed to push cleared collection", "error", err)
	}

	return storeErr
}

// SetSyncKey переключает устройство на другой sync key.
// Коллекция полностью заменяется тем, что вернул сервер для нового ключа,
// даже если там пусто. Неотправленные изменения под старым ключом теряются.
//
// Коллекция нового ключа запрашивается до сохранения ключа. Поэтому при
// сетевой ошибке ключ не меняется и возвращается ошибка, а не остается
// новый ключ с пустой коллекцией.
func (c *Coordinator) SetSyncKey(ctx context.Context, key string) error {
	if err := validation.ValidateSyncKey(key); err != nil {
		return err
	}

	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if !ready {
		return ErrNotInitialized
	}

	remote, err := c.apiClient.GetPhrases(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to load phrases for new sync key: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.debouncer.Cancel() {
		c.logger.Warn("Discarding unsynced changes of previous sync key",
			"sync_key", validation.MaskSyncKey(c.syncKey))
	}

	if err := c.cache.StoreSyncKey(ctx, key); err != nil {
		return fmt.Errorf("failed to store sync key: %w", err)
	}

	c.syncKey = key
	c.phrases = remote.Clone()
	if c.phrases == nil {
		c.phrases = models.PhraseCollection{}
	}

	c.logger.Info("Sync key changed",
		"sync_key", validation.MaskSyncKey(key),
		"count", len(c.phrases))

	if err := c.cache.StorePhrases(ctx, c.phrases); err != nil {
		return fmt.Errorf("failed to store phrases locally: %w", err)
	}
	return nil
}

// NewSyncKey генерирует новый ключ и переключается на него
func (c *Coordinator) NewSyncKey(ctx context.Context) (string, error) {
	key, err := c.keys.Generate()
	if err != nil {
		return "", err
	}
	if err := c.SetSyncKey(ctx, key); err != nil {
		return "", err
	}
	return key, nil
}

// Sync отменяет отложенную отправку и сразу отправляет текущую коллекцию
func (c *Coordinator) Sync(ctx context.Context) error {
	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if !ready {
		return ErrNotInitialized
	}

	c.debouncer.Cancel()
	return c.push(ctx)
}

// Flush выполняет ожидающую отправку и дожидается уже начатой
func (c *Coordinator) Flush() {
	if c.debouncer.Pending() {
		c.logger.Debug("Pushing pending changes")
	}
	// ждет и отправку, которую таймер запустил, но еще не довел до pushMu
	c.debouncer.Flush()

	// ручные отправки Sync и ClearAll держат pushMu до конца
	c.pushMu.Lock()
	defer c.pushMu.Unlock()
}

// Status состояние синхронизации устройства
type Status struct {
	SyncKey       string
	ServerStatus  string
	ServerVersion string
	Count         int
	// Pending изменения еще ждут отложенной отправки
	Pending bool
}

// Status собирает локальное состояние и опрашивает сервер.
// При ошибке сервера локальная часть Status все равно заполнена.
func (c *Coordinator) Status(ctx context.Context) (Status, error) {
	c.mu.Lock()
	st := Status{
		SyncKey: c.syncKey,
		Count:   len(c.phrases),
	}
	c.mu.Unlock()
	st.Pending = c.debouncer.Pending()

	health, err := c.apiClient.Health(ctx)
	if api.IsStatus(err, http.StatusServiceUnavailable) {
		// сервер отвечает, но хранилище недоступно
		st.ServerStatus = "degraded"
		return st, nil
	}
	if err != nil {
		return st, fmt.Errorf("server health check failed: %w", err)
	}
	st.ServerStatus = health.Status
	st.ServerVersion = health.Version
	return st, nil
}

// Close отправляет ожидающие изменения и останавливает координатор
func (c *Coordinator) Close() {
	c.Flush()
	c.debouncer.Stop()
	c.cancel()
}

// mutateLocked заменяет коллекцию, синхронно сохраняет ее и планирует
// отправку. Отправка планируется и при ошибке Local Cache: сервер
// остается запасной копией.
func (c *Coordinator) mutateLocked(ctx context.Context, next models.PhraseCollection) error {
	c.phrases = next
	c.debouncer.Schedule()

	if err := c.cache.StorePhrases(ctx, next); err != nil {
		c.logger.Error("Failed to store phrases locally", "error", err, "count", len(next))
		return fmt.Errorf("failed to store phrases locally: %w", err)
	}
	return nil
}

func (c *Coordinator) debouncedPush() {
	ctx, cancel := context.WithTimeout(c.ctx, c.pushTimeout)
	defer cancel()

	if err := c.push(ctx); err != nil {
		// повтор произойдет при следующем изменении
		c.logger.Warn("Failed to push phrases", "error", err)
	}
}

// push отправляет состояние на момент отправки, а не на момент планирования
func (c *Coordinator) push(ctx context.Context) error {
	c.pushMu.Lock()
	defer c.pushMu.Unlock()

	c.mu.Lock()
	key := c.syncKey
	phrases := c.phrases.Clone()
	c.mu.Unlock()

	if err := c.apiClient.SavePhrases(ctx, key, phrases); err != nil {
		return err
	}

	c.logger.Debug("Phrases pushed",
		"sync_key", validation.MaskSyncKey(key),
		"count", len(phrases))
	return nil
}
