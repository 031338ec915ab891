package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// SyncKeyPattern каноническая серверная проверка sync key.
// Только латинские буквы и цифры, длина 6-32 символа.
var SyncKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]{6,32}$`)

const (
	// MinSyncKeyLen минимальная длина sync key
	MinSyncKeyLen = 6
	// MaxSyncKeyLen максимальная длина sync key
	MaxSyncKeyLen = 32

	// MaxEnglishLen максимальная длина исходного текста в символах
	MaxEnglishLen = 500

	// MaxPhrases максимальное количество фраз в одной коллекции
	MaxPhrases = 10000
)

var (
	// ErrSyncKeyRequired sync key не передан
	ErrSyncKeyRequired = errors.New("sync key is required")
	// ErrSyncKeyInvalid sync key не соответствует формату
	ErrSyncKeyInvalid = errors.New("invalid sync key format")
	// ErrTextRequired текст пустой после trim
	ErrTextRequired = errors.New("text is required")
	// ErrTextTooLong текст длиннее MaxEnglishLen символов
	ErrTextTooLong = errors.New("text is too long")
	// ErrTooManyPhrases коллекция больше MaxPhrases
	ErrTooManyPhrases = errors.New("too many phrases")
)

// ValidateSyncKey проверяет sync key
// Формат: только латинские буквы (a-z, A-Z) и цифры (0-9), длина 6-32 символа
func ValidateSyncKey(key string) error {
	if key == "" {
		return ErrSyncKeyRequired
	}

	if !SyncKeyPattern.MatchString(key) {
		return fmt.Errorf("%w: must be %d-%d alphanumeric characters", ErrSyncKeyInvalid, MinSyncKeyLen, MaxSyncKeyLen)
	}

	return nil
}

// NormalizeEnglish обрезает пробелы и проверяет длину исходного текста.
// Длина считается в символах, а не в байтах.
func NormalizeEnglish(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrTextRequired
	}

	if utf8.RuneCountInString(trimmed) > MaxEnglishLen {
		return "", fmt.Errorf("%w: must not exceed %d characters", ErrTextTooLong, MaxEnglishLen)
	}

	return trimmed, nil
}

// ValidatePhraseCount проверяет размер коллекции
func ValidatePhraseCount(n int) error {
	if n > MaxPhrases {
		return fmt.Errorf("%w: maximum is %d, got %d", ErrTooManyPhrases, MaxPhrases, n)
	}
	return nil
}

// MaskSyncKey скрывает sync key для логов: ключ дает полный доступ к коллекции
func MaskSyncKey(key string) string {
	if len(key) <= 2 {
		return "***"
	}
	return key[:2] + "***"
}
