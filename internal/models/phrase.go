package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phrase представляет одну выученную фразу с переводом на вьетнамский.
// JSON-имена полей совпадают с форматом, который хранится в Remote Store
// и в локальном кеше, поэтому менять их нельзя.
type Phrase struct {
	LastReviewed *int64 `json:"lastReviewed"` // зарезервировано под интервальные повторения
	ID           string `json:"id"`
	English      string `json:"english"`
	Vietnamese   string `json:"vietnamese"`
	Phonetic     string `json:"phonetic"`
	Category     string `json:"category"`
	CreatedAt    int64  `json:"createdAt"` // epoch milliseconds
	ReviewCount  int    `json:"reviewCount"`
}

// Категории фраз
const (
	CategoryGreetings   = "greetings"
	CategoryFood        = "food"
	CategoryDirections  = "directions"
	CategoryShopping    = "shopping"
	CategoryEmergencies = "emergencies"
	CategorySocial      = "social"
	CategoryTransport   = "transport"
	CategoryNumbers     = "numbers"
	CategoryQuestions   = "questions"
	CategoryGeneral     = "general"

	// CategoryUncategorized локальная категория для случаев, когда
	// сервис перевода не вернул категорию
	CategoryUncategorized = "uncategorized"
)

// Categories перечисляет категории, которые может вернуть сервис перевода
var Categories = []string{
	CategoryGreetings,
	CategoryFood,
	CategoryDirections,
	CategoryShopping,
	CategoryEmergencies,
	CategorySocial,
	CategoryTransport,
	CategoryNumbers,
	CategoryQuestions,
	CategoryGeneral,
}

// IsKnownCategory проверяет, входит ли категория в фиксированное перечисление
func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Translation результат работы сервиса перевода
type Translation struct {
	Vietnamese string `json:"vietnamese"`
	Phonetic   string `json:"phonetic"`
	Category   string `json:"category"`
}

// NewPhrase создает новую фразу с уникальным ID и текущим временем создания.
// Пустая категория заменяется на CategoryUncategorized.
func NewPhrase(english string, tr Translation) Phrase {
	category := tr.Category
	if category == "" {
		category = CategoryUncategorized
	}

	return Phrase{
		ID:           uuid.New().String(),
		English:      strings.TrimSpace(english),
		Vietnamese:   tr.Vietnamese,
		Phonetic:     tr.Phonetic,
		Category:     category,
		CreatedAt:    time.Now().UnixMilli(),
		ReviewCount:  0,
		LastReviewed: nil,
	}
}

// PhraseCollection упорядоченный список фраз, новые фразы идут первыми
type PhraseCollection []Phrase

// FindByEnglish ищет фразу по английскому тексту без учета регистра
func (c PhraseCollection) FindByEnglish(english string) (Phrase, bool) {
	needle := strings.ToLower(strings.TrimSpace(english))
	for _, p := range c {
		if strings.ToLower(strings.TrimSpace(p.English)) == needle {
			return p, true
		}
	}
	return Phrase{}, false
}

// Prepend возвращает новую коллекцию с фразой в начале
func (c PhraseCollection) Prepend(p Phrase) PhraseCollection {
	out := make(PhraseCollection, 0, len(c)+1)
	out = append(out, p)
	return append(out, c...)
}

// Remove возвращает коллекцию без фразы с указанным ID и флаг, была ли она найдена
func (c PhraseCollection) Remove(id string) (PhraseCollection, bool) {
	out := make(PhraseCollection, 0, len(c))
	found := false
	for _, p := range c {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

// Clone создает глубокую копию коллекции
func (c PhraseCollection) Clone() PhraseCollection {
	if c == nil {
		return PhraseCollection{}
	}
	out := make(PhraseCollection, len(c))
	for i, p := range c {
		if p.LastReviewed != nil {
			v := *p.LastReviewed
			p.LastReviewed = &v
		}
		out[i] = p
	}
	return out
}
