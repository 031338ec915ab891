// Package synckey генерирует короткие sync key, которые пользователь может
// переписать вручную на другое устройство.
package synckey

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// Length длина генерируемого ключа
	Length = 8

	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generator генерирует sync key из base-36 алфавита.
// Уникальность на сервере не проверяется: при коллизии два устройства
// просто начнут делить одну коллекцию.
type Generator struct {
	rand io.Reader
}

// NewGenerator создает генератор на crypto/rand
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithReader создает генератор с заданным источником случайности.
// Используется в тестах.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate возвращает новый ключ длиной Length
func (g *Generator) Generate() (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, Length)

	for i := range buf {
		n, err := rand.Int(g.rand, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate sync key: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}

	return string(buf), nil
}

// Generate генерирует ключ генератором по умолчанию
func Generate() (string, error) {
	return NewGenerator().Generate()
}
