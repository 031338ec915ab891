// Package cli реализует команды клиента поверх координатора синхронизации.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/phrasesync/internal/client/iocli"
	phrasesync "github.com/iudanet/phrasesync/internal/client/sync"
	"github.com/iudanet/phrasesync/internal/models"
)

//go:generate moq -out coordinator_mock.go . Coordinator

// Coordinator операции над коллекцией фраз, которые нужны командам
type Coordinator interface {
	SyncKey() string
	Phrases() models.PhraseCollection
	Add(ctx context.Context, english string) (models.Phrase, bool, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	SetSyncKey(ctx context.Context, key string) error
	NewSyncKey(ctx context.Context) (string, error)
	Sync(ctx context.Context) error
	Status(ctx context.Context) (phrasesync.Status, error)
}

// defaultWidth ширина вывода, если размер терминала неизвестен
const defaultWidth = 80

// Cli выполняет команды пользователя над координатором
type Cli struct {
	io     iocli.IO
	sync   Coordinator
	styles styles
	width  int
}

// New создает Cli, выводящий результат в stdio
func New(stdio iocli.IO, coordinator Coordinator) *Cli {
	width := defaultWidth
	if t, ok := stdio.(interface{ Width() int }); ok {
		width = t.Width()
	}
	return &Cli{
		io:     stdio,
		sync:   coordinator,
		styles: newStyles(stdio),
		width:  width,
	}
}

// rule разделитель между фразами, не шире терминала
func (c *Cli) rule() string {
	return strings.Repeat("─", min(c.width, 40))
}

type styles struct {
	header   lipgloss.Style
	english  lipgloss.Style
	viet     lipgloss.Style
	phonetic lipgloss.Style
	category lipgloss.Style
	id       lipgloss.Style
	key      lipgloss.Style
	warn     lipgloss.Style
}

// newStyles строит стили вывода. Цвета включаются, только если вывод в терминал.
func newStyles(w io.Writer) styles {
	if o, ok := w.(interface{ Output() io.Writer }); ok {
		w = o.Output()
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		header:   r.NewStyle().Bold(true).Underline(true),
		english:  r.NewStyle().Bold(true),
		viet:     r.NewStyle().Foreground(lipgloss.Color("2")),
		phonetic: r.NewStyle().Italic(true).Foreground(lipgloss.Color("8")),
		category: r.NewStyle().Foreground(lipgloss.Color("6")),
		id:       r.NewStyle().Faint(true),
		key:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		warn:     r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}
