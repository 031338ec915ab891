package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/phrasesync/internal/client/storage"
	"github.com/iudanet/phrasesync/internal/models"
)

func (c *Cli) runAdd(ctx context.Context, english string) error {
	phrase, created, err := c.sync.Add(ctx, english)
	if err != nil && !errors.Is(err, storage.ErrQuotaExceeded) {
		return fmt.Errorf("failed to add phrase: %w", err)
	}

	if !created {
		c.io.Println("Phrase already saved:")
	} else {
		c.io.Println("✓ Phrase added:")
	}
	c.printPhrase(phrase)

	if err != nil {
		// фраза есть в памяти и уйдет на сервер, но локально не сохранена
		c.io.Println(c.styles.warn.Render("Warning: local cache is full, the phrase is kept only on the server: " + err.Error()))
	}
	return nil
}

func (c *Cli) runList(category string) error {
	phrases := c.sync.Phrases()
	category = strings.ToLower(strings.TrimSpace(category))

	if category != "" {
		filtered := make(models.PhraseCollection, 0, len(phrases))
		for _, p := range phrases {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		phrases = filtered
	}

	if len(phrases) == 0 {
		c.io.Println("No phrases found.")
		c.io.Println()
		c.io.Println("Use 'phrasesync add <english>' to add your first phrase.")
		return nil
	}

	c.io.Println(c.styles.header.Render(fmt.Sprintf("Saved phrases (%d)", len(phrases))))
	c.io.Println()
	for i, p := range phrases {
		if i > 0 {
			c.io.Println(c.styles.id.Render(c.rule()))
		}
		c.printPhrase(p)
	}
	return nil
}

func (c *Cli) printPhrase(p models.Phrase) {
	c.io.Printf("%s  %s\n", c.styles.english.Render(p.English), c.styles.category.Render("["+p.Category+"]"))
	c.io.Printf("  %s\n", c.styles.viet.Render(p.Vietnamese))
	if p.Phonetic != "" {
		c.io.Printf("  %s\n", c.styles.phonetic.Render(p.Phonetic))
	}
	added := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04")
	c.io.Printf("  %s\n", c.styles.id.Render("id: "+p.ID+"  added: "+added))
}

func (c *Cli) runDelete(ctx context.Context, id string) error {
	if err := c.sync.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrQuotaExceeded) {
			c.io.Println(c.styles.warn.Render("Warning: " + err.Error()))
			return nil
		}
		return fmt.Errorf("failed to delete phrase: %w", err)
	}

	c.io.Printf("✓ Phrase %s deleted\n", id)
	return nil
}

func (c *Cli) runClear(ctx context.Context, force bool) error {
	if !force {
		answer, err := c.io.ReadInput(fmt.Sprintf("Delete all %d phrases on every device using this sync key? [y/N]: ", len(c.sync.Phrases())))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !isYes(answer) {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	if err := c.sync.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear phrases: %w", err)
	}

	c.io.Println("✓ All phrases deleted")
	return nil
}

func (c *Cli) runSync(ctx context.Context) error {
	if err := c.sync.Sync(ctx); err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Printf("✓ %d phrase(s) pushed to server\n", len(c.sync.Phrases()))
	return nil
}

func isYes(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
