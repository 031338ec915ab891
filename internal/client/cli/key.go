package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runKey() error {
	c.io.Printf("Sync key: %s\n", c.styles.key.Render(c.sync.SyncKey()))
	c.io.Println("Enter this key on another device with 'phrasesync key set <key>' to share the collection.")
	return nil
}

func (c *Cli) runKeySet(ctx context.Context, key string) error {
	if err := c.sync.SetSyncKey(ctx, key); err != nil {
		return fmt.Errorf("failed to change sync key: %w", err)
	}

	c.io.Printf("✓ Sync key changed to %s, %d phrase(s) loaded\n", c.styles.key.Render(c.sync.SyncKey()), len(c.sync.Phrases()))
	return nil
}

func (c *Cli) runKeyNew(ctx context.Context) error {
	key, err := c.sync.NewSyncKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to create sync key: %w", err)
	}

	c.io.Printf("✓ New sync key: %s\n", c.styles.key.Render(key))
	return nil
}
