package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	st, err := c.sync.Status(ctx)

	c.io.Printf("Sync key: %s\n", c.styles.key.Render(st.SyncKey))
	c.io.Printf("Phrases:  %d\n", st.Count)
	if st.Pending {
		c.io.Println("Changes:  " + c.styles.warn.Render("waiting to be pushed"))
	} else {
		c.io.Println("Changes:  synced")
	}

	if err != nil {
		c.io.Println("Server:   " + c.styles.warn.Render("unreachable"))
		return fmt.Errorf("failed to check server: %w", err)
	}

	server := st.ServerStatus
	if st.ServerVersion != "" {
		server += " (version " + st.ServerVersion + ")"
	}
	if st.ServerStatus != "ok" {
		server = c.styles.warn.Render(server)
	}
	c.io.Println("Server:   " + server)
	return nil
}
