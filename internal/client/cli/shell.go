package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const shellHelp = `Commands:
  add <english>     translate and save a phrase
  list [category]   show saved phrases
  delete <id>       delete a phrase
  clear             delete all phrases
  key               show sync key
  key set <key>     switch to another sync key
  key new           generate a new sync key
  sync              push the collection now
  status            show sync state and server health
  help              show this help
  exit              leave the shell`

// runShell читает команды построчно, пока не встретит exit или конец ввода.
// Координатор живет все время сессии, поэтому изменения уходят на сервер
// отложенно, как в приложении.
func (c *Cli) runShell(ctx context.Context) error {
	prompt := ""
	if c.io.Interactive() {
		prompt = "phrasesync> "
		c.io.Println("Type 'help' for commands, 'exit' to quit.")
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := c.io.ReadInput(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		if line == "" {
			continue
		}

		quit, err := c.execLine(ctx, line)
		if err != nil {
			c.io.Printf("Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (c *Cli) execLine(ctx context.Context, line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "exit", "quit":
		return true, nil
	case "help", "?":
		c.io.Println(shellHelp)
		return false, nil
	case "add":
		if rest == "" {
			return false, errors.New("usage: add <english>")
		}
		return false, c.runAdd(ctx, rest)
	case "list", "ls":
		return false, c.runList(rest)
	case "delete", "rm":
		if rest == "" {
			return false, errors.New("usage: delete <id>")
		}
		return false, c.runDelete(ctx, rest)
	case "clear":
		return false, c.runClear(ctx, false)
	case "sync":
		return false, c.runSync(ctx)
	case "status":
		return false, c.runStatus(ctx)
	case "key":
		sub, arg, _ := strings.Cut(rest, " ")
		switch sub {
		case "":
			return false, c.runKey()
		case "set":
			arg = strings.TrimSpace(arg)
			if arg == "" {
				return false, errors.New("usage: key set <key>")
			}
			return false, c.runKeySet(ctx, arg)
		case "new":
			return false, c.runKeyNew(ctx)
		default:
			return false, fmt.Errorf("unknown key command %q", sub)
		}
	default:
		return false, fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}
