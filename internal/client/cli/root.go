package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iudanet/phrasesync/internal/client/api"
	"github.com/iudanet/phrasesync/internal/client/config"
	"github.com/iudanet/phrasesync/internal/client/iocli"
	"github.com/iudanet/phrasesync/internal/client/storage"
	"github.com/iudanet/phrasesync/internal/client/storage/boltdb"
	phrasesync "github.com/iudanet/phrasesync/internal/client/sync"
	"github.com/iudanet/phrasesync/internal/logging"
	"github.com/iudanet/phrasesync/internal/synckey"
)

// App связывает cobra команды с окружением клиента.
// Окружение (кеш, API клиент, координатор) открывается перед командой
// и закрывается в Close, даже если команда завершилась ошибкой.
type App struct {
	io          iocli.IO
	v           *viper.Viper
	cli         *Cli
	coordinator *phrasesync.Coordinator
	closers     []io.Closer
	version     string
}

// NewApp создает приложение, читающее и пишущее через stdio
func NewApp(stdio iocli.IO, version string) *App {
	return &App{io: stdio, v: config.New(), version: version}
}

// Execute выполняет команду и освобождает ресурсы
func (a *App) Execute(ctx context.Context, args []string) error {
	root, err := a.RootCommand()
	if err != nil {
		return err
	}
	root.SetArgs(args)

	runErr := root.ExecuteContext(ctx)
	return errors.Join(runErr, a.Close())
}

// RootCommand собирает дерево команд
func (a *App) RootCommand() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "phrasesync",
		Short:         "Vietnamese phrase book synchronized between devices",
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetOut(a.io)
	root.SetErr(a.io)

	if err := config.RegisterFlags(a.v, root.PersistentFlags()); err != nil {
		return nil, err
	}

	var (
		force    bool
		category string
	)

	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Show the sync key of this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runKey()
		},
	}
	keyCmd.AddCommand(
		&cobra.Command{
			Use:   "set <key>",
			Short: "Switch to another sync key, replacing local phrases",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runKeySet(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "new",
			Short: "Generate a new sync key and start an empty collection",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runKeyNew(cmd.Context())
			},
		},
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved phrases, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runList(category)
		},
	}
	listCmd.Flags().StringVarP(&category, "category", "c", "", "show only this category")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all phrases on every device using this sync key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runClear(cmd.Context(), force)
		},
	}
	clearCmd.Flags().BoolVarP(&force, "yes", "y", false, "do not ask for confirmation")

	root.AddCommand(
		keyCmd,
		&cobra.Command{
			Use:   "add <english>",
			Short: "Translate an English phrase and save it",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runAdd(cmd.Context(), strings.Join(args, " "))
			},
		},
		listCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a phrase",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runDelete(cmd.Context(), args[0])
			},
		},
		clearCmd,
		&cobra.Command{
			Use:   "sync",
			Short: "Push the collection to the server now",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runSync(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show sync key, pending changes and server health",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runStatus(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "shell",
			Short: "Interactive session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cli.runShell(cmd.Context())
			},
		},
	)

	return root, nil
}

// setup открывает кеш и запускает координатор
func (a *App) setup(ctx context.Context) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
	})
	if err != nil {
		return err
	}
	a.closers = append(a.closers, logCloser)

	cache, err := boltdb.New(ctx, cfg.DBPath, boltdb.Options{MaxPhrasesBytes: cfg.QuotaBytes})
	if err != nil {
		return fmt.Errorf("failed to open local cache: %w", err)
	}
	a.closers = append(a.closers, cache)

	a.coordinator = phrasesync.NewCoordinator(
		api.NewClient(cfg.Server),
		cache,
		synckey.NewGenerator(),
		logger.With(slog.String("component", "sync")),
		phrasesync.Config{Debounce: cfg.Debounce},
	)
	a.cli = New(a.io, a.coordinator)

	res, err := a.coordinator.Init(ctx)
	switch {
	case errors.Is(err, storage.ErrQuotaExceeded) && res != nil:
		a.io.Println(a.cli.styles.warn.Render("Warning: server collection does not fit into the local cache: " + err.Error()))
	case err != nil:
		return fmt.Errorf("failed to load phrases: %w", err)
	}

	switch {
	case res.Source == phrasesync.SourceOffline:
		a.io.Println(a.cli.styles.warn.Render("Server is unreachable, working with local phrases only."))
	case res.Pushed:
		a.io.Printf("Uploaded %d local phrase(s) to the server.\n", res.Count)
	}
	if res.KeyCreated {
		a.io.Printf("Created sync key %s\n", a.cli.styles.key.Render(res.SyncKey))
	}

	return nil
}

// Close отправляет ожидающие изменения и закрывает кеш
func (a *App) Close() error {
	if a.coordinator != nil {
		a.coordinator.Close()
		a.coordinator = nil
	}

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

