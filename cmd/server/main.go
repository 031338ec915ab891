package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/phrasesync/internal/logging"
	"github.com/iudanet/phrasesync/internal/server"
	"github.com/iudanet/phrasesync/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "phrasesync-server",
		Short:         "Phrase sync server",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env читается до конфигурации, переменные окружения имеют приоритет
			if err := config.LoadDotEnv(); err != nil {
				return err
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}

			logger, closer, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				File:   cfg.Log.File,
			})
			if err != nil {
				return err
			}
			defer func() {
				_ = closer.Close()
			}()

			logger.Info("Starting phrasesync server",
				"version", Version,
				"commit", GitCommit,
				"store", cfg.Store.Driver)

			srv, err := server.New(cfg, logger, Version)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to config file (yaml, json or toml)")
	if err := config.RegisterFlags(v, cmd.Flags()); err != nil {
		// флаги регистрируются статически, ошибка означает опечатку в коде
		panic(err)
	}

	return cmd
}
