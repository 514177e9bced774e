// Package main provides the CLI entrypoint for the Bow desktop shell's
// navigation guard. It wires subcommands (serve, check, deeplink, policy),
// loads configuration and initializes logging.
package main

import (
	"bowshell/internal/config"
	"bowshell/pkg/logger"
	"bowshell/pkg/navguard"
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is filled by the root command before any subcommand runs.
type env struct {
	cfg   *config.Config
	guard *navguard.Guard
}

func newRootCommand() *cobra.Command {
	var (
		e          env
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:          "bowshell",
		Short:        "Navigation guard for the Bow desktop shell",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Setup(cfg.Environment)

			guard, err := navguard.New(cfg.NavigationPolicy())
			if err != nil {
				return err
			}

			e.cfg, e.guard = cfg, guard

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (environment only when empty)")

	rootCmd.AddCommand(
		serveCommand(&e),
		checkCommand(&e),
		deepLinkCommand(&e),
		policyCommand(&e),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
