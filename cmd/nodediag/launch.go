package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	configpkg "github.com/tbrent/brownie/config"
	"github.com/tbrent/brownie/nodelaunch"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch the configured node and wait for it to become reachable",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := configpkg.LoadFromYAML(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger := newLogger(config.Logger.Level)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		launcher := nodelaunch.NewLauncher(logger, config.Launch)
		node, err := launcher.Launch(ctx)
		if err != nil {
			// Diagnostic errors render their full user-facing form.
			return err
		}

		logger.Info().
			Str("uri", node.URI()).
			Msg("node is reachable; interrupt to stop it")

		<-ctx.Done()
		return node.Stop()
	},
}
