package main

import (
	"github.com/pokt-network/poktroll/pkg/polylog"
	"github.com/pokt-network/poktroll/pkg/polylog/polyzero"
	"github.com/spf13/cobra"
)

// defaultConfigPath is resolved relative to the working directory.
const defaultConfigPath = "config/.config.yaml"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "nodediag",
	Short: "Diagnostics for locally-spawned EVM execution nodes",
	Long: `nodediag launches a local EVM execution node and turns failed launch
attempts and node error payloads into structured diagnostics.`,
	// Diagnostic errors are the intended output; a usage dump would bury them.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML config file")
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(classifyCmd)
}

// newLogger builds the polyzero logger from the configured level.
func newLogger(level string) polylog.Logger {
	loggerOpts := []polylog.LoggerOption{
		polyzero.WithLevel(polyzero.ParseLevel(level)),
	}
	return polyzero.NewLogger(loggerOpts...)
}
