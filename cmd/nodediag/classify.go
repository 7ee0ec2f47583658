package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	configpkg "github.com/tbrent/brownie/config"
	"github.com/tbrent/brownie/metrics"
	"github.com/tbrent/brownie/vmerror"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [payload]",
	Short: "Classify a node error payload into a VM diagnostic",
	Long: `classify interprets an execution node's error payload (given as the
argument, or on stdin when the argument is omitted) and prints the
rendered diagnostic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := payloadArg(args)
		if err != nil {
			return err
		}

		// The config file is optional here: classify only needs a log level.
		level := "info"
		if config, err := configpkg.LoadFromYAML(configPath); err == nil {
			level = config.Logger.Level
		}
		logger := newLogger(level)

		d, err := vmerror.Classify(logger, raw, nil)
		if err != nil {
			return err
		}
		metrics.RecordVMError(d.RevertKind)

		fmt.Fprintln(cmd.OutOrStdout(), d.String())
		return nil
	},
}

func payloadArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read payload from stdin: %w", err)
	}
	return string(raw), nil
}
