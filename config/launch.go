package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

/* --------------------------------- Launch Config Defaults -------------------------------- */

const (
	// defaultAttempts is the number of reachability probes made before
	// the launch is declared failed.
	defaultAttempts = 30

	// defaultInterval is the pause between reachability probes.
	defaultInterval = 100 * time.Millisecond
)

/* --------------------------------- Launch Config Struct -------------------------------- */

// CaptureMode controls whether the launcher keeps the node's output
// streams for use in diagnostics.
type CaptureMode string

const (
	// CaptureAuto defers to the platform capability: capture everywhere
	// except on platforms where a diagnosis-time stream read can block.
	CaptureAuto CaptureMode = "auto"
	// CaptureAlways forces stream capture on.
	CaptureAlways CaptureMode = "always"
	// CaptureNever disables stream capture.
	CaptureNever CaptureMode = "never"
)

// LaunchConfig describes how to start a local node and decide it is up.
type LaunchConfig struct {
	// Command is the full command line used to start the node,
	// e.g. "ganache --port 8545".
	Command string `yaml:"command"`

	// URI is the RPC endpoint the node is expected to serve, e.g.
	// "http://127.0.0.1:8545" or "ws://127.0.0.1:8545".
	URI string `yaml:"uri"`

	// Attempts is the number of reachability probes before giving up.
	Attempts int `yaml:"attempts"`

	// Interval is the pause between reachability probes, in nanoseconds
	// when given as a bare integer.
	Interval time.Duration `yaml:"interval"`

	// CaptureOutput overrides the platform default for stream capture.
	CaptureOutput CaptureMode `yaml:"capture_output"`
}

/* --------------------------------- Launch Config Private Helpers -------------------------------- */

// hydrateLaunchDefaults assigns default values to LaunchConfig fields if they are not set
func (c *LaunchConfig) hydrateLaunchDefaults() {
	if c.Attempts == 0 {
		c.Attempts = defaultAttempts
	}
	if c.Interval == 0 {
		c.Interval = defaultInterval
	}
	if c.CaptureOutput == "" {
		c.CaptureOutput = CaptureAuto
	}
}

// Validate ensures the launch configuration is valid
func (c LaunchConfig) Validate() error {
	if strings.TrimSpace(c.Command) == "" {
		return errors.New("launch config: command is required")
	}
	if strings.TrimSpace(c.URI) == "" {
		return errors.New("launch config: uri is required")
	}
	if c.Attempts < 1 {
		return fmt.Errorf("launch config: attempts must be positive, got %d", c.Attempts)
	}
	switch c.CaptureOutput {
	case CaptureAuto, CaptureAlways, CaptureNever:
		return nil
	default:
		return fmt.Errorf("launch config: invalid capture_output: %s", c.CaptureOutput)
	}
}
