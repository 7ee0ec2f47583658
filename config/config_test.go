package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromYAML(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: debug
launch:
  command: "ganache --port 8545"
  uri: "http://127.0.0.1:8545"
  attempts: 10
`)

	config, err := LoadFromYAML(path)
	require.NoError(t, err)

	require.Equal(t, "debug", config.Logger.Level)
	require.Equal(t, "ganache --port 8545", config.Launch.Command)
	require.Equal(t, "http://127.0.0.1:8545", config.Launch.URI)
	require.Equal(t, 10, config.Launch.Attempts)
	// Unset optional fields get defaults.
	require.Equal(t, 100*time.Millisecond, config.Launch.Interval)
	require.Equal(t, CaptureAuto, config.Launch.CaptureOutput)
}

func TestLoadFromYAML_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
launch:
  command: "anvil"
  uri: "ws://127.0.0.1:8545"
`)

	config, err := LoadFromYAML(path)
	require.NoError(t, err)

	require.Equal(t, defaultLogLevel, config.Logger.Level)
	require.Equal(t, defaultAttempts, config.Launch.Attempts)
	require.Equal(t, defaultInterval, config.Launch.Interval)
}

func TestLoadFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing command",
			content: `
launch:
  uri: "http://127.0.0.1:8545"
`,
		},
		{
			name: "missing uri",
			content: `
launch:
  command: "ganache"
`,
		},
		{
			name: "invalid log level",
			content: `
logger:
  level: verbose
launch:
  command: "ganache"
  uri: "http://127.0.0.1:8545"
`,
		},
		{
			name: "invalid capture mode",
			content: `
launch:
  command: "ganache"
  uri: "http://127.0.0.1:8545"
  capture_output: sometimes
`,
		},
		{
			name: "negative attempts",
			content: `
launch:
  command: "ganache"
  uri: "http://127.0.0.1:8545"
  attempts: -1
`,
		},
		{
			name:    "malformed yaml",
			content: "launch: [",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeConfigFile(t, test.content)
			_, err := LoadFromYAML(path)
			require.Error(t, err)
		})
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	_, err := LoadFromYAML(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	require.Error(t, err)
}
