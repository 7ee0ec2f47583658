package nodelaunch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pokt-network/poktroll/pkg/polylog/polyzero"
	"github.com/stretchr/testify/require"

	"github.com/tbrent/brownie/config"
	"github.com/tbrent/brownie/diagnostic"
)

func testLaunchConfig(command string) config.LaunchConfig {
	return config.LaunchConfig{
		Command:       command,
		URI:           "http://127.0.0.1:8545",
		Attempts:      5,
		Interval:      10 * time.Millisecond,
		CaptureOutput: config.CaptureAlways,
	}
}

func TestLauncher_LaunchFailure(t *testing.T) {
	launcher := NewLauncher(polyzero.NewLogger(), testLaunchConfig("/nonexistent-node-binary"))

	node, err := launcher.Launch(context.Background())
	require.Nil(t, node)
	require.True(t, diagnostic.IsKind(err, diagnostic.KindLaunchFailure))

	de, _ := diagnostic.AsError(err)
	require.Equal(t, "/nonexistent-node-binary", de.Command)
	require.Equal(t, "http://127.0.0.1:8545", de.TargetURI)
	require.Nil(t, de.ExitCode)
	require.Nil(t, de.Stdout)
}

func TestLauncher_ConnectionFailure(t *testing.T) {
	// The command exits immediately after printing, so the node can
	// never become reachable.
	launcher := NewLauncher(polyzero.NewLogger(), testLaunchConfig("echo hello"))
	launcher.probe = func(context.Context, string) error { return errors.New("connection refused") }

	node, err := launcher.Launch(context.Background())
	require.Nil(t, node)
	require.True(t, diagnostic.IsKind(err, diagnostic.KindConnectionFailure))

	de, _ := diagnostic.AsError(err)
	require.NotNil(t, de.ExitCode)
	require.Equal(t, 0, *de.ExitCode)
	require.NotNil(t, de.Stdout)
	require.Equal(t, "hello", *de.Stdout)
	require.NotNil(t, de.Stderr)
	require.Equal(t, "(Empty)", *de.Stderr)
}

func TestLauncher_CaptureDisabled(t *testing.T) {
	cfg := testLaunchConfig("echo hello")
	cfg.CaptureOutput = config.CaptureNever

	launcher := NewLauncher(polyzero.NewLogger(), cfg)
	launcher.probe = func(context.Context, string) error { return errors.New("connection refused") }

	_, err := launcher.Launch(context.Background())
	de, ok := diagnostic.AsError(err)
	require.True(t, ok)
	require.Equal(t, diagnostic.KindConnectionFailure, de.Kind)
	require.Nil(t, de.Stdout)
	require.Nil(t, de.Stderr)
}

func TestLauncher_Success(t *testing.T) {
	launcher := NewLauncher(polyzero.NewLogger(), testLaunchConfig("sleep 5"))
	launcher.probe = func(context.Context, string) error { return nil }

	node, err := launcher.Launch(context.Background())
	require.NoError(t, err)
	require.NotNil(t, node)
	require.Equal(t, "http://127.0.0.1:8545", node.URI())

	require.NoError(t, node.Stop())
}

func TestLauncher_ContextCancelled(t *testing.T) {
	cfg := testLaunchConfig("sleep 5")
	cfg.Attempts = 1000

	launcher := NewLauncher(polyzero.NewLogger(), cfg)
	launcher.probe = func(context.Context, string) error { return errors.New("connection refused") }

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	node, err := launcher.Launch(ctx)
	require.Nil(t, node)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProbeURI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"TestRPC"}`))
	}))
	defer server.Close()

	require.NoError(t, probeURI(context.Background(), server.URL))
}

func TestProbeURI_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	uri := server.URL
	server.Close()

	require.Error(t, probeURI(context.Background(), uri))
}
