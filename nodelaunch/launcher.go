package nodelaunch

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pokt-network/poktroll/pkg/polylog"

	"github.com/tbrent/brownie/config"
	"github.com/tbrent/brownie/diagnostic"
	"github.com/tbrent/brownie/metrics"
)

// reapGracePeriod bounds how long the launcher waits, after killing the
// process, for the reaper to record the exit status used in the
// diagnostic.
const reapGracePeriod = 2 * time.Second

// Launcher spawns a local node process and waits for it to become
// reachable at the configured URI.
//
// The launcher owns the process only up to the point where it either
// hands back a running Node or produces a diagnostic; longer-term
// supervision belongs to the caller.
type Launcher struct {
	logger  polylog.Logger
	cfg     config.LaunchConfig
	capture Capture
	probe   probeFunc
}

func NewLauncher(logger polylog.Logger, cfg config.LaunchConfig) *Launcher {
	return &Launcher{
		logger:  logger.With("component", "nodelaunch"),
		cfg:     cfg,
		capture: captureFromConfig(cfg.CaptureOutput),
		probe:   probeURI,
	}
}

// Launch starts the configured command and probes the target URI until
// the node answers or the configured attempts are exhausted.
//
// Failure returns are always a *diagnostic.Error:
//   - KindLaunchFailure when the process could not be started
//   - KindConnectionFailure when it started but never became reachable;
//     the process is killed before the diagnostic is produced
//
// Context cancellation is surfaced as the context's error, not as a
// diagnostic.
func (l *Launcher) Launch(ctx context.Context) (*Node, error) {
	args := strings.Fields(l.cfg.Command)
	if len(args) == 0 {
		l.logger.Warn().Msg("launch command is empty")
		metrics.RecordLaunchFailure(diagnostic.KindLaunchFailure)
		return nil, l.capture.LaunchFailure(l.cfg.Command, l.cfg.URI)
	}
	cmd := exec.Command(args[0], args[1:]...)

	proc := newOSProcess(cmd)
	if l.capture.CaptureStreams {
		cmd.Stdout = proc.stdout
		cmd.Stderr = proc.stderr
	}

	l.logger.Info().
		Str("command", l.cfg.Command).
		Str("uri", l.cfg.URI).
		Msg("launching local RPC client")

	if err := cmd.Start(); err != nil {
		l.logger.Warn().Err(err).Msg("node process failed to start")
		metrics.RecordLaunchFailure(diagnostic.KindLaunchFailure)
		return nil, l.capture.LaunchFailure(l.cfg.Command, l.cfg.URI)
	}
	go proc.reap()

	for attempt := 1; attempt <= l.cfg.Attempts; attempt++ {
		if err := l.probe(ctx, l.cfg.URI); err == nil {
			l.logger.Info().
				Int("attempt", attempt).
				Msg("node is reachable")
			return &Node{uri: l.cfg.URI, proc: proc}, nil
		}

		// Once the process has exited, further probing cannot succeed.
		if _, exited := proc.ExitCode(); exited {
			l.logger.Debug().Int("attempt", attempt).Msg("node process exited before becoming reachable")
			break
		}

		select {
		case <-ctx.Done():
			l.terminate(proc)
			return nil, ctx.Err()
		case <-time.After(l.cfg.Interval):
		}
	}

	l.terminate(proc)
	metrics.RecordLaunchFailure(diagnostic.KindConnectionFailure)
	return nil, l.capture.ConnectionFailure(l.cfg.Command, l.cfg.URI, proc)
}

// terminate kills the process and gives the reaper a moment to record
// the exit status, so the diagnostic can include it.
func (l *Launcher) terminate(proc *osProcess) {
	if proc.cmd.Process != nil {
		_ = proc.cmd.Process.Kill()
	}

	deadline := time.NewTimer(reapGracePeriod)
	defer deadline.Stop()
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-deadline.C:
			return
		case <-tick.C:
			if _, exited := proc.ExitCode(); exited {
				return
			}
		}
	}
}

// Node is a handle to a successfully launched, reachable node process.
type Node struct {
	uri  string
	proc *osProcess
}

// URI returns the RPC endpoint the node serves.
func (n *Node) URI() string {
	return n.uri
}

// Stop kills the node process. It does not wait for the exit status
// beyond what the reaper records.
func (n *Node) Stop() error {
	if n.proc.cmd.Process == nil {
		return nil
	}
	if _, exited := n.proc.ExitCode(); exited {
		return nil
	}
	return n.proc.cmd.Process.Kill()
}
