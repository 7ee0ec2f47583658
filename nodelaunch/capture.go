package nodelaunch

import (
	"runtime"
	"strings"

	"github.com/tbrent/brownie/config"
	"github.com/tbrent/brownie/diagnostic"
)

// emptyStreamMarker stands in for a captured stream that produced no
// output, so the rendered diagnostic still shows the stream was read.
const emptyStreamMarker = "(Empty)"

// Capture produces process-launch diagnostics.
//
// CaptureStreams is resolved once, at construction: on Windows, reading
// a child's output at diagnosis time can block indefinitely, so stream
// capture is skipped there entirely. Given the flag, both methods are
// pure transformations of their inputs.
type Capture struct {
	CaptureStreams bool
}

// DefaultCapture resolves the stream-capture capability for the current
// platform.
func DefaultCapture() Capture {
	return Capture{CaptureStreams: runtime.GOOS != "windows"}
}

// captureFromConfig applies the config override on top of the platform
// default.
func captureFromConfig(mode config.CaptureMode) Capture {
	switch mode {
	case config.CaptureAlways:
		return Capture{CaptureStreams: true}
	case config.CaptureNever:
		return Capture{CaptureStreams: false}
	default:
		return DefaultCapture()
	}
}

// LaunchFailure reports that the node process could not be started at
// all. The process never existed, so there is no exit code and no
// output to capture.
func (c Capture) LaunchFailure(command, targetURI string) *diagnostic.Error {
	return &diagnostic.Error{
		Kind:      diagnostic.KindLaunchFailure,
		Command:   command,
		TargetURI: targetURI,
	}
}

// ConnectionFailure reports that the node process started but never
// became reachable at the target URI.
//
// The caller's retry loop is expected to have given up before calling
// this: the process is assumed terminated or about to be reaped, and
// only a snapshot (exit status poll, accumulated output) is read.
func (c Capture) ConnectionFailure(command, targetURI string, proc Process) *diagnostic.Error {
	d := &diagnostic.Error{
		Kind:      diagnostic.KindConnectionFailure,
		Command:   command,
		TargetURI: targetURI,
	}

	if code, exited := proc.ExitCode(); exited {
		d.ExitCode = &code
	}

	if c.CaptureStreams {
		stdout := streamString(proc.StdoutBytes())
		stderr := streamString(proc.StderrBytes())
		d.Stdout = &stdout
		d.Stderr = &stderr
	}

	return d
}

func streamString(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return emptyStreamMarker
	}
	return s
}
