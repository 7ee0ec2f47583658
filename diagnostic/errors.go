package diagnostic

import (
	"errors"
	"fmt"
)

// Error is a diagnostic failure raised to the immediate caller.
// Only the fields relevant to the Kind are set:
//   - KindUnparseableResponse, KindIncompleteDiagnostic: Raw
//   - KindLaunchFailure: Command, TargetURI
//   - KindConnectionFailure: Command, TargetURI, ExitCode, Stdout, Stderr
type Error struct {
	Kind Kind

	// Raw holds the best-available raw text of the node's error payload.
	Raw string

	// Command is the full command line used to start the node process.
	Command string

	// TargetURI is the RPC endpoint the node was expected to serve.
	TargetURI string

	// ExitCode is the process exit status at diagnosis time.
	// Nil if the process had not been reaped when the snapshot was taken.
	ExitCode *int

	// Stdout and Stderr hold the process output accumulated up to the
	// diagnosis moment. Nil on platforms where stream capture is skipped.
	Stdout *string
	Stderr *string
}

var _ error = &Error{}

// Error renders the user-facing form of the diagnostic. Callers are
// expected to display it directly without further interpretation.
func (e *Error) Error() string {
	switch e.Kind {
	case KindLaunchFailure:
		return fmt.Sprintf("Unable to launch local RPC client.\nCommand: %s\nURI: %s", e.Command, e.TargetURI)

	case KindConnectionFailure:
		msg := fmt.Sprintf(
			"Able to launch RPC client, but unable to connect.\n\nCommand: %s\nURI: %s\nExit Code: %s",
			e.Command, e.TargetURI, formatExitCode(e.ExitCode),
		)
		if e.Stdout != nil && e.Stderr != nil {
			msg = fmt.Sprintf("%s\n\nStdout:\n%s\n\nStderr:\n%s", msg, *e.Stdout, *e.Stderr)
		}
		return msg

	default:
		return e.Raw
	}
}

// NewUnparseableResponse wraps the raw text of a node error payload that
// could not be interpreted as message+data.
func NewUnparseableResponse(raw string) *Error {
	return &Error{Kind: KindUnparseableResponse, Raw: raw}
}

// NewIncompleteDiagnostic wraps the payload's top-level message when a
// matched data entry was missing its required error field.
func NewIncompleteDiagnostic(raw string) *Error {
	return &Error{Kind: KindIncompleteDiagnostic, Raw: raw}
}

// AsError returns the diagnostic error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsKind reports whether err is a diagnostic error of the given kind.
func IsKind(err error, kind Kind) bool {
	de, ok := AsError(err)
	return ok && de.Kind == kind
}

func formatExitCode(code *int) string {
	if code == nil {
		return "unknown"
	}
	return fmt.Sprintf("%d", *code)
}
