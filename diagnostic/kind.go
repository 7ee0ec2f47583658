// Package diagnostic defines the typed failures produced while talking to a
// locally-spawned RPC client: launch and connection failures on the process
// side, and unusable error payloads on the RPC side.
//
// The set of kinds is closed. Callers are expected to switch over Kind
// rather than compare error strings.
package diagnostic

// Kind identifies the category of a diagnostic failure.
type Kind int

const (
	// KindUnparseableResponse: the node's error payload could not be
	// interpreted as a message+data mapping. Parsing is deterministic,
	// so this failure is never retried.
	KindUnparseableResponse Kind = iota

	// KindIncompleteDiagnostic: a transaction entry matched inside the
	// payload's data block but was missing its required error field.
	// A malformed entry is never partially trusted, so this is handled
	// exactly like an unparseable response.
	KindIncompleteDiagnostic

	// KindLaunchFailure: the node process could not be started at all.
	KindLaunchFailure

	// KindConnectionFailure: the node process started but never became
	// reachable at the target URI within the allotted attempts.
	KindConnectionFailure
)

func (k Kind) String() string {
	switch k {
	case KindUnparseableResponse:
		return "unparseable_response"
	case KindIncompleteDiagnostic:
		return "incomplete_diagnostic"
	case KindLaunchFailure:
		return "launch_failure"
	case KindConnectionFailure:
		return "connection_failure"
	default:
		return "unknown"
	}
}
