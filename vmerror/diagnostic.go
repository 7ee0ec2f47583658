// Package vmerror classifies the error payloads returned by a local EVM
// execution node into structured virtual-machine diagnostics: the revert
// kind, the revert reason, the faulting program counter and the
// transaction that produced the fault.
package vmerror

// Diagnostic describes an EVM exception raised while processing a
// contract call or transaction.
//
// TxID, RevertKind, RevertReason and ProgramCounter are populated as a
// group: either the payload carried a usable data block and all of them
// were extracted from it, or none of them are set and only Message is
// available.
type Diagnostic struct {
	// Message is the full error message received from the RPC client.
	Message string

	// TxID is the transaction whose execution produced the error.
	TxID string

	// RevertKind is the node's error type, e.g. "revert" or
	// "invalid opcode". Empty when the payload carried no usable
	// execution-trace detail.
	RevertKind string

	// RevertReason is the returned error string, if any. When the node
	// omits it, the classifier may recover one via the source map.
	RevertReason *string

	// ProgramCounter is the bytecode index at which the error was
	// raised, already adjusted for the off-by-one in revert traces.
	ProgramCounter *int

	// source is the resolved source-code fragment, attached at most
	// once via WithSource after construction.
	source string
}

var _ error = &Diagnostic{}

// WithSource attaches the source-code fragment resolved for the faulting
// program counter and returns the diagnostic for chaining. It is meant
// to be called at most once, by the owning caller, before the
// diagnostic is shared further.
func (d *Diagnostic) WithSource(fragment string) *Diagnostic {
	d.source = fragment
	return d
}

// Source returns the attached source-code fragment, if any.
func (d *Diagnostic) Source() string {
	return d.source
}

// String renders the user-facing form of the diagnostic:
//   - no execution-trace detail: the raw message, verbatim
//   - otherwise: the revert kind, ": <reason>" when a reason is known,
//     and the source fragment on its own line when one was attached
func (d *Diagnostic) String() string {
	if d.RevertKind == "" {
		return d.Message
	}
	msg := d.RevertKind
	if d.RevertReason != nil && *d.RevertReason != "" {
		msg = msg + ": " + *d.RevertReason
	}
	if d.source != "" {
		msg = msg + "\n" + d.source
	}
	return msg
}

func (d *Diagnostic) Error() string {
	return d.String()
}
