package vmerror

import (
	"github.com/pokt-network/poktroll/pkg/polylog"

	"github.com/tbrent/brownie/diagnostic"
	"github.com/tbrent/brownie/log"
)

const (
	revertKindRevert        = "revert"
	revertKindInvalidOpcode = "invalid opcode"

	// txidPrefix marks a transaction-identifier key inside the data block.
	txidPrefix = "0x"
)

// Classify interprets the raw error text returned by a failed execution
// node RPC call.
//
// On success it returns a Diagnostic. The error return is always a
// *diagnostic.Error:
//   - KindUnparseableResponse when raw is not a message+data mapping, or
//     the data block has no transaction-keyed entry
//   - KindIncompleteDiagnostic when the matched entry lacks its required
//     error field
//
// sm may be nil, in which case the revert-reason fallback always misses.
func Classify(logger polylog.Logger, raw string, sm SourceMap) (*Diagnostic, error) {
	p, ok := tryParseStructured(raw)
	if !ok {
		logger.Debug().
			Str("payload", log.Preview(raw)).
			Msg("node error payload is not a message+data mapping")
		return nil, diagnostic.NewUnparseableResponse(raw)
	}

	d := &Diagnostic{Message: *p.Message}
	if p.Data == nil {
		// A failure caught before any VM trace was produced: the
		// top-level message is all the node gave us.
		return d, nil
	}

	entry, ok := p.Data.firstTxEntry()
	if !ok {
		logger.Debug().
			Str("message", log.Preview(*p.Message)).
			Msg("data block has no transaction-keyed entry")
		return nil, diagnostic.NewUnparseableResponse(*p.Message)
	}

	detail, err := entry.detail()
	if err != nil || detail.Error == nil {
		logger.Debug().
			Str("txid", entry.key).
			Msg("data entry is missing the error field")
		return nil, diagnostic.NewIncompleteDiagnostic(*p.Message)
	}

	d.TxID = entry.key
	d.RevertKind = *detail.Error
	d.RevertReason = detail.Reason
	d.ProgramCounter = detail.ProgramCounter

	// The trace reports the program counter one instruction past the
	// failing instruction for an explicit revert.
	if d.RevertKind == revertKindRevert && d.ProgramCounter != nil {
		pc := *d.ProgramCounter - 1
		d.ProgramCounter = &pc
	}

	// The node truncates or omits the reason string for some reverts,
	// e.g. custom errors raised without a string argument. The source
	// map can recover a developer-authored message in that case.
	if d.RevertReason == nil && (d.RevertKind == revertKindRevert || d.RevertKind == revertKindInvalidOpcode) {
		if reason, found := lookupDevRevert(sm, d.ProgramCounter); found {
			d.RevertReason = &reason
		}
	}

	return d, nil
}
