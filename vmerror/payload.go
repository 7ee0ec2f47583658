package vmerror

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// payload is the normalized form of an execution node's error payload.
//
// Expected wire shape:
//
//	message: string
//	data?:
//	  "<0x-prefixed txid>":
//	    error: string            # e.g. "revert", "invalid opcode", "out of gas"
//	    reason?: string
//	    program_counter?: integer
//	  ...other keys ignored...
//
// Any other top-level keys are ignored as well.
type payload struct {
	Message *string    `yaml:"message"`
	Data    *txDataMap `yaml:"data"`
}

// txDataMap holds the entries of the payload's data block in document
// order. The classifier picks the first 0x-prefixed key, so entry order
// is load-bearing; decoding into a plain Go map would randomize it.
//
// Entry values are kept as raw nodes: the data block routinely carries
// foreign entries (stack traces, error names) whose values are not
// transaction detail mappings, and only the selected entry is decoded.
type txDataMap struct {
	entries []txDataEntry
}

type txDataEntry struct {
	key  string
	node *yaml.Node
}

type txDetail struct {
	Error          *string `yaml:"error"`
	Reason         *string `yaml:"reason"`
	ProgramCounter *int    `yaml:"program_counter"`
}

// UnmarshalYAML records the data block's entries while preserving order.
func (m *txDataMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("data: expected a mapping, got yaml node kind %d", value.Kind)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var key string
		if err := value.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("data: decoding key: %w", err)
		}
		m.entries = append(m.entries, txDataEntry{key: key, node: value.Content[i+1]})
	}
	return nil
}

// firstTxEntry returns the first entry whose key looks like a
// transaction id. If the node can ever return multiple transaction-keyed
// entries, "first in document order" is the selection policy.
func (m *txDataMap) firstTxEntry() (txDataEntry, bool) {
	for _, entry := range m.entries {
		if strings.HasPrefix(entry.key, txidPrefix) {
			return entry, true
		}
	}
	return txDataEntry{}, false
}

// detail decodes the entry's value. A value that is not a detail mapping
// reports an error; the classifier treats that the same as a missing
// error field.
func (e txDataEntry) detail() (txDetail, error) {
	var detail txDetail
	if err := e.node.Decode(&detail); err != nil {
		return txDetail{}, fmt.Errorf("data[%s]: %w", e.key, err)
	}
	return detail, nil
}

// tryParseStructured attempts to interpret raw as a structured error
// payload. The node's error text is commonly a JSON document, but some
// clients hand back a loosely-quoted dict repr instead; YAML flow
// mapping syntax accepts both. Absence (ok == false), not an error,
// signals that raw should be treated as an opaque string.
func tryParseStructured(raw string) (payload, bool) {
	var p payload
	if err := yaml.Unmarshal([]byte(raw), &p); err != nil {
		return payload{}, false
	}
	if p.Message == nil {
		return payload{}, false
	}
	return p, true
}
