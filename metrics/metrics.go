// Package metrics exposes prometheus counters for diagnostic outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tbrent/brownie/diagnostic"
)

// See the metrics initialization below for details.
const (
	nodediagProcess = "nodediag"

	vmErrorsTotalName       = "vm_errors_total"
	launchFailuresTotalName = "launch_failures_total"
)

func init() {
	prometheus.MustRegister(vmErrorsTotal)
	prometheus.MustRegister(launchFailuresTotal)
}

var (
	// vmErrorsTotal counts classified VM exceptions per revert kind.
	// It increments once per classified payload with the label:
	//   - revert_kind: "revert", "invalid opcode", "out of gas", or
	//     "none" for message-only diagnostics
	//
	// Usage:
	// - Spot regressions that suddenly revert in bulk.
	// - Separate explicit reverts from opcode/gas failures.
	vmErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: nodediagProcess,
			Name:      vmErrorsTotalName,
			Help:      "Total number of classified VM errors, labeled by revert kind.",
		},
		[]string{"revert_kind"},
	)

	// launchFailuresTotal counts failed node launch attempts with the label:
	//   - kind: "launch_failure" or "connection_failure"
	//
	// Usage:
	// - Distinguish a broken node binary from a flaky startup.
	launchFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: nodediagProcess,
			Name:      launchFailuresTotalName,
			Help:      "Total number of failed node launch attempts, labeled by failure kind.",
		},
		[]string{"kind"},
	)
)

// RecordVMError publishes a classified VM error observation.
func RecordVMError(revertKind string) {
	if revertKind == "" {
		revertKind = "none"
	}
	vmErrorsTotal.With(prometheus.Labels{"revert_kind": revertKind}).Inc()
}

// RecordLaunchFailure publishes a failed launch attempt observation.
func RecordLaunchFailure(kind diagnostic.Kind) {
	launchFailuresTotal.With(prometheus.Labels{"kind": kind.String()}).Inc()
}
