package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/tbrent/brownie/diagnostic"
)

func TestRecordVMError(t *testing.T) {
	before := testutil.ToFloat64(vmErrorsTotal.WithLabelValues("revert"))
	RecordVMError("revert")
	require.Equal(t, before+1, testutil.ToFloat64(vmErrorsTotal.WithLabelValues("revert")))

	// Message-only diagnostics have no revert kind.
	before = testutil.ToFloat64(vmErrorsTotal.WithLabelValues("none"))
	RecordVMError("")
	require.Equal(t, before+1, testutil.ToFloat64(vmErrorsTotal.WithLabelValues("none")))
}

func TestRecordLaunchFailure(t *testing.T) {
	before := testutil.ToFloat64(launchFailuresTotal.WithLabelValues("connection_failure"))
	RecordLaunchFailure(diagnostic.KindConnectionFailure)
	require.Equal(t, before+1, testutil.ToFloat64(launchFailuresTotal.WithLabelValues("connection_failure")))
}
