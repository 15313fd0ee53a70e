package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAnalysis_FoldsUnknownRoles(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("unknown", "invalid_role"))

	ObserveAnalysis("xyz", "invalid_role")
	ObserveAnalysis("", "invalid_role")

	after := testutil.ToFloat64(AnalysesTotal.WithLabelValues("unknown", "invalid_role"))
	assert.Equal(t, before+2, after)
}

func TestObserveAnalysis_KnownRole(t *testing.T) {
	before := testutil.ToFloat64(AnalysesTotal.WithLabelValues("hr", "success"))

	ObserveAnalysis("hr", "success")

	assert.Equal(t, before+1, testutil.ToFloat64(AnalysesTotal.WithLabelValues("hr", "success")))
}
