package metrics

import (
	"testing"
	"time"

	"github.com/blaisecz/mood-tracker/internal/analysis"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsSingleton(t *testing.T) {
	a := New()
	b := New()
	require.NotNil(t, a)
	assert.Same(t, a, b)
}

func TestObserveResult(t *testing.T) {
	m := New()

	runsBefore := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultOK))
	sleepBefore := testutil.ToFloat64(m.InsightsTotal.WithLabelValues("sleep", "positive"))
	stressBefore := testutil.ToFloat64(m.RecommendationsTotal.WithLabelValues("stress", "high"))

	m.ObserveResult(&analysis.Result{
		Patterns: []analysis.Pattern{},
		Insights: []analysis.Insight{
			{Category: analysis.InsightSleep, Polarity: analysis.PolarityPositive},
		},
		Recommendations: []analysis.Recommendation{
			{Category: analysis.RecommendStress, Priority: analysis.PriorityHigh},
			{Category: analysis.RecommendStress, Priority: analysis.PriorityHigh},
		},
	})

	assert.Equal(t, runsBefore+1, testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultOK)))
	assert.Equal(t, sleepBefore+1, testutil.ToFloat64(m.InsightsTotal.WithLabelValues("sleep", "positive")))
	assert.Equal(t, stressBefore+2, testutil.ToFloat64(m.RecommendationsTotal.WithLabelValues("stress", "high")))
}

func TestObserveResult_NilResult(t *testing.T) {
	m := New()
	before := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultOK))

	m.ObserveResult(nil)

	assert.Equal(t, before+1, testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultOK)))
}

func TestObserveFailure(t *testing.T) {
	m := New()
	before := testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultInvalid))

	m.ObserveFailure(ResultInvalid)

	assert.Equal(t, before+1, testutil.ToFloat64(m.AnalysisRunsTotal.WithLabelValues(ResultInvalid)))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	route := "/v1/users/{userId}/mood/insights"
	before := testutil.CollectAndCount(m.HTTPRequestDuration)

	m.ObserveRequest("GET", route, 200, 15*time.Millisecond)
	m.ObserveRequest("GET", route, 200, 25*time.Millisecond)

	// Both observations land in the same series.
	after := testutil.CollectAndCount(m.HTTPRequestDuration)
	assert.LessOrEqual(t, after-before, 1)
	assert.GreaterOrEqual(t, after, 1)
}
