package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	InitPrometheus()
	InitPrometheus()

	before := testutil.ToFloat64(challengesStarted)
	ChallengeStarted()
	assert.Equal(t, before+1, testutil.ToFloat64(challengesStarted))

	DayAdvanced()
	DayAdvanced()
	assert.GreaterOrEqual(t, testutil.ToFloat64(daysAdvanced), 2.0)

	RunFailed(FailureMissedDays)
	assert.Equal(t, 1.0, testutil.ToFloat64(runsFailed.WithLabelValues(FailureMissedDays)))
	assert.Equal(t, 0.0, testutil.ToFloat64(runsFailed.WithLabelValues(FailureIncomplete)))

	CompletionRecorded("hard")
	assert.Equal(t, 1.0, testutil.ToFloat64(completionsRecorded.WithLabelValues("hard")))

	StoreWriteFailed("postgres")
	assert.Equal(t, 1.0, testutil.ToFloat64(storeWriteFailures.WithLabelValues("postgres")))
}

func TestObserveRequest(t *testing.T) {
	ObserveRequest("/api/v1/challenge", http.MethodGet, http.StatusOK, 30*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("/api/v1/challenge", http.MethodGet, "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(httpRequestDuration))
}
