package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	challengesStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "challenge_runs_started_total",
			Help: "Total number of started challenge runs",
		},
	)
	daysAdvanced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "challenge_days_advanced_total",
			Help: "Total number of day transitions of active runs",
		},
	)
	runsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_runs_failed_total",
			Help: "Total number of failed challenge runs",
		},
		[]string{"reason"},
	)
	completionsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenge_completions_recorded_total",
			Help: "Total number of problems counted towards a challenge day",
		},
		[]string{"difficulty"},
	)
	storeWriteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "progress_store_write_failures_total",
			Help: "Total number of progress writes that were lost",
		},
		[]string{"store"},
	)

	registerOnce sync.Once
)

// Failure kinds used as label values of challenge_runs_failed_total.
const (
	FailureMissedDays = "missed_days"
	FailureIncomplete = "incomplete_day"
)

// InitPrometheus registers the collectors in the default registry. Safe to call more than once.
func InitPrometheus() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequestsTotal,
			httpRequestDuration,
			challengesStarted,
			daysAdvanced,
			runsFailed,
			completionsRecorded,
			storeWriteFailures,
		)
	})
}

func ObserveRequest(path, method string, status int, took time.Duration) {
	httpRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(path, method).Observe(took.Seconds())
}

func ChallengeStarted() {
	challengesStarted.Inc()
}

func DayAdvanced() {
	daysAdvanced.Inc()
}

func RunFailed(reason string) {
	runsFailed.WithLabelValues(reason).Inc()
}

func CompletionRecorded(difficulty string) {
	completionsRecorded.WithLabelValues(difficulty).Inc()
}

func StoreWriteFailed(store string) {
	storeWriteFailures.WithLabelValues(store).Inc()
}
