package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the tweet feed service
type Metrics struct {
	// Refresh cycle metrics
	RefreshTotal    prometheus.Counter
	RefreshErrors   prometheus.Counter
	RefreshDuration prometheus.Histogram
	TweetsRendered  prometheus.Gauge

	// Alert metrics
	AlertsSent        prometheus.Counter
	AlertErrors       *prometheus.CounterVec
	NewTweetsObserved prometheus.Counter

	// Kafka metrics
	KafkaMessagesProduced prometheus.Counter
	KafkaProduceErrors    prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics()
	})
	return DefaultMetrics
}

// NewMetrics registers all collectors on the default registry.
// Call it once per process; use GetDefaultMetrics everywhere else.
func NewMetrics() *Metrics {
	return &Metrics{
		RefreshTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_refreshes_total",
			Help: "Total number of completed refresh cycles",
		}),
		RefreshErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_refresh_errors_total",
			Help: "Total number of failed refresh cycles",
		}),
		RefreshDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tweetfeed_refresh_duration_seconds",
			Help:    "Duration of successful refresh cycles in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		TweetsRendered: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tweetfeed_tweets_rendered",
			Help: "Number of tweets rendered by the last successful refresh",
		}),

		AlertsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_alerts_sent_total",
			Help: "Total number of new tweet alerts sent to Telegram",
		}),
		AlertErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tweetfeed_alert_errors_total",
				Help: "Total number of alert pipeline errors",
			},
			[]string{"stage"},
		),
		NewTweetsObserved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_new_tweets_observed_total",
			Help: "Total number of tweets observed for the first time",
		}),

		KafkaMessagesProduced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_kafka_messages_produced_total",
			Help: "Total number of new tweet events produced to Kafka",
		}),
		KafkaProduceErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tweetfeed_kafka_produce_errors_total",
			Help: "Total number of Kafka produce errors",
		}),
	}
}

// RecordRefresh records a successful refresh cycle
func (m *Metrics) RecordRefresh(tweets int, duration float64) {
	m.RefreshTotal.Inc()
	m.TweetsRendered.Set(float64(tweets))
	m.RefreshDuration.Observe(duration)
}

// RecordRefreshError records a failed refresh cycle
func (m *Metrics) RecordRefreshError() {
	m.RefreshErrors.Inc()
}

// RecordNewTweets records tweets seen for the first time
func (m *Metrics) RecordNewTweets(count int) {
	// Only add positive values to prevent counter from going backwards
	if count > 0 {
		m.NewTweetsObserved.Add(float64(count))
	}
}

// RecordAlertSent records a delivered Telegram alert
func (m *Metrics) RecordAlertSent() {
	m.AlertsSent.Inc()
}

// RecordAlertError records an alert pipeline error for the given stage
func (m *Metrics) RecordAlertError(stage string) {
	if stage == "" {
		stage = "unknown"
	}
	m.AlertErrors.WithLabelValues(stage).Inc()
}

// RecordKafkaMessage records a produced Kafka message
func (m *Metrics) RecordKafkaMessage() {
	m.KafkaMessagesProduced.Inc()
}

// RecordKafkaError records a Kafka production error
func (m *Metrics) RecordKafkaError() {
	m.KafkaProduceErrors.Inc()
}
