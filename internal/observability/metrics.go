package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for GaugeLedger.
type Metrics struct {
	// --- Core Processing ---
	CoreCommandsApplied  *prometheus.CounterVec
	CoreCommandsRejected *prometheus.CounterVec
	CoreCommandDuration  *prometheus.HistogramVec
	CoreEventsEmitted    *prometheus.CounterVec
	CoreStateHashDur     prometheus.Histogram
	CoreSequence         prometheus.Gauge
	CoreClockRegressions prometheus.Counter

	// --- Gauge ---
	StakedPositions   prometheus.Gauge
	RewardsPaid       prometheus.Counter
	RewardRate        prometheus.Gauge
	RemainingEmission prometheus.Gauge
	FeesForwarded     *prometheus.CounterVec

	// --- Channel & Backpressure ---
	ChannelSize         *prometheus.GaugeVec
	ProjectionDrops     *prometheus.CounterVec
	PublishDrops        prometheus.Counter
	PublishErrors       *prometheus.CounterVec
	PersistBackpressure prometheus.Counter

	// --- Idempotency ---
	IdempotencyDuplicates *prometheus.CounterVec
	DedupLRUSize          prometheus.Gauge

	// --- Persistence ---
	PersistCommandsWritten prometheus.Counter
	PersistEventsWritten   prometheus.Counter
	PersistBatchSize       prometheus.Histogram
	PersistBatchDur        prometheus.Histogram
	PersistErrors          *prometheus.CounterVec
	PersistRetry           prometheus.Counter
	PersistLastSequence    prometheus.Gauge

	// --- Snapshot & Replay ---
	SnapshotTaken     prometheus.Counter
	SnapshotSizeBytes prometheus.Gauge
	SnapshotLastSeq   prometheus.Gauge
	ReplayCommands    prometheus.Counter
	ReplayDuration    prometheus.Gauge

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates all metrics and registers them with reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	latencyBuckets := []float64{
		0.000001, 0.000005, 0.00001, 0.000025, 0.00005,
		0.0001, 0.00025, 0.0005, 0.001, 0.002, 0.005, 0.01,
	}

	return &Metrics{
		// Core Processing
		CoreCommandsApplied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_core_commands_applied_total",
			Help: "Commands successfully applied by core",
		}, []string{"command_type"}),

		CoreCommandsRejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_core_commands_rejected_total",
			Help: "Commands rejected (dedup, clock, validation)",
		}, []string{"command_type", "reason"}),

		CoreCommandDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gauge_core_command_apply_duration_seconds",
			Help:    "Time to apply a single command in core",
			Buckets: latencyBuckets,
		}, []string{"command_type"}),

		CoreEventsEmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_core_events_emitted_total",
			Help: "Events emitted by committed commands",
		}, []string{"event_type"}),

		CoreStateHashDur: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gauge_core_state_hash_duration_seconds",
			Help:    "Time to compute state hash",
			Buckets: latencyBuckets,
		}),

		CoreSequence: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_core_sequence",
			Help: "Next command sequence to be assigned",
		}),

		CoreClockRegressions: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_core_clock_regressions_total",
			Help: "Commands rejected for a timestamp older than the last applied one",
		}),

		// Gauge
		StakedPositions: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_staked_positions",
			Help: "Positions currently in gauge custody",
		}),

		RewardsPaid: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_rewards_paid_total",
			Help: "Reward base units paid out (float approximation)",
		}),

		RewardRate: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_reward_rate_per_second",
			Help: "Active emission rate in base units per second",
		}),

		RemainingEmission: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_remaining_emission",
			Help: "Unemitted rewards left in the current period",
		}),

		FeesForwarded: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_fees_forwarded_total",
			Help: "Fee base units forwarded to the fee handler",
		}, []string{"asset"}),

		// Channel & Backpressure
		ChannelSize: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gauge_channel_size",
			Help: "Current items in channel",
		}, []string{"channel"}),

		ProjectionDrops: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_projection_drops_total",
			Help: "Outputs dropped by full projection channel",
		}, []string{"projection"}),

		PublishDrops: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_publish_drops_total",
			Help: "Events dropped by full publish channel",
		}),

		PublishErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_publish_errors_total",
			Help: "Event publish failures by sink",
		}, []string{"sink"}),

		PersistBackpressure: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_persist_backpressure_total",
			Help: "Times core blocked on persist channel",
		}),

		// Idempotency
		IdempotencyDuplicates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_idempotency_duplicates_total",
			Help: "Duplicate commands detected",
		}, []string{"command_type", "tier"}),

		DedupLRUSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_dedup_lru_size",
			Help: "Current entries in dedup LRU",
		}),

		// Persistence
		PersistCommandsWritten: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_persist_commands_written_total",
			Help: "Commands written to Postgres",
		}),

		PersistEventsWritten: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_persist_events_written_total",
			Help: "Events written to Postgres",
		}),

		PersistBatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gauge_persist_batch_size",
			Help:    "Commands per persistence batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		PersistBatchDur: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "gauge_persist_batch_duration_seconds",
			Help:    "Time to flush one persistence batch",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		PersistErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistRetry: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_persist_retry_total",
			Help: "Persistence retries",
		}),

		PersistLastSequence: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_persist_last_sequence",
			Help: "Last persisted command sequence",
		}),

		// Snapshot & Replay
		SnapshotTaken: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_snapshot_taken_total",
			Help: "State snapshots written",
		}),

		SnapshotSizeBytes: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_snapshot_size_bytes",
			Help: "Size of the last snapshot",
		}),

		SnapshotLastSeq: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_snapshot_last_sequence",
			Help: "Sequence of the last snapshot",
		}),

		ReplayCommands: f.NewCounter(prometheus.CounterOpts{
			Name: "gauge_replay_commands_total",
			Help: "Commands replayed during recovery",
		}),

		ReplayDuration: f.NewGauge(prometheus.GaugeOpts{
			Name: "gauge_replay_duration_seconds",
			Help: "Duration of the last recovery replay",
		}),

		// Query API
		QueryRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_query_requests_total",
			Help: "Query API requests",
		}, []string{"method", "status"}),

		QueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gauge_query_duration_seconds",
			Help:    "Query API latency",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"method"}),

		QueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gauge_query_errors_total",
			Help: "Query API errors",
		}, []string{"method", "error_type"}),
	}
}
