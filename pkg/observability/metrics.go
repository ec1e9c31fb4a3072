package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Constants representing success or failure states as strings for the metrics labels.
const (
	Completed = "true"  // Represents successful operation
	Failed    = "false" // Represents failed operation
)

// Frozen space figures. They are set once per captured snapshot.
var (
	SnapshotTotalBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestore_snapshot_total_bytes",
			Help: "Total space of the root store at snapshot time",
		},
	)

	SnapshotUsableBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestore_snapshot_usable_bytes",
			Help: "Usable space of the root store at snapshot time",
		},
	)

	SnapshotUnallocatedBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "filestore_snapshot_unallocated_bytes",
			Help: "Unallocated space of the root store at snapshot time",
		},
	)
)

var (
	// SnapshotCaptureTotal counts snapshot captures.
	// It uses a label "functionStatus" to differentiate between successful and failed captures.
	SnapshotCaptureTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestore_snapshot_capture_total",
			Help: "Total number of snapshot captures",
		},
		[]string{"functionStatus"},
	)

	// SnapshotCaptureDuration tracks how long reading the root store took.
	SnapshotCaptureDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filestore_snapshot_capture_duration_seconds",
			Help:    "Duration of snapshot captures",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)

	// StoreLookupTotal counts Store calls on the snapshot provider.
	StoreLookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filestore_snapshot_store_lookups_total",
			Help: "Total number of store lookups through the snapshot provider",
		},
		[]string{"functionStatus"},
	)

	// StoreLookupDuration tracks the duration of Store calls.
	StoreLookupDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filestore_snapshot_store_lookup_duration_seconds",
			Help:    "Duration of store lookups through the snapshot provider",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"functionStatus"},
	)
)

// RegisterMetrics registers the snapshot collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		SnapshotTotalBytes,
		SnapshotUsableBytes,
		SnapshotUnallocatedBytes,
		SnapshotCaptureTotal,
		SnapshotCaptureDuration,
		StoreLookupTotal,
		StoreLookupDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func RecordMetrics(total *prometheus.CounterVec, duration *prometheus.HistogramVec, functionStatus string, start time.Time) {
	total.WithLabelValues(functionStatus).Inc()                                   // Increment the total metric for the operation
	duration.WithLabelValues(functionStatus).Observe(time.Since(start).Seconds()) // Record the duration of the operation
}

// RecordSnapshot publishes captured space figures.
func RecordSnapshot(total, usable, unallocated int64) {
	SnapshotTotalBytes.Set(float64(total))
	SnapshotUsableBytes.Set(float64(usable))
	SnapshotUnallocatedBytes.Set(float64(unallocated))
}

// StatusOf maps an operation error to the functionStatus label value.
func StatusOf(err error) string {
	if err != nil {
		return Failed
	}
	return Completed
}
