package observability

import (
	"support-desk/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "support_desk"
	subsystem = "dialogs"
)

var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transitions_total",
			Help:      "Dialog status changes by source and target status",
		},
		[]string{"from", "to"},
	)

	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Coordinator operations by name and outcome code",
		},
		[]string{"operation", "code"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Coordinator operation duration, lock wait included",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"},
	)

	NoticesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "notices_total",
			Help:      "Inactivity notices issued by the reaper",
		},
		[]string{"kind"},
	)

	ReaperSweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of one inactivity sweep",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 5, 30},
		},
	)

	ReaperFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reaper",
			Name:      "failures_total",
			Help:      "Dialogs skipped by a sweep because of an error",
		},
	)

	WorkerRestartsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "workers",
			Name:      "restarts_total",
			Help:      "Supervised worker restarts after a crash",
		},
		[]string{"worker"},
	)

	PresentSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "present",
			Help:      "Participants currently connected across all dialogs",
		},
	)

	LockedDialogs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "locked_dialogs",
			Help:      "Dialogs currently held or awaited by a coordinator operation",
		},
	)

	ProcessCPUPercent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "cpu_percent",
			Help:      "CPU usage of the service process",
		},
	)

	ProcessRSSBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "process",
			Name:      "rss_bytes",
			Help:      "Resident memory of the service process",
		},
	)
)

// RecordTransition counts a status change. Self transitions are ignored.
func RecordTransition(from, to domain.Status) {
	if from == to {
		return
	}
	TransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
}

// RecordOperation counts a coordinator call and observes its duration.
func RecordOperation(operation, code string, started time.Time) {
	OperationsTotal.WithLabelValues(operation, code).Inc()
	OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func RecordNotice(kind domain.EventKind) {
	NoticesTotal.WithLabelValues(string(kind)).Inc()
}

func RecordWorkerRestart(worker string) {
	WorkerRestartsTotal.WithLabelValues(worker).Inc()
}
