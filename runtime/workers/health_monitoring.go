package workers

import (
	"context"
	"log/slog"
	"os"
	"support-desk/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

// PresenceSource exposes the live counters sampled by HealthMonitoringWorker.
type PresenceSource interface {
	TotalPresent() int
}

type LockSource interface {
	Len() int
}

// HealthMonitoringWorker samples the session registry, the dialog locks and
// the service process on a ticker and publishes them as gauges.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	presence       PresenceSource
	locks          LockSource
	metricInterval time.Duration
	pid            int32
}

func NewHealthMonitoringWorker(log *slog.Logger, presence PresenceSource, locks LockSource, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		presence:       presence,
		locks:          locks,
		metricInterval: metricInterval,
		pid:            int32(os.Getpid()),
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.Sample(p).Publish(w.log)
		}
	}
}

// Sample reads one snapshot. Process figures that can't be read are left at zero.
func (w *HealthMonitoringWorker) Sample(p *process.Process) observability.MonitoringStats {
	stats := observability.MonitoringStats{
		PresentSessions: w.presence.TotalPresent(),
		LockedDialogs:   w.locks.Len(),
	}.WithMemStats()

	if p == nil {
		return stats
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	} else {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		stats.RSSBytes = mem.RSS
	} else {
		w.log.Debug("Error while finding process ram usage", "err", err)
	}
	return stats
}
