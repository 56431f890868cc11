package observability

import (
	"log/slog"
	"runtime"
)

// MonitoringStats is one sample of the service health.
type MonitoringStats struct {
	PresentSessions int
	LockedDialogs   int
	CPUPercent      float64
	RSSBytes        uint64
	AllocMemMb      uint64
	NumGC           uint32
}

// WithMemStats fills the Go runtime part of the sample.
func (s MonitoringStats) WithMemStats() MonitoringStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.AllocMemMb = m.Alloc / 1024 / 1024
	s.NumGC = m.NumGC
	return s
}

// Publish exposes the sample through the prometheus gauges.
func (s MonitoringStats) Publish(log *slog.Logger) {
	PresentSessions.Set(float64(s.PresentSessions))
	LockedDialogs.Set(float64(s.LockedDialogs))
	ProcessCPUPercent.Set(s.CPUPercent)
	ProcessRSSBytes.Set(float64(s.RSSBytes))

	log.Debug("Stats updated",
		"present_sessions", s.PresentSessions,
		"locked_dialogs", s.LockedDialogs,
		"cpu_percent", s.CPUPercent,
		"mem_mb", s.AllocMemMb,
		"num_gc", s.NumGC,
	)
}
