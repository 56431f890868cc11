package workers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/require"
)

type fixedPresence int

func (f fixedPresence) TotalPresent() int { return int(f) }

type fixedLocks int

func (f fixedLocks) Len() int { return int(f) }

func TestHealthMonitoringWorker_Sample(t *testing.T) {
	req := require.New(t)
	worker := NewHealthMonitoringWorker(slog.Default(), fixedPresence(7), fixedLocks(2), time.Second)

	p, err := process.NewProcess(int32(os.Getpid()))
	req.NoError(err)

	stats := worker.Sample(p)

	req.Equal(7, stats.PresentSessions)
	req.Equal(2, stats.LockedDialogs)
	req.NotZero(stats.RSSBytes)
}

func TestHealthMonitoringWorker_Sample_Without_Process(t *testing.T) {
	req := require.New(t)
	worker := NewHealthMonitoringWorker(slog.Default(), fixedPresence(1), fixedLocks(0), time.Second)

	stats := worker.Sample(nil)

	req.Equal(1, stats.PresentSessions)
	req.Zero(stats.CPUPercent)
}
