package domain

import (
	"fmt"
	"time"
)

// InactivityPolicy holds the reaper thresholds. Both are tunable independently.
type InactivityPolicy struct {
	WarnAfter  time.Duration
	CloseAfter time.Duration
}

// Evaluate tells which inactivity event, if any, applies to d at now.
// The close threshold wins over the warn threshold.
func (p InactivityPolicy) Evaluate(d Dialog, now time.Time, warned bool) (EventKind, bool) {
	if d.Status != StatusOpen {
		return "", false
	}
	idle := d.InactiveFor(now)
	switch {
	case idle > p.CloseAfter:
		return InactivityClose, true
	case idle > p.WarnAfter && !warned:
		return InactivityWarn, true
	default:
		return "", false
	}
}

func (p InactivityPolicy) WarningText() string {
	grace := p.CloseAfter - p.WarnAfter
	return fmt.Sprintf("This dialog is inactive and will close in %d minutes.", int(grace.Round(time.Minute).Minutes()))
}
