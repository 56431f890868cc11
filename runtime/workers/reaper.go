package workers

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/contract"
	"support-desk/domain"
	"support-desk/observability"
	"time"
)

// SweepReport sums up one pass of the reaper.
type SweepReport struct {
	Scanned int
	Warned  int
	Closed  int
	Failed  int
}

// InactivityReaper periodically warns and closes idle open dialogs.
// Dialogs are handled one by one, each within its own timeout: a failing or slow
// dialog is logged and skipped, the rest of the sweep goes on.
type InactivityReaper struct {
	log           *slog.Logger
	target        contract.IInactivityTarget
	interval      time.Duration
	dialogTimeout time.Duration
}

func NewInactivityReaper(log *slog.Logger, target contract.IInactivityTarget, interval, dialogTimeout time.Duration) *InactivityReaper {
	return &InactivityReaper{log: log, target: target, interval: interval, dialogTimeout: dialogTimeout}
}

func (w *InactivityReaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping inactivity reaper")
			return nil
		case <-ticker.C:
			report := w.Sweep(ctx)
			w.log.Debug("Inactivity sweep done",
				"scanned", report.Scanned, "warned", report.Warned,
				"closed", report.Closed, "failed", report.Failed)
		}
	}
}

// Sweep runs a single pass over every open dialog.
func (w *InactivityReaper) Sweep(ctx context.Context) SweepReport {
	started := time.Now()
	defer func() { observability.ReaperSweepDuration.Observe(time.Since(started).Seconds()) }()

	var report SweepReport
	ids, err := w.target.OpenDialogs(ctx)
	if err != nil {
		w.log.Error("Unable to list open dialogs", "error", err)
		return report
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return report
		}
		report.Scanned++
		kind, err := w.check(ctx, id)
		if err != nil {
			report.Failed++
			observability.ReaperFailuresTotal.Inc()
			w.log.Error("Inactivity check failed, skipping dialog", "dialog_id", id, "error", err)
			continue
		}
		switch kind {
		case domain.InactivityWarn:
			report.Warned++
		case domain.InactivityClose:
			report.Closed++
		}
	}
	return report
}

type checkResult struct {
	kind domain.EventKind
	err  error
}

// check gives up waiting after dialogTimeout. The call itself keeps running
// in the background and releases the dialog when it is done.
func (w *InactivityReaper) check(ctx context.Context, id domain.DialogID) (domain.EventKind, error) {
	dialogCtx, cancel := context.WithTimeout(ctx, w.dialogTimeout)
	defer cancel()

	done := make(chan checkResult, 1)
	go func() {
		kind, err := w.target.CheckInactivity(dialogCtx, id)
		done <- checkResult{kind: kind, err: err}
	}()

	select {
	case res := <-done:
		return res.kind, res.err
	case <-dialogCtx.Done():
		return "", fmt.Errorf("dialog %s: %w", id, dialogCtx.Err())
	}
}
