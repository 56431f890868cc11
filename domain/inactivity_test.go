package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInactivityPolicy_Evaluate(t *testing.T) {
	policy := InactivityPolicy{WarnAfter: 49 * time.Minute, CloseAfter: 59 * time.Minute}
	now := t0.Add(3 * time.Hour)

	tests := []struct {
		name     string
		status   Status
		idle     time.Duration
		warned   bool
		wantKind EventKind
		wantOK   bool
	}{
		{"fresh open dialog", StatusOpen, 10 * time.Minute, false, "", false},
		{"idle past warn threshold", StatusOpen, 50 * time.Minute, false, InactivityWarn, true},
		{"already warned", StatusOpen, 50 * time.Minute, true, "", false},
		{"idle past close threshold", StatusOpen, 60 * time.Minute, false, InactivityClose, true},
		{"idle past close threshold after warning", StatusOpen, 60 * time.Minute, true, InactivityClose, true},
		{"pending dialogs are ignored", StatusPending, 3 * time.Hour, false, "", false},
		{"closed dialogs are ignored", StatusClosed, 3 * time.Hour, false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			d := dialogIn(tt.status)
			d.LastActivityAt = now.Add(-tt.idle)

			kind, ok := policy.Evaluate(d, now, tt.warned)

			req.Equal(tt.wantOK, ok)
			req.Equal(tt.wantKind, kind)
		})
	}
}

func TestInactivityPolicy_WarningText(t *testing.T) {
	policy := InactivityPolicy{WarnAfter: 49 * time.Minute, CloseAfter: 59 * time.Minute}
	require.Equal(t, "This dialog is inactive and will close in 10 minutes.", policy.WarningText())
}
