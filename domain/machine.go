package domain

import (
	"fmt"
	"time"

	"support-desk/errors"
)

type EventKind string

const (
	ParticipantJoined EventKind = "PARTICIPANT_JOINED"
	ParticipantLeft   EventKind = "PARTICIPANT_LEFT"
	MessageSent       EventKind = "MESSAGE_SENT"
	ExplicitClose     EventKind = "EXPLICIT_CLOSE"
	InactivityWarn    EventKind = "INACTIVITY_WARN"
	InactivityClose   EventKind = "INACTIVITY_CLOSE"
)

// Event is something that happened to a dialog.
// PresentCount is the registry size right after a join or leave.
// ClientSender tells whether a message came from the customer side.
// AlreadyWarned carries the warned marker for the current inactivity episode.
type Event struct {
	Kind          EventKind
	At            time.Time
	PresentCount  int
	ClientSender  bool
	AlreadyWarned bool
}

// Effect is a side effect the coordinator must carry out after persisting a transition.
type Effect uint8

const (
	EffectStatusUpdate Effect = 1 << iota
	EffectCloseNotice
	EffectWarnNotice
	EffectClearWarned
)

type Transition struct {
	Dialog  Dialog
	From    Status
	To      Status
	Effects Effect
}

func (t Transition) Changed() bool {
	return t.From != t.To
}

func (t Transition) Has(e Effect) bool {
	return t.Effects&e != 0
}

// Apply runs the dialog state machine. It never mutates d; the resulting
// dialog is returned inside the Transition.
//
//	PENDING --join (present > 1)--------> OPEN
//	PENDING --staff message-------------> OPEN
//	OPEN    --leave (present < 2)-------> CLOSED
//	*       --explicit/inactivity close-> CLOSED
//	CLOSED  --message-------------------> PENDING
func Apply(d Dialog, evt Event) (Transition, error) {
	next := d
	t := Transition{From: d.Status, To: d.Status}

	switch evt.Kind {
	case ParticipantJoined:
		next.Touch(evt.At)
		t.Effects |= EffectClearWarned
		if d.Status == StatusPending && evt.PresentCount > 1 {
			next.Status = StatusOpen
			t.Effects |= EffectStatusUpdate
		}

	case ParticipantLeft:
		next.Touch(evt.At)
		t.Effects |= EffectClearWarned
		if d.Status == StatusOpen && evt.PresentCount < 2 {
			t.Effects |= closeDialog(&next, evt.At)
		}

	case MessageSent:
		next.Touch(evt.At)
		t.Effects |= EffectClearWarned
		switch {
		case d.Status == StatusClosed:
			next.Status = StatusPending
			next.ClosedAt = nil
			t.Effects |= EffectStatusUpdate
		case d.Status == StatusPending && !evt.ClientSender:
			next.Status = StatusOpen
			t.Effects |= EffectStatusUpdate
		}

	case ExplicitClose:
		if d.Status == StatusClosed {
			return Transition{}, fmt.Errorf("dialog %s: %w", d.ID, errors.ErrAlreadyClosed)
		}
		t.Effects |= closeDialog(&next, evt.At)

	case InactivityWarn:
		if d.Status == StatusOpen && !evt.AlreadyWarned {
			t.Effects |= EffectWarnNotice
		}

	case InactivityClose:
		if d.Status == StatusClosed {
			return Transition{}, fmt.Errorf("dialog %s: %w", d.ID, errors.ErrAlreadyClosed)
		}
		if d.Status == StatusOpen {
			t.Effects |= closeDialog(&next, evt.At)
		}

	default:
		return Transition{}, fmt.Errorf("unknown event %q: %w", evt.Kind, errors.ErrInvalidPayload)
	}

	t.To = next.Status
	t.Dialog = next
	return t, nil
}

func closeDialog(d *Dialog, at time.Time) Effect {
	d.Touch(at)
	d.Status = StatusClosed
	closedAt := at
	d.ClosedAt = &closedAt
	return EffectCloseNotice | EffectStatusUpdate | EffectClearWarned
}
