package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type DialogID string

func NewDialogID() DialogID {
	return DialogID(uuid.NewString())
}

func (id DialogID) String() string {
	return string(id)
}

type Status string

const (
	StatusPending Status = "PENDING"
	StatusOpen    Status = "OPEN"
	StatusClosed  Status = "CLOSED"
)

// Dialog is a support conversation. Participants is the durable membership:
// it only grows. Who is currently connected lives in the session registry.
type Dialog struct {
	ID             DialogID
	Topic          string
	Status         Status
	CreatedAt      time.Time
	ClosedAt       *time.Time
	LastActivityAt time.Time
	Participants   []string
}

func NewDialog(topic, ownerID string, now time.Time) Dialog {
	return Dialog{
		ID:             NewDialogID(),
		Topic:          topic,
		Status:         StatusPending,
		CreatedAt:      now,
		LastActivityAt: now,
		Participants:   []string{ownerID},
	}
}

func (d Dialog) HasParticipant(participantID string) bool {
	return slices.Contains(d.Participants, participantID)
}

// AddParticipant reports false when participantID was already a member.
func (d *Dialog) AddParticipant(participantID string) bool {
	if d.HasParticipant(participantID) {
		return false
	}
	d.Participants = append(d.Participants, participantID)
	return true
}

// Touch moves LastActivityAt forward, never backward.
func (d *Dialog) Touch(at time.Time) {
	if at.After(d.LastActivityAt) {
		d.LastActivityAt = at
	}
}

// InactiveFor returns how long the dialog has been idle at now.
func (d Dialog) InactiveFor(now time.Time) time.Duration {
	return now.Sub(d.LastActivityAt)
}
