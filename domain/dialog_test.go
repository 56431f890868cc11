package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDialog_Starts_Pending_With_Owner(t *testing.T) {
	req := require.New(t)

	d := NewDialog("Billing", "client-1", t0)

	req.NotEmpty(d.ID)
	req.Equal(StatusPending, d.Status)
	req.Nil(d.ClosedAt)
	req.Equal(t0, d.CreatedAt)
	req.Equal(t0, d.LastActivityAt)
	req.Equal([]string{"client-1"}, d.Participants)
}

func TestDialog_AddParticipant_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	d := NewDialog("Billing", "client-1", t0)

	req.True(d.AddParticipant("agent-7"))
	req.False(d.AddParticipant("agent-7"))
	req.False(d.AddParticipant("client-1"))
	req.Equal([]string{"client-1", "agent-7"}, d.Participants)
}

func TestGenerateTopic(t *testing.T) {
	now := time.Date(2026, 5, 2, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name        string
		requested   string
		ownerTopics []string
		want        string
	}{
		{"blank topic", "", nil, "Chat_2026-05-02 14:30:05"},
		{"whitespace topic", "   ", nil, "Chat_2026-05-02 14:30:05"},
		{"fresh topic", "Refund", []string{"Delivery"}, "Refund"},
		{"topic used by the same owner", "Refund", []string{"Refund"}, "Refund.@2026-05-02 14:30:05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GenerateTopic(tt.requested, tt.ownerTopics, now))
		})
	}
}

func TestPrincipal_Roles(t *testing.T) {
	req := require.New(t)
	client := Principal{ParticipantID: "1", Username: "alice", Role: RoleUser}
	agent := Principal{ParticipantID: "2", Username: "bob", Role: RoleAgent}
	admin := Principal{ParticipantID: "3", Username: "carol", Role: RoleAdmin}

	req.True(client.IsClient())
	req.False(client.IsStaff())
	req.False(agent.IsClient())
	req.True(agent.IsStaff())
	req.True(admin.IsStaff())
}
