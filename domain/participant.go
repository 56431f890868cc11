// Package domain contains core concepts of the support chat.
// This file defines participants, their roles and the profiles they resolve to.
// No runtime, network, or UI logic should be added here.
package domain

import "slices"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// Principal is the authenticated identity attached to an inbound event.
type Principal struct {
	ParticipantID string
	Username      string
	Role          Role
}

// IsClient reports whether the principal speaks for the customer side of a dialog.
func (p Principal) IsClient() bool {
	return p.Role == RoleUser
}

// IsStaff reports whether the principal may use staff-only operations (invite, staff open).
func (p Principal) IsStaff() bool {
	return slices.Contains([]Role{RoleAgent, RoleAdmin}, p.Role)
}

// Profile is the displayable side of a user.
type Profile struct {
	ID          string
	DisplayName string
	Role        Role
}
