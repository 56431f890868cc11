// Package event defines the notices published to dialog subscribers.
// Field names and topic keys are part of the client contract.
package event

import (
	"support-desk/domain"
	"time"

	"github.com/google/uuid"
)

const (
	StatusUpdateTopic  = "/topic/dialogs/update"
	DialogCreatedQueue = "/queue/dialog-created"
)

func DialogTopic(id domain.DialogID) string {
	return "/topic/dialog/" + id.String()
}

func InvitesTopic(id domain.DialogID) string {
	return DialogTopic(id) + "/invites"
}

func ReadTopic(id domain.DialogID) string {
	return DialogTopic(id) + "/read"
}

type DomainEvent interface {
	DialogID() domain.DialogID
}

// ChatMessage carries CHAT, JOIN and LEAVE messages on the dialog topic.
type ChatMessage struct {
	ID        uuid.UUID          `json:"id"`
	Dialog    domain.DialogID    `json:"dialogId"`
	Content   string             `json:"content"`
	Sender    string             `json:"sender"`
	SenderID  string             `json:"senderId"`
	Timestamp time.Time          `json:"timestamp"`
	IsRead    bool               `json:"isRead"`
	Type      domain.MessageType `json:"type"`
}

func (m ChatMessage) DialogID() domain.DialogID { return m.Dialog }

func NewChatMessage(m domain.Message, senderName string) ChatMessage {
	return ChatMessage{
		ID:        m.ID,
		Dialog:    m.DialogID,
		Content:   m.Content,
		Sender:    senderName,
		SenderID:  m.SenderID,
		Timestamp: m.Timestamp,
		IsRead:    m.IsRead,
		Type:      m.Type,
	}
}

// NewPresenceMessage builds the JOIN/LEAVE notice. It is not persisted, so it has no ID.
func NewPresenceMessage(dialogID domain.DialogID, profile domain.Profile, kind domain.MessageType, at time.Time) ChatMessage {
	return ChatMessage{
		Dialog:    dialogID,
		Sender:    profile.DisplayName,
		SenderID:  profile.ID,
		Timestamp: at,
		Type:      kind,
	}
}

type DialogClosed struct {
	Type   string          `json:"type"`
	Dialog domain.DialogID `json:"dialogId"`
}

func (c DialogClosed) DialogID() domain.DialogID { return c.Dialog }

func NewDialogClosed(id domain.DialogID) DialogClosed {
	return DialogClosed{Type: "CLOSE", Dialog: id}
}

type InactivityWarning struct {
	Type    string          `json:"type"`
	Dialog  domain.DialogID `json:"dialogId"`
	Message string          `json:"message"`
}

func (w InactivityWarning) DialogID() domain.DialogID { return w.Dialog }

func NewInactivityWarning(id domain.DialogID, text string) InactivityWarning {
	return InactivityWarning{Type: "INFO", Dialog: id, Message: text}
}

type StatusChanged struct {
	Dialog domain.DialogID `json:"dialogId"`
	Status domain.Status   `json:"status"`
}

func (s StatusChanged) DialogID() domain.DialogID { return s.Dialog }

type ParticipantInvited struct {
	Type        string          `json:"type"`
	Dialog      domain.DialogID `json:"dialogId"`
	UserID      string          `json:"userId"`
	DisplayName string          `json:"displayName"`
}

func (i ParticipantInvited) DialogID() domain.DialogID { return i.Dialog }

func NewParticipantInvited(id domain.DialogID, profile domain.Profile) ParticipantInvited {
	return ParticipantInvited{Type: "INVITE", Dialog: id, UserID: profile.ID, DisplayName: profile.DisplayName}
}

type MessagesRead struct {
	Type     string          `json:"type"`
	Dialog   domain.DialogID `json:"dialogId"`
	ReaderID string          `json:"readerId"`
	Count    int             `json:"count"`
}

func (r MessagesRead) DialogID() domain.DialogID { return r.Dialog }

func NewMessagesRead(id domain.DialogID, readerID string, count int) MessagesRead {
	return MessagesRead{Type: "READ", Dialog: id, ReaderID: readerID, Count: count}
}

// DialogCreated is acknowledged on the creator's private queue only.
type DialogCreated struct {
	Dialog   domain.DialogID `json:"id"`
	Topic    string          `json:"topic"`
	Username string          `json:"-"`
}

func (c DialogCreated) DialogID() domain.DialogID { return c.Dialog }
