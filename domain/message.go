// Package domain contains core concepts of the support chat.
// This file defines Message records.
// A message belongs to exactly one dialog and never moves.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageChat  MessageType = "CHAT"
	MessageJoin  MessageType = "JOIN"
	MessageLeave MessageType = "LEAVE"
)

type Message struct {
	ID        uuid.UUID
	DialogID  DialogID
	SenderID  string
	Content   string
	Type      MessageType
	Timestamp time.Time
	IsRead    bool
}

func NewChatMessage(dialogID DialogID, senderID, content string, at time.Time) Message {
	return Message{
		ID:        uuid.New(),
		DialogID:  dialogID,
		SenderID:  senderID,
		Content:   content,
		Type:      MessageChat,
		Timestamp: at,
	}
}
