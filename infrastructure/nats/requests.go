package nats

import (
	"encoding/json"
	"fmt"
	"support-desk/domain"
	"support-desk/errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type CreateDialogRequest struct {
	Topic string `json:"topic" validate:"max=200"`
}

type SendMessageRequest struct {
	DialogID string  `json:"dialogId" validate:"required"`
	Content  *string `json:"content" validate:"required"`
}

type DialogRequest struct {
	DialogID string `json:"dialogId" validate:"required"`
}

type InviteRequest struct {
	DialogID string `json:"dialogId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
}

type HistoryRequest struct {
	DialogID string  `json:"dialogId" validate:"required"`
	Cursor   *string `json:"cursor,omitempty"`
}

// Reply is the request/reply envelope: either Data or Error and Code.
type Reply struct {
	Data  any         `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
	Code  errors.Code `json:"code,omitempty"`
}

func ok(data any) Reply {
	return Reply{Data: data}
}

func failure(err error) Reply {
	return Reply{Error: err.Error(), Code: errors.ToCode(err)}
}

// decodeRequest unmarshals and validates an inbound payload. An empty body decodes as "{}".
func decodeRequest[T any](data []byte) (T, error) {
	var req T
	if len(data) == 0 {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	if err := validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	return req, nil
}

type DialogView struct {
	ID             domain.DialogID `json:"id"`
	Topic          string          `json:"topic"`
	Status         domain.Status   `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	ClosedAt       *time.Time      `json:"closedAt,omitempty"`
	LastActivityAt time.Time       `json:"lastActivityAt"`
	Participants   []string        `json:"participants"`
}

func toDialogView(d domain.Dialog) DialogView {
	return DialogView{
		ID:             d.ID,
		Topic:          d.Topic,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		ClosedAt:       d.ClosedAt,
		LastActivityAt: d.LastActivityAt,
		Participants:   d.Participants,
	}
}

type MessageView struct {
	ID        string             `json:"id"`
	DialogID  domain.DialogID    `json:"dialogId"`
	SenderID  string             `json:"senderId"`
	Content   string             `json:"content"`
	Type      domain.MessageType `json:"type"`
	Timestamp time.Time          `json:"timestamp"`
	IsRead    bool               `json:"isRead"`
}

func toMessageView(m domain.Message) MessageView {
	return MessageView{
		ID:        m.ID.String(),
		DialogID:  m.DialogID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Type:      m.Type,
		Timestamp: m.Timestamp,
		IsRead:    m.IsRead,
	}
}

type HistoryView struct {
	Messages []MessageView `json:"messages"`
	Cursor   *string       `json:"cursor,omitempty"`
}

type ReadView struct {
	Count int `json:"count"`
}
