package storage

import (
	"fmt"
	"support-desk/domain"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// encMode uses Core Deterministic Encoding: the same record always produces the same bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("storage: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("storage: CBOR decoder initialization failed: " + err.Error())
	}
}

// Records use integer keys to keep values small. Never renumber a field.

type diskDialog struct {
	ID             string   `cbor:"1,keyasint"`
	Topic          string   `cbor:"2,keyasint"`
	Status         string   `cbor:"3,keyasint"`
	CreatedAt      int64    `cbor:"4,keyasint"`
	ClosedAt       *int64   `cbor:"5,keyasint,omitempty"`
	LastActivityAt int64    `cbor:"6,keyasint"`
	Participants   []string `cbor:"7,keyasint"`
}

type diskMessage struct {
	ID       string `cbor:"1,keyasint"`
	DialogID string `cbor:"2,keyasint"`
	SenderID string `cbor:"3,keyasint"`
	Content  string `cbor:"4,keyasint"`
	Type     string `cbor:"5,keyasint"`
	At       int64  `cbor:"6,keyasint"`
	IsRead   bool   `cbor:"7,keyasint"`
}

type diskProfile struct {
	ID          string `cbor:"1,keyasint"`
	DisplayName string `cbor:"2,keyasint"`
	Role        string `cbor:"3,keyasint"`
}

func encode(v any) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	return data, nil
}

func decode(data []byte, v any) error {
	if err := decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal failed: %w", err)
	}
	return nil
}

func fromDialog(d domain.Dialog) diskDialog {
	record := diskDialog{
		ID:             d.ID.String(),
		Topic:          d.Topic,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt.UnixNano(),
		LastActivityAt: d.LastActivityAt.UnixNano(),
		Participants:   d.Participants,
	}
	if d.ClosedAt != nil {
		record.ClosedAt = lo.ToPtr(d.ClosedAt.UnixNano())
	}
	return record
}

func (d diskDialog) toDialog() domain.Dialog {
	dialog := domain.Dialog{
		ID:             domain.DialogID(d.ID),
		Topic:          d.Topic,
		Status:         domain.Status(d.Status),
		CreatedAt:      fromNano(d.CreatedAt),
		LastActivityAt: fromNano(d.LastActivityAt),
		Participants:   d.Participants,
	}
	if d.ClosedAt != nil {
		dialog.ClosedAt = lo.ToPtr(fromNano(*d.ClosedAt))
	}
	return dialog
}

func fromMessage(m domain.Message) diskMessage {
	return diskMessage{
		ID:       m.ID.String(),
		DialogID: m.DialogID.String(),
		SenderID: m.SenderID,
		Content:  m.Content,
		Type:     string(m.Type),
		At:       m.Timestamp.UnixNano(),
		IsRead:   m.IsRead,
	}
}

func (m diskMessage) toMessage() (domain.Message, error) {
	parsedID, err := uuid.Parse(m.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:        parsedID,
		DialogID:  domain.DialogID(m.DialogID),
		SenderID:  m.SenderID,
		Content:   m.Content,
		Type:      domain.MessageType(m.Type),
		Timestamp: fromNano(m.At),
		IsRead:    m.IsRead,
	}, nil
}

func fromProfile(p domain.Profile) diskProfile {
	return diskProfile{ID: p.ID, DisplayName: p.DisplayName, Role: string(p.Role)}
}

func (p diskProfile) toProfile() domain.Profile {
	return domain.Profile{ID: p.ID, DisplayName: p.DisplayName, Role: domain.Role(p.Role)}
}

func fromNano(n int64) time.Time {
	return time.Unix(0, n).UTC()
}
