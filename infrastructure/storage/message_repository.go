package storage

import (
	"context"
	"fmt"
	"log/slog"
	"support-desk/contract"
	"support-desk/domain"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IMessageRepository = (*MessageRepository)(nil)

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

const messageKeyPrefix = "msg:"

func messagePrefix(dialogID domain.DialogID) string {
	return fmt.Sprintf("%s%s:", messageKeyPrefix, dialogID)
}

// messageKey is formatted as "msg:{dialog_id}:{timestamp_padded}:{uuid}":
//  1. 19-digit zero padding keeps the lexicographical order chronological.
//  2. The UUID separates two messages written at the same nanosecond.
func messageKey(m domain.Message) []byte {
	return []byte(fmt.Sprintf("%s%019d:%s", messagePrefix(m.DialogID), m.Timestamp.UnixNano(), m.ID))
}

// SaveMessage writes the message and its dialog in one transaction:
// a message is never visible without the dialog state it produced.
func (m *MessageRepository) SaveMessage(_ context.Context, dialog domain.Dialog, message domain.Message) error {
	data, err := encode(fromMessage(message))
	if err != nil {
		return err
	}
	return storeError(m.db.Update(func(txn *badger.Txn) error {
		if err := writeDialog(txn, dialog); err != nil {
			return err
		}
		return txn.Set(messageKey(message), data)
	}))
}

// GetMessages pages through a dialog, newest first, with a reverse prefix scan.
// The returned cursor is nil once the last page has been read.
func (m *MessageRepository) GetMessages(_ context.Context, dialogID domain.DialogID, cursor *string) ([]domain.Message, *string, error) {
	var records []diskMessage
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messagePrefix(dialogID)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Past the newest possible key, then walk backward
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages > 0 && len(records) == m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d messages reached", m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefixStr):])
			err := item.Value(func(value []byte) error {
				var record diskMessage
				if err := decode(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, storeError(err)
	}

	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		message, err := record.toMessage()
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	if m.limitMessages <= 0 || len(messages) < m.limitMessages {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

// MarkRead flips isRead on every unread message of the dialog not written by readerID.
// Running it again changes nothing and returns 0.
func (m *MessageRepository) MarkRead(_ context.Context, dialogID domain.DialogID, readerID string) (int, error) {
	count := 0
	err := m.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix(dialogID))
		updates := map[string]diskMessage{}

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			err := item.Value(func(value []byte) error {
				var record diskMessage
				if err := decode(value, &record); err != nil {
					return err
				}
				if !record.IsRead && record.SenderID != readerID {
					record.IsRead = true
					updates[string(key)] = record
				}
				return nil
			})
			if err != nil {
				it.Close()
				return err
			}
		}
		it.Close()

		for key, record := range updates {
			data, err := encode(record)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(key), data); err != nil {
				return err
			}
		}
		count = len(updates)
		return nil
	})
	if err != nil {
		return 0, storeError(err)
	}
	return count, nil
}
