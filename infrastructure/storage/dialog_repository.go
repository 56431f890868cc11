package storage

import (
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"support-desk/contract"
	"support-desk/domain"
	"support-desk/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

const (
	dialogPrefix = "dialog:"
	statusPrefix = "status:"
)

var _ contract.IDialogRepository = (*DialogRepository)(nil)

type DialogRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDialogRepository(db *badger.DB, log *slog.Logger) *DialogRepository {
	return &DialogRepository{db: db, log: log}
}

func dialogKey(id domain.DialogID) []byte {
	return []byte(dialogPrefix + id.String())
}

// statusKey is a secondary index "status:{STATUS}:{id}" with an empty value,
// so open dialogs can be listed without scanning closed ones.
func statusKey(status domain.Status, id domain.DialogID) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", statusPrefix, status, id))
}

func (r *DialogRepository) Find(_ context.Context, id domain.DialogID) (domain.Dialog, error) {
	var dialog domain.Dialog
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		dialog, err = readDialog(txn, id)
		return err
	})
	if err != nil {
		return domain.Dialog{}, storeError(err)
	}
	return dialog, nil
}

func (r *DialogRepository) Save(_ context.Context, dialog domain.Dialog) error {
	return storeError(r.db.Update(func(txn *badger.Txn) error {
		return writeDialog(txn, dialog)
	}))
}

// FindByStatus walks the status index, keys only, then loads each dialog.
func (r *DialogRepository) FindByStatus(_ context.Context, status domain.Status) ([]domain.Dialog, error) {
	var dialogs []domain.Dialog
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s%s:", statusPrefix, status))
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var ids []domain.DialogID
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, domain.DialogID(it.Item().Key()[len(prefix):]))
		}
		for _, id := range ids {
			dialog, err := readDialog(txn, id)
			if err != nil {
				return err
			}
			dialogs = append(dialogs, dialog)
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}
	return dialogs, nil
}

func (r *DialogRepository) FindByParticipant(_ context.Context, participantID string) ([]domain.Dialog, error) {
	return r.scan(func(d domain.Dialog) bool { return d.HasParticipant(participantID) })
}

func (r *DialogRepository) FindOpenWithParticipant(_ context.Context, participantID string) ([]domain.Dialog, error) {
	return r.scan(func(d domain.Dialog) bool {
		return d.Status == domain.StatusOpen && d.HasParticipant(participantID)
	})
}

// All returns every dialog, it backs the inspection tool.
func (r *DialogRepository) All() ([]domain.Dialog, error) {
	return r.scan(func(domain.Dialog) bool { return true })
}

func (r *DialogRepository) scan(keep func(domain.Dialog) bool) ([]domain.Dialog, error) {
	var records []diskDialog
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(dialogPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record diskDialog
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
		return nil, storeError(err)
	}
	dialogs := lo.Map(records, func(record diskDialog, _ int) domain.Dialog { return record.toDialog() })
	return lo.Filter(dialogs, func(d domain.Dialog, _ int) bool { return keep(d) }), nil
}

func readDialog(txn *badger.Txn, id domain.DialogID) (domain.Dialog, error) {
	item, err := txn.Get(dialogKey(id))
	if stdErrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Dialog{}, fmt.Errorf("dialog %s: %w", id, errors.ErrDialogNotFound)
	}
	if err != nil {
		return domain.Dialog{}, err
	}
	var record diskDialog
	err = item.Value(func(value []byte) error {
		return decode(value, &record)
	})
	if err != nil {
		return domain.Dialog{}, err
	}
	return record.toDialog(), nil
}

// writeDialog stores the dialog and moves its status index entry when the status changed.
func writeDialog(txn *badger.Txn, dialog domain.Dialog) error {
	previous, err := readDialog(txn, dialog.ID)
	switch {
	case err == nil && previous.Status != dialog.Status:
		if err := txn.Delete(statusKey(previous.Status, dialog.ID)); err != nil {
			return err
		}
	case err != nil && !errors.IsNotFound(err):
		return err
	}

	data, err := encode(fromDialog(dialog))
	if err != nil {
		return err
	}
	if err := txn.Set(dialogKey(dialog.ID), data); err != nil {
		return err
	}
	return txn.Set(statusKey(dialog.Status, dialog.ID), nil)
}

// storeError keeps domain sentinels as they are and flags everything else as a store failure.
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.ToCode(err) != errors.CodeInternal:
		return err
	default:
		return fmt.Errorf("%w: %w", errors.ErrStoreUnavailable, err)
	}
}
