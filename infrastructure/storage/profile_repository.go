package storage

import (
	"context"
	stdErrors "errors"
	"fmt"
	"support-desk/contract"
	"support-desk/domain"
	"support-desk/errors"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.IProfileRepository = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *badger.DB
}

func NewProfileRepository(db *badger.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profilePrefix = "profile:"

func profileKey(userID string) []byte {
	return []byte(profilePrefix + userID)
}

func (p *ProfileRepository) ProfileForUser(_ context.Context, userID string) (domain.Profile, error) {
	var record diskProfile
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(userID))
		if stdErrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("profile %s: %w", userID, errors.ErrProfileNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return decode(value, &record)
		})
	})
	if err != nil {
		return domain.Profile{}, storeError(err)
	}
	return record.toProfile(), nil
}

func (p *ProfileRepository) SaveProfile(_ context.Context, profile domain.Profile) error {
	data, err := encode(fromProfile(profile))
	if err != nil {
		return err
	}
	return storeError(p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(profileKey(profile.ID), data)
	}))
}
