package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/malusev998/currency"
)

var badgerRatesKey = []byte("curr:rates")

// BadgerStorage keeps the encoded rate store under a single key.
type BadgerStorage struct {
	db *badger.DB
}

var _ currency.Storage = (*BadgerStorage)(nil)

func NewBadgerStorage(path string) (*BadgerStorage, error) {
	if path == "" {
		path = DefaultCachePath() + ".db"
	}

	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))

	if err != nil {
		return nil, fmt.Errorf("failed to open badger database %s: %w", path, err)
	}

	return &BadgerStorage{db: db}, nil
}

func (b *BadgerStorage) Load(_ context.Context) (*currency.RateStore, error) {
	var rates *currency.RateStore

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerRatesKey)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			rates, err = decodeSnapshot(val)
			return err
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return currency.NewRateStore(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load rates: %w", err)
	}

	return rates, nil
}

func (b *BadgerStorage) Save(_ context.Context, rates *currency.RateStore) error {
	data, err := encodeSnapshot(rates)

	if err != nil {
		return err
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerRatesKey, data)
	})

	if err != nil {
		return fmt.Errorf("failed to store rates: %w", err)
	}

	return nil
}

func (b *BadgerStorage) Name() string {
	return string(Badger)
}

func (b *BadgerStorage) Close() error {
	return b.db.Close()
}
