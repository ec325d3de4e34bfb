package storage

import (
	"context"

	"github.com/malusev998/currency"
)

// NoopStorage disables persistence: every run starts with an empty store.
type NoopStorage struct{}

var _ currency.Storage = NoopStorage{}

func (NoopStorage) Load(context.Context) (*currency.RateStore, error) {
	return currency.NewRateStore(), nil
}

func (NoopStorage) Save(context.Context, *currency.RateStore) error {
	return nil
}

func (NoopStorage) Name() string {
	return string(None)
}

func (NoopStorage) Close() error {
	return nil
}
