package currency

import "context"

// Storage persists the rate store between invocations.
type Storage interface {
	Load(ctx context.Context) (*RateStore, error)
	Save(ctx context.Context, rates *RateStore) error
	Name() string
	Close() error
}
