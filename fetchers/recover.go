package fetchers

import (
	"context"
	"errors"
	"fmt"

	"github.com/malusev998/currency"
)

var ErrFetcherPanicked = errors.New("fetcher panicked")

type recovering struct {
	fetcher currency.Fetcher
}

// Recover wraps f so that a panic during FetchRate is returned as an error
// wrapping ErrFetcherPanicked.
func Recover(f currency.Fetcher) currency.Fetcher {
	if _, ok := f.(recovering); ok {
		return f
	}

	return recovering{fetcher: f}
}

func (r recovering) FetchRate(ctx context.Context, from, to string) (rate float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			rate = 0
			err = fmt.Errorf("%w: %v", ErrFetcherPanicked, p)
		}
	}()

	return r.fetcher.FetchRate(ctx, from, to)
}
