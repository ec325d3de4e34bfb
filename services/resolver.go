package services

import (
	"context"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/malusev998/currency"
	"github.com/malusev998/currency/fetchers"
	"github.com/malusev998/currency/metrics"
)

// DefaultMaxAge is how long a cached rate is used before it is fetched again.
const DefaultMaxAge = 7 * 24 * time.Hour

// Resolver answers conversion requests from the rate store, fetching and
// recording rates that are missing or stale. It owns Rates for its lifetime
// and is not safe for concurrent use.
type Resolver struct {
	Rates   *currency.RateStore
	Fetcher currency.Fetcher
	Catalog currency.Catalog

	// CheckFreshness enables reuse of stored rates younger than MaxAge.
	// When disabled every request goes to the Fetcher.
	CheckFreshness bool
	MaxAge         time.Duration
	Now            func() time.Time

	Logger  *log.Logger
	Metrics *metrics.Metrics
}

func (r *Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now().UTC()
	}

	return r.Now().UTC()
}

func (r *Resolver) maxAge() time.Duration {
	if r.MaxAge <= 0 {
		return DefaultMaxAge
	}

	return r.MaxAge
}

func (r *Resolver) logger() *log.Logger {
	if r.Logger == nil {
		r.Logger = log.New(io.Discard)
	}

	return r.Logger
}

func (r *Resolver) validate(codes ...string) error {
	for _, code := range codes {
		if _, ok := r.Catalog.Lookup(code); !ok {
			return NewUnknownCurrencyError(r.Catalog, code)
		}
	}

	return nil
}

// GetRate returns the multiplier converting one unit of from into to.
func (r *Resolver) GetRate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if err := r.validate(from, to); err != nil {
		return 0, err
	}

	if r.Rates == nil {
		r.Rates = currency.NewRateStore()
	}

	if r.CheckFreshness {
		if cached, ok := r.Rates.Find(from, to); ok {
			age := cached.Age(r.now())

			if age < r.maxAge() {
				r.Metrics.Lookup(metrics.LookupHit)
				r.logger().Debug("using cached rate", "from", from, "to", to, "rate", cached.Rate, "age", age.Round(time.Second))

				return cached.Rate, nil
			}

			r.Metrics.Lookup(metrics.LookupStale)
			r.logger().Debug("evicting stale rate", "from", from, "to", to, "age", age.Round(time.Second))
			r.Rates.Remove(from, to)
		} else {
			r.Metrics.Lookup(metrics.LookupMiss)
		}
	}

	rate, err := fetchers.Recover(r.Fetcher).FetchRate(ctx, from, to)

	if err == nil && (!(rate > 0) || math.IsInf(rate, 1)) {
		err = fetchers.ErrRateNotFound
	}

	if err != nil {
		r.Metrics.Fetch(metrics.FetchError)
		r.logger().Debug("fetching rate failed", "from", from, "to", to, "error", err)

		return 0, &ServiceUnavailableError{From: from, To: to, Err: err}
	}

	r.Metrics.Fetch(metrics.FetchOK)
	r.logger().Debug("fetched rate", "from", from, "to", to, "rate", rate)
	r.Rates.Add(currency.NewExchangeRate(from, to, rate, r.now()))

	return rate, nil
}

// Convert returns amount of from expressed in to. Converting a currency into
// itself returns amount without touching the store or the fetcher.
func (r *Resolver) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	if strings.EqualFold(from, to) {
		return amount, nil
	}

	rate, err := r.GetRate(ctx, from, to)

	if err != nil {
		return 0, err
	}

	r.Metrics.Conversion()

	// The second result only reports whether the float is exact.
	value, _ := decimal.NewFromFloat(amount).Mul(decimal.NewFromFloat(rate)).Float64()

	return value, nil
}
