package currency

import "time"

type (
	// ExchangeRate converts an amount of From into To: amountTo = amountFrom * Rate.
	ExchangeRate struct {
		From       string    `bson:"from"`
		To         string    `bson:"to"`
		Rate       float64   `bson:"rate"`
		ObtainedAt time.Time `bson:"obtainedAt"`
	}

	// RateStore is an insertion-ordered list of exchange rates.
	// Lookups return the first matching record.
	RateStore struct {
		Rates []ExchangeRate `bson:"rates"`
	}
)

func NewExchangeRate(from, to string, rate float64, obtainedAt time.Time) ExchangeRate {
	return ExchangeRate{
		From:       from,
		To:         to,
		Rate:       rate,
		ObtainedAt: obtainedAt.UTC(),
	}
}

// Flip returns the reverse-direction record.
func (e ExchangeRate) Flip() ExchangeRate {
	return ExchangeRate{
		From:       e.To,
		To:         e.From,
		Rate:       1 / e.Rate,
		ObtainedAt: e.ObtainedAt,
	}
}

func (e ExchangeRate) Age(now time.Time) time.Duration {
	return now.Sub(e.ObtainedAt)
}

func NewRateStore() *RateStore {
	return &RateStore{Rates: make([]ExchangeRate, 0)}
}

func (s *RateStore) Len() int {
	return len(s.Rates)
}

// Find returns the first record for the pair. Codes are compared as is,
// callers normalize them first.
func (s *RateStore) Find(from, to string) (ExchangeRate, bool) {
	for _, rate := range s.Rates {
		if rate.From == from && rate.To == to {
			return rate, true
		}
	}

	return ExchangeRate{}, false
}

// Add appends the flipped record followed by rate itself.
func (s *RateStore) Add(rate ExchangeRate) {
	s.Rates = append(s.Rates, rate.Flip(), rate)
}

// Remove drops the first record for the pair by swapping the last record
// into its place. Order of the remaining records is not preserved.
func (s *RateStore) Remove(from, to string) bool {
	for i := range s.Rates {
		if s.Rates[i].From == from && s.Rates[i].To == to {
			last := len(s.Rates) - 1
			s.Rates[i] = s.Rates[last]
			s.Rates = s.Rates[:last]

			return true
		}
	}

	return false
}

// Prune removes every record older than maxAge and returns how many were dropped.
func (s *RateStore) Prune(maxAge time.Duration, now time.Time) int {
	kept := s.Rates[:0]

	for _, rate := range s.Rates {
		if rate.Age(now) < maxAge {
			kept = append(kept, rate)
		}
	}

	removed := len(s.Rates) - len(kept)
	s.Rates = kept

	return removed
}

func (s *RateStore) Clear() {
	s.Rates = s.Rates[:0]
}
