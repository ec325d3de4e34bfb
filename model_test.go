package currency_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency"
)

func TestExchangeRate_Flip(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	now := time.Now()

	rate := currency.NewExchangeRate("USD", "EUR", 0.8, now)
	flipped := rate.Flip()

	asserts.Equal("EUR", flipped.From)
	asserts.Equal("USD", flipped.To)
	asserts.InDelta(1.25, flipped.Rate, 1e-12)
	asserts.Equal(rate.ObtainedAt, flipped.ObtainedAt)
	asserts.Equal(time.UTC, rate.ObtainedAt.Location())
}

func TestRateStore_Add(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	store := currency.NewRateStore()

	store.Add(currency.NewExchangeRate("USD", "EUR", 0.8, time.Now()))

	asserts.Equal(2, store.Len())
	asserts.Equal("EUR", store.Rates[0].From)
	asserts.Equal("USD", store.Rates[1].From)

	rate, ok := store.Find("USD", "EUR")
	asserts.True(ok)
	asserts.Equal(0.8, rate.Rate)

	rate, ok = store.Find("EUR", "USD")
	asserts.True(ok)
	asserts.InDelta(1/0.8, rate.Rate, 1e-12)
}

func TestRateStore_Find(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	store := currency.NewRateStore()
	now := time.Now()

	store.Add(currency.NewExchangeRate("USD", "EUR", 0.8, now))
	store.Add(currency.NewExchangeRate("USD", "EUR", 0.9, now))

	t.Run("FirstMatchWins", func(t *testing.T) {
		rate, ok := store.Find("USD", "EUR")
		asserts.True(ok)
		asserts.Equal(0.8, rate.Rate)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		_, ok := store.Find("usd", "eur")
		asserts.False(ok)
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok := store.Find("USD", "JPY")
		asserts.False(ok)
	})
}

func TestRateStore_Remove(t *testing.T) {
	t.Parallel()
	now := time.Now()

	t.Run("SwapsLastIntoPlace", func(t *testing.T) {
		asserts := require.New(t)
		store := currency.NewRateStore()
		store.Add(currency.NewExchangeRate("USD", "EUR", 0.8, now))
		store.Add(currency.NewExchangeRate("USD", "JPY", 150, now))

		asserts.True(store.Remove("EUR", "USD"))
		asserts.Equal(3, store.Len())
		asserts.Equal("USD", store.Rates[0].From)
		asserts.Equal("JPY", store.Rates[0].To)

		_, ok := store.Find("EUR", "USD")
		asserts.False(ok)
	})

	t.Run("LastRecordIsReachable", func(t *testing.T) {
		asserts := require.New(t)
		store := currency.NewRateStore()
		store.Add(currency.NewExchangeRate("USD", "EUR", 0.8, now))

		asserts.True(store.Remove("USD", "EUR"))
		asserts.Equal(1, store.Len())

		_, ok := store.Find("USD", "EUR")
		asserts.False(ok)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		asserts := require.New(t)
		store := currency.NewRateStore()

		asserts.False(store.Remove("USD", "EUR"))
	})
}

func TestRateStore_Prune(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	now := time.Now()
	store := currency.NewRateStore()

	store.Add(currency.NewExchangeRate("USD", "EUR", 0.8, now.Add(-8*24*time.Hour)))
	store.Add(currency.NewExchangeRate("USD", "JPY", 150, now.Add(-time.Hour)))

	asserts.Equal(2, store.Prune(7*24*time.Hour, now))
	asserts.Equal(2, store.Len())

	_, ok := store.Find("JPY", "USD")
	asserts.True(ok)
	_, ok = store.Find("EUR", "USD")
	asserts.False(ok)
}
