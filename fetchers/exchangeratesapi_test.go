package fetchers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency/fetchers"
)

type exchangeRatesAPIHandler struct{}

func (h exchangeRatesAPIHandler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	base := request.URL.Query().Get("base")
	symbols := request.URL.Query().Get("symbols")

	switch {
	case base == "EUR" && symbols == "USD":
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"base": "EUR", "rates": {"USD": 1.2}, "date": "2020-10-10"}`))
	case base == "XXX":
		writer.WriteHeader(http.StatusBadRequest)
		_, _ = writer.Write([]byte(`{"error": "Base 'XXX' is not supported."}`))
	case base == "ERR":
		writer.WriteHeader(http.StatusBadGateway)
	default:
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(`{"base": "` + base + `", "rates": {}, "date": "2020-10-10"}`))
	}
}

func TestExchangeRatesAPIFetcher_FetchRate(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(exchangeRatesAPIHandler{})
	defer server.Close()

	fetcher := fetchers.ExchangeRatesAPIFetcher{URL: server.URL}
	ctx := context.Background()

	t.Run("Retrieves rate from API", func(t *testing.T) {
		asserts := require.New(t)

		rate, err := fetcher.FetchRate(ctx, "EUR", "USD")

		asserts.Nil(err)
		asserts.Equal(1.2, rate)
	})

	t.Run("Bad request", func(t *testing.T) {
		asserts := require.New(t)

		_, err := fetcher.FetchRate(ctx, "XXX", "USD")

		asserts.True(errors.Is(err, fetchers.ErrClient))
	})

	t.Run("Server error", func(t *testing.T) {
		asserts := require.New(t)

		_, err := fetcher.FetchRate(ctx, "ERR", "USD")

		asserts.True(errors.Is(err, fetchers.ErrServer))
	})

	t.Run("Rate missing", func(t *testing.T) {
		asserts := require.New(t)

		_, err := fetcher.FetchRate(ctx, "USD", "JPY")

		asserts.True(errors.Is(err, fetchers.ErrRateNotFound))
	})
}

func TestExchangeRatesAPIFetcher_SendsAccessKey(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	var accessKey string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		accessKey = request.URL.Query().Get("access_key")
		_, _ = writer.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.8}}`))
	}))
	defer server.Close()

	fetcher := fetchers.ExchangeRatesAPIFetcher{URL: server.URL, APIKey: "secret"}
	rate, err := fetcher.FetchRate(context.Background(), "USD", "EUR")

	asserts.Nil(err)
	asserts.Equal(0.8, rate)
	asserts.Equal("secret", accessKey)
}
