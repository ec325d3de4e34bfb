package fetchers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/malusev998/currency"
)

type (
	BaseConfig struct {
		URL     string
		Timeout time.Duration
	}
	FreeConvServiceConfig struct {
		BaseConfig
		APIKey string
	}
	ExchangeRatesAPIConfig struct {
		BaseConfig
		APIKey string
	}
)

var ErrFetcherNotFound = errors.New("fetcher is not found")

func (b BaseConfig) client() *http.Client {
	return &http.Client{Timeout: b.Timeout}
}

// NewCurrencyFetcher builds the fetcher for provider. The result never panics,
// failures inside the transport come back as errors.
func NewCurrencyFetcher(provider currency.Provider, config interface{}) (currency.Fetcher, error) {
	switch provider {
	case currency.FreeConvProvider:
		c, ok := config.(FreeConvServiceConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config %T for %s", config, provider)
		}

		return Recover(FreeCurrConvFetcher{
			URL:    c.URL,
			APIKey: c.APIKey,
			Client: c.client(),
		}), nil
	case currency.ExchangeRatesAPIProvider:
		c, ok := config.(ExchangeRatesAPIConfig)
		if !ok {
			return nil, fmt.Errorf("invalid config %T for %s", config, provider)
		}

		return Recover(ExchangeRatesAPIFetcher{
			URL:    c.URL,
			APIKey: c.APIKey,
			Client: c.client(),
		}), nil
	}

	return nil, ErrFetcherNotFound
}
