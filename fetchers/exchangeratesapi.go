package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/malusev998/currency"
)

var _ currency.Fetcher = ExchangeRatesAPIFetcher{}

type ExchangeRatesAPIFetcher struct {
	URL    string
	APIKey string
	Client *http.Client
}

func (e ExchangeRatesAPIFetcher) handleHTTPStatusCodeError(res *http.Response) error {
	if res.StatusCode != http.StatusOK {
		return statusError(res.StatusCode)
	}

	return nil
}

func (e ExchangeRatesAPIFetcher) FetchRate(ctx context.Context, from, to string) (float64, error) {
	rawURL := e.URL

	if rawURL == "" {
		rawURL = ExchangeRatesAPIURL
	}

	query := url.Values{}
	query.Add("base", from)
	query.Add("symbols", to)

	if e.APIKey != "" {
		query.Add("access_key", e.APIKey)
	}

	req, err := getData(ctx, rawURL, query)

	if err != nil {
		return 0, err
	}

	res, err := httpClient(e.Client).Do(req)

	if err != nil {
		return 0, err
	}

	defer res.Body.Close()

	if err := e.handleHTTPStatusCodeError(res); err != nil {
		return 0, err
	}

	var data exchangeRateAPIResponse

	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("error while decoding exchangeratesapi response: %w", err)
	}

	rate, ok := data.Rates[to]

	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %s_%s", ErrRateNotFound, from, to)
	}

	return rate, nil
}
