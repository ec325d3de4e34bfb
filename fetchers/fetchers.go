package fetchers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

const (
	FreeConvFetchURL    = "https://free.currconv.com/api/v7/convert"
	ExchangeRatesAPIURL = "https://api.exchangeratesapi.io/latest"
)

type (
	errorFreeConvResponse struct {
		Status int    `json:"status"`
		Error  string `json:"error"`
	}

	exchangeRateAPIResponse struct {
		Base  string             `json:"base,omitempty"`
		Rates map[string]float64 `json:"rates,omitempty"`
		Date  string             `json:"date,omitempty"`
	}
)

var (
	ErrUnAuthorized    = errors.New("unauthorized, API key is not provided")
	ErrClient          = errors.New("client error")
	ErrServer          = errors.New("server error")
	ErrUnknown         = errors.New("unknown error")
	ErrAPILimitReached = errors.New("API limit reached")
	ErrRateNotFound    = errors.New("rate not found in response")
)

func getData(ctx context.Context, rawURL string, query url.Values) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", "application/json")

	q := req.URL.Query()
	for key, values := range query {
		for _, value := range values {
			q.Add(key, value)
		}
	}

	req.URL.RawQuery = q.Encode()

	return req, nil
}

func statusError(statusCode int) error {
	switch {
	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return ErrClient
	case statusCode >= http.StatusInternalServerError:
		return ErrServer
	}

	return ErrUnknown
}

func httpClient(client *http.Client) *http.Client {
	if client == nil {
		return http.DefaultClient
	}

	return client
}
