package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/malusev998/currency"
)

var _ currency.Fetcher = FreeCurrConvFetcher{}

type FreeCurrConvFetcher struct {
	URL    string
	APIKey string
	Client *http.Client
}

func (f FreeCurrConvFetcher) FetchRate(ctx context.Context, from, to string) (float64, error) {
	rawURL := f.URL

	if rawURL == "" {
		rawURL = FreeConvFetchURL
	}

	pair := from + "_" + to

	query := url.Values{}
	query.Add("q", pair)
	query.Add("compact", "ultra")
	query.Add("apiKey", f.APIKey)

	req, err := getData(ctx, rawURL, query)

	if err != nil {
		return 0, err
	}

	res, err := httpClient(f.Client).Do(req)

	if err != nil {
		return 0, err
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	if err != nil {
		return 0, err
	}

	if res.StatusCode == http.StatusOK {
		data := map[string]float64{}

		if err := json.Unmarshal(body, &data); err != nil {
			return 0, fmt.Errorf("error while decoding freecurrconv response: %w", err)
		}

		rate, ok := data[pair]

		if !ok || rate <= 0 {
			return 0, fmt.Errorf("%w: %s", ErrRateNotFound, pair)
		}

		return rate, nil
	}

	if res.StatusCode == http.StatusBadRequest {
		errorRes := errorFreeConvResponse{}
		_ = json.Unmarshal(body, &errorRes)

		if strings.Contains(errorRes.Error, "required") {
			return 0, ErrUnAuthorized
		}

		if strings.Contains(errorRes.Error, "API limit reached") {
			return 0, ErrAPILimitReached
		}
	}

	return 0, statusError(res.StatusCode)
}
