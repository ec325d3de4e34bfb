package currency

import "context"

type (
	// Fetcher returns the spot rate for one unit of from expressed in to.
	Fetcher interface {
		FetchRate(ctx context.Context, from, to string) (float64, error)
	}

	// Catalog knows which currency codes exist.
	Catalog interface {
		Lookup(code string) (Currency, bool)
		Suggest(code string) Currency
		Codes() []string
	}

	Currency struct {
		Code   string
		Name   string
		Symbol string
	}
)

// DisplayName returns the currency name, or its code when the name is unknown.
func (c Currency) DisplayName() string {
	if c.Name == "" {
		return c.Code
	}

	return c.Name
}
