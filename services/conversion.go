package services

import (
	"context"
	"strings"

	"github.com/malusev998/currency"
)

type (
	Conversion interface {
		Convert(ctx context.Context, from, to string, amount float64) (float64, error)
	}

	// ConversionService converts a list of prices from a base currency into
	// each target currency.
	ConversionService struct {
		Conversion Conversion
		Catalog    currency.Catalog
	}

	// Table holds one row per price and one column per currency.
	Table struct {
		Currencies []currency.Currency
		Prices     []float64
		Rows       [][]float64
	}
)

var _ Conversion = (*Resolver)(nil)

// Convert fills a Table. currencies[0] is the base every price is quoted in.
// The first failing pair aborts the whole table.
func (c ConversionService) Convert(ctx context.Context, currencies []string, prices []float64) (*Table, error) {
	if len(currencies) == 0 {
		return nil, ErrNoCurrencies
	}

	if len(prices) == 0 {
		prices = []float64{1}
	}

	table := &Table{
		Currencies: make([]currency.Currency, 0, len(currencies)),
		Prices:     prices,
		Rows:       make([][]float64, 0, len(prices)),
	}

	for _, code := range currencies {
		code = strings.ToUpper(code)
		cur, ok := c.Catalog.Lookup(code)

		if !ok {
			return nil, NewUnknownCurrencyError(c.Catalog, code)
		}

		table.Currencies = append(table.Currencies, cur)
	}

	base := table.Currencies[0].Code

	for _, price := range prices {
		row := make([]float64, 0, len(table.Currencies))

		for _, target := range table.Currencies {
			value, err := c.Conversion.Convert(ctx, base, target.Code, price)

			if err != nil {
				return nil, err
			}

			row = append(row, value)
		}

		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
