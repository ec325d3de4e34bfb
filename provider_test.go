package currency_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/currency"
)

func TestConvertToProviderFromString(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		value    string
		expected interface{}
		err      error
	}{
		{"freecurrconversion", currency.FreeConvProvider, nil},
		{"FreeCurrConv", currency.FreeConvProvider, nil},
		{"ExchangeRatesAPI", currency.ExchangeRatesAPIProvider, nil},
		{"", currency.EmptyProvider, errors.New("value  is not valid Provider")},
		{"not-valid-value", currency.EmptyProvider, errors.New("value not-valid-value is not valid Provider")},
	}

	for _, value := range values {
		provider, err := currency.ConvertToProviderFromString(value.value)
		assert.Equal(value.expected, provider)
		assert.Equal(value.err, err)
	}
}
