package currency

import (
	"fmt"
	"strings"
)

// Provider names a spot-rate source.
type Provider string

const (
	FreeConvProvider         Provider = "FreeCurrConversion"
	ExchangeRatesAPIProvider Provider = "ExchangeRatesAPI"
	EmptyProvider            Provider = ""
)

// ConvertToProviderFromString accepts provider names case-insensitively.
func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "freecurrconversion", "freecurrconv":
		return FreeConvProvider, nil
	case "exchangeratesapi":
		return ExchangeRatesAPIProvider, nil
	}

	return EmptyProvider, fmt.Errorf("value %s is not valid Provider", str)
}

func (p Provider) String() string {
	return string(p)
}
