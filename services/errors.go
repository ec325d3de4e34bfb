package services

import (
	"errors"
	"fmt"

	"github.com/malusev998/currency"
)

var (
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrServiceUnavailable = errors.New("something went wrong with the internet")
	ErrNoCurrencies       = errors.New("no currencies given")
)

// UnknownCurrencyError is returned for codes the catalog does not know.
// Suggestion holds the closest known currency.
type UnknownCurrencyError struct {
	Code       string
	Suggestion currency.Currency
}

func (e *UnknownCurrencyError) Error() string {
	if e.Suggestion.Code == "" {
		return fmt.Sprintf("%s isn't a real currency!", e.Code)
	}

	return fmt.Sprintf("%s isn't a real currency! Did you mean %s (%s)?", e.Code, e.Suggestion.Code, e.Suggestion.DisplayName())
}

func (e *UnknownCurrencyError) Is(target error) bool {
	return target == ErrUnknownCurrency
}

// NewUnknownCurrencyError looks up the suggestion for code in catalog.
func NewUnknownCurrencyError(catalog currency.Catalog, code string) *UnknownCurrencyError {
	return &UnknownCurrencyError{
		Code:       code,
		Suggestion: catalog.Suggest(code),
	}
}

// ServiceUnavailableError carries the fetch failure behind ErrServiceUnavailable.
type ServiceUnavailableError struct {
	From string
	To   string
	Err  error
}

func (e *ServiceUnavailableError) Error() string {
	return ErrServiceUnavailable.Error()
}

func (e *ServiceUnavailableError) Is(target error) bool {
	return target == ErrServiceUnavailable
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}
