// Package currencies holds the ISO 4217 currency list used to validate codes,
// suggest corrections and format amounts.
package currencies

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/malusev998/currency"
)

var _ currency.Catalog = (*Catalog)(nil)

type Catalog struct {
	byCode map[string]currency.Currency
	codes  []string
}

// New builds a catalog from the given currencies, or from the ISO list when none are given.
func New(list ...currency.Currency) *Catalog {
	if len(list) == 0 {
		list = iso
	}

	c := &Catalog{
		byCode: make(map[string]currency.Currency, len(list)),
		codes:  make([]string, 0, len(list)),
	}

	for _, cur := range list {
		cur.Code = strings.ToUpper(cur.Code)
		if _, exists := c.byCode[cur.Code]; exists {
			continue
		}

		c.byCode[cur.Code] = cur
		c.codes = append(c.codes, cur.Code)
	}

	sort.Strings(c.codes)

	return c
}

func (c *Catalog) Lookup(code string) (currency.Currency, bool) {
	cur, ok := c.byCode[strings.ToUpper(code)]

	return cur, ok
}

// Suggest returns the known currency whose code is closest to code by edit
// distance. Ties go to the alphabetically first code.
func (c *Catalog) Suggest(code string) currency.Currency {
	code = strings.ToUpper(code)
	best := ""
	bestDistance := -1

	for _, candidate := range c.codes {
		distance := levenshtein.ComputeDistance(code, candidate)
		if bestDistance == -1 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return c.byCode[best]
}

func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.codes))
	copy(codes, c.codes)

	return codes
}
