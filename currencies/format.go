package currencies

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Format renders amount the way the currency is usually written, e.g. $1,234.50.
// Codes without a display format and non-finite amounts are rendered as a
// plain number.
func (c *Catalog) Format(code string, amount float64) string {
	cur, ok := c.Lookup(code)
	if !ok || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	unit, err := xcurrency.ParseISO(cur.Code)
	if err != nil {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	scale, _ := xcurrency.Standard.Rounding(unit)
	value := decimal.NewFromFloat(amount).Round(int32(scale))

	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Abs()
	}

	f, _ := value.Float64()
	digits := printer.Sprint(number.Decimal(f, number.Scale(scale)))

	return sign + prefix(cur.Symbol, cur.Code) + digits
}

func prefix(symbol, code string) string {
	if symbol == "" {
		return code + " "
	}

	last, _ := utf8.DecodeLastRuneInString(symbol)
	if utf8.RuneCountInString(symbol) == 1 || last == '$' {
		return symbol
	}

	return symbol + " "
}
