// Package format renders amounts as locale-aware currency text.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts for a fixed locale and currency. The locale is
// injected rather than read from the environment so output is reproducible.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
	symbol  string
	pattern string
}

// NewFormatter builds a formatter from a BCP 47 locale (e.g. "en-US") and an
// ISO 4217 currency code (e.g. "USD").
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(strings.TrimSpace(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	printer := message.NewPrinter(tag)
	symbol := printer.Sprint(currency.Symbol(unit))
	if symbol == "" {
		symbol = unit.String()
	}
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		tag:     tag,
		unit:    unit,
		printer: printer,
		symbol:  symbol,
		pattern: fmt.Sprintf("%%.%df", scale),
	}, nil
}

// Default returns the en-US / USD formatter.
func Default() *Formatter {
	f, err := NewFormatter(constants.DefaultLocale, constants.DefaultCurrency)
	if err != nil {
		panic(err)
	}
	return f
}

// WithSymbol returns a copy of the formatter using the given symbol instead
// of the locale's.
func (f *Formatter) WithSymbol(symbol string) *Formatter {
	clone := *f
	if symbol != "" {
		clone.symbol = symbol
	}
	return &clone
}

// Format returns a currency string with a symbol and locale separators
// (e.g., "-$1,234.56").
func (f *Formatter) Format(amount float64) string {
	formatted := f.Number(math.Abs(amount))
	if amount < 0 && formatted != f.Number(0) {
		return "-" + f.symbol + formatted
	}
	return f.symbol + formatted
}

// Number returns the amount without a currency symbol but with separators
// (e.g., "-1,234.56").
func (f *Formatter) Number(amount float64) string {
	return f.printer.Sprintf(f.pattern, amount)
}

// Locale returns the formatter's language tag.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Currency returns the ISO 4217 code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Symbol returns the symbol prefixed to formatted amounts.
func (f *Formatter) Symbol() string {
	return f.symbol
}
