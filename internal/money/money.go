// Package money renders amounts in the currency of a locale.
package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "ja-JP"

// Formatter formats amounts given in whole units of the currency of its locale,
// e.g. yen for ja-JP and dollars for en-US.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter returns a Formatter for the locale, e.g. "ja-JP".
//
// The locale must contain a region so that the currency can be determined.
func NewFormatter(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency locale %q: %w", locale, err)
	}

	unit, confidence := currency.FromTag(tag)
	if confidence == language.No {
		return Formatter{}, fmt.Errorf("no currency known for locale %q", locale)
	}

	return Formatter{
		tag:     tag,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}, nil
}

// Currency returns the ISO 4217 code of the currency, e.g. "JPY".
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format renders the amount with currency symbol and digit grouping.
func (f Formatter) Format(amount int64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}
