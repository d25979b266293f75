// Package format renders amounts and dates for display. Everything here is
// presentation only and must never fail on hostile input.
package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InvalidDate is shown in place of an unparseable timestamp.
const InvalidDate = "Invalid date"

var printer = message.NewPrinter(language.German)

// Currency renders an amount as a fixed-locale euro string with two decimal
// places and thousands grouping: 42.5 becomes "42,50 €" and 1000 becomes
// "1.000,00 €".
func Currency(amount decimal.Decimal) string {
	return printer.Sprintf("%v €", number.Decimal(amount.InexactFloat64(), number.Scale(2)))
}

// dateLayouts are the accepted timestamp shapes, tried in order. RFC 3339
// tolerates fractional seconds, so the persisted millisecond form parses too.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// Date renders an ISO-8601 timestamp string as "02. Jan 2006", the day
// zero-padded. Unparseable input yields InvalidDate instead of an error.
func Date(value string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02. Jan 2006")
		}
	}
	return InvalidDate
}
