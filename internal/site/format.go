package site

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"catalogsite/internal/catalog"
)

const currency = "PKR"

var printer = message.NewPrinter(language.English)

// Price formats an optional amount as "PKR 12,500"; nil yields "".
func Price(amount *float64) string {
	if amount == nil {
		return ""
	}
	return currency + " " + printer.Sprint(number.Decimal(*amount, number.MaxFractionDigits(3)))
}

// ReleaseDate prints a stored release date in a long local form, or the raw value when unparseable.
func ReleaseDate(raw string) string {
	t, err := catalog.ParseReleaseDate(raw)
	if err != nil {
		return raw
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}
