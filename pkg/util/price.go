package util

import (
	"strconv"
	"strings"
)

// DefaultPriceUnit is the display label appended to prices when none
// is stored. Historical data always used "рублей".
const DefaultPriceUnit = "рублей"

// ParsePrice extracts the numeric amount from a legacy display string
// such as "9000 рублей" or "8 500,50 руб.". Every rune that is not a
// digit or a decimal separator is stripped; commas count as decimal
// separators and only the first separator is honored, so the dot in
// "руб." does not corrupt the number. Unparseable input yields 0.
func ParsePrice(display string) float64 {
	var b strings.Builder
	seenSep := false
	for _, r := range display {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenSep:
			b.WriteByte('.')
			seenSep = true
		}
	}
	amount, err := strconv.ParseFloat(strings.TrimSuffix(b.String(), "."), 64)
	if err != nil {
		return 0
	}
	return amount
}

// ParsePriceUnit extracts the trailing non-numeric label from a legacy
// display string ("9000 рублей" -> "рублей"). Empty input falls back
// to DefaultPriceUnit.
func ParsePriceUnit(display string) string {
	unit := strings.TrimLeft(strings.TrimSpace(display), "0123456789., ")
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return DefaultPriceUnit
	}
	return unit
}

// FormatPrice renders the stored numeric amount back into the display
// form clients historically received ("9000 рублей").
func FormatPrice(amount float64, unit string) string {
	if unit == "" {
		unit = DefaultPriceUnit
	}
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + unit
}
