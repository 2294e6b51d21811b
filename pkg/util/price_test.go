package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
	}{
		{name: "Plain rubles", display: "9000 рублей", want: 9000},
		{name: "Another amount", display: "8500 рублей", want: 8500},
		{name: "Decimal point", display: "1200.50 руб.", want: 1200.5},
		{name: "Comma separator", display: "19,90 рублей", want: 19.9},
		{name: "Bare number", display: "3500", want: 3500},
		{name: "No digits", display: "договорная", want: 0},
		{name: "Empty", display: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.display))
		})
	}
}

func TestParsePriceUnit(t *testing.T) {
	assert.Equal(t, "рублей", ParsePriceUnit("9000 рублей"))
	assert.Equal(t, "руб.", ParsePriceUnit("1200 руб."))
	assert.Equal(t, DefaultPriceUnit, ParsePriceUnit("3500"))
	assert.Equal(t, DefaultPriceUnit, ParsePriceUnit(""))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "9000 рублей", FormatPrice(9000, "рублей"))
	assert.Equal(t, "19.9 рублей", FormatPrice(19.9, ""))
}

func TestPriceRoundTrip(t *testing.T) {
	display := "8500 рублей"
	amount := ParsePrice(display)
	unit := ParsePriceUnit(display)
	assert.Equal(t, display, FormatPrice(amount, unit))
}
