package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   bool
	}{
		{name: "Valid Visa test number", number: "4242424242424242", want: true},
		{name: "Valid with spaces", number: "4242 4242 4242 4242", want: true},
		{name: "Valid with dashes", number: "4242-4242-4242-4242", want: true},
		{name: "Bad checksum", number: "4242424242424243", want: false},
		{name: "Too short", number: "42424242", want: false},
		{name: "Letters", number: "4242abcd42424242", want: false},
		{name: "Empty", number: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCardNumber(tt.number))
		})
	}
}
