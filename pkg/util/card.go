package util

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// ValidateCardNumber reports whether the given card number is
// plausible: digits only (spaces and dashes tolerated), 13-19 digits,
// and a valid Luhn checksum.
func ValidateCardNumber(number string) bool {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, number)

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	return goluhn.Validate(cleaned) == nil
}
