package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// ValidPhone reports whether value is a parseable, valid phone number.
// National-format numbers are interpreted against the given default region.
// The field is optional everywhere it appears, so empty input is valid.
func ValidPhone(value, defaultRegion string) bool {
	if strings.TrimSpace(value) == "" {
		return true
	}
	num, err := phonenumbers.Parse(value, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}
