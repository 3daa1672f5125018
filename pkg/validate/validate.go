package validate

import (
	"regexp"

	"github.com/ShiraazMoollatjie/goluhn"
)

var timeRe = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

// IsLuhn reports whether s is a digit string with a valid Luhn check digit.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsHHMM reports whether s is a 24h clock time like "09:30".
func IsHHMM(s string) bool {
	return timeRe.MatchString(s)
}
