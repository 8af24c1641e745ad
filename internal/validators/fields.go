package validators

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/washerhq/carwash-api/internal/apperr"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	plateRegex = regexp.MustCompile(`^[A-Z0-9]{1,10}$`)
)

// RequireString rejects empty or whitespace-only values and enforces the
// maximum length when max > 0.
func RequireString(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Validation(field, "must not be blank")
	}
	if max > 0 && len(value) > max {
		return apperr.Validation(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

func Phone(field, value string) error {
	if !phoneRegex.MatchString(value) {
		return apperr.Validation(field, "must contain exactly 10 digits")
	}
	return nil
}

func LicensePlate(field, value string) error {
	if !plateRegex.MatchString(value) {
		return apperr.Validation(field, "must be 1-10 uppercase alphanumeric characters")
	}
	return nil
}
