package validators

import (
	"net/mail"

	"github.com/washerhq/carwash-api/internal/apperr"
)

func Email(field, value string) error {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return apperr.Validation(field, "must be a valid email address")
	}
	return nil
}
