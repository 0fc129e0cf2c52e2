package user

import (
	"strings"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

const (
	SubjectUser       = "User"
	SubjectEmailTaken = "An user with this email"

	MinPasswordLength = 6
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkPassword(password string) error {
	if password == "" {
		return httperr.MissingParam("password")
	}
	if len(password) < MinPasswordLength {
		return httperr.InvalidParam("password")
	}
	return nil
}

// checkAddress validates the formatted fields that are present.
func checkAddress(contact, zipcode, country, state *string) error {
	if contact != nil && *contact != "" && !validators.IsPhone(*contact) {
		return httperr.InvalidParam("contact")
	}
	if zipcode != nil && *zipcode != "" && !validators.IsZipcode(*zipcode) {
		return httperr.InvalidParam("zipcode")
	}
	if country != nil && *country != "" && !validators.IsCountry(*country) {
		return httperr.InvalidParam("country")
	}
	if state != nil && *state != "" && !validators.IsState(*state) {
		return httperr.InvalidParam("state")
	}
	return nil
}
