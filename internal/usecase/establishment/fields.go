package establishment

import (
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

const (
	SubjectAttachment    = "Establishment Attachment"
	SubjectEstablishment = "Establishment"
	SubjectOwner         = "User"
	SubjectNameTaken     = "An Establishment with this name"

	MsgNotOwner = "Requester does not owns this establishment"
)

// checkFormats validates the formatted fields that are present. Empty
// pointers are skipped, so the same routine serves create and update.
func checkFormats(kind, zipcode, contact, country, state *string) error {
	if zipcode != nil && !validators.IsZipcode(*zipcode) {
		return httperr.InvalidParam("zipcode")
	}
	if contact != nil && !validators.IsPhone(*contact) {
		return httperr.InvalidParam("contact")
	}
	if country != nil && !validators.IsCountry(*country) {
		return httperr.InvalidParam("country")
	}
	if kind != nil && !validators.IsEstablishmentType(*kind) {
		return httperr.InvalidParam("type")
	}
	if state != nil && !validators.IsState(*state) {
		return httperr.InvalidParam("state")
	}
	return nil
}

// setIfPresent records col when the field was supplied.
func setIfPresent(fields map[string]any, col string, v *string) {
	if v != nil {
		fields[col] = *v
	}
}
