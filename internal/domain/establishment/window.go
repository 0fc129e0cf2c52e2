package establishment

import (
	"time"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

const (
	FieldMinBookingHour = "minBookingHour"
	FieldMaxBookingHour = "maxBookingHour"

	MsgWindowOrder = "maxBookingHour can't be less than minBookingHour"
)

// ValidateBookingWindow checks the format of the non-empty bounds and, when
// both are known, that min is strictly earlier than max.
func ValidateBookingWindow(minHour, maxHour string) error {
	if maxHour != "" && !validators.IsBookingHour(maxHour) {
		return httperr.InvalidParam(FieldMaxBookingHour)
	}
	if minHour != "" && !validators.IsBookingHour(minHour) {
		return httperr.InvalidParam(FieldMinBookingHour)
	}
	if minHour == "" || maxHour == "" {
		return nil
	}

	day := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			time.UTC,
		)
	}

	if !parseHM(minHour).Before(parseHM(maxHour)) {
		return httperr.InvalidParam(MsgWindowOrder)
	}
	return nil
}

// MergeBookingWindow resolves the window a sparse update would leave behind:
// a bound that is not supplied keeps its stored value.
func MergeBookingWindow(
	stored *models.EstablishmentAttachment,
	newMin, newMax *string,
) (string, string) {
	var minHour, maxHour string
	if stored != nil {
		minHour, maxHour = stored.MinBookingHour, stored.MaxBookingHour
	}
	if newMin != nil {
		minHour = *newMin
	}
	if newMax != nil {
		maxHour = *newMax
	}
	return minHour, maxHour
}
