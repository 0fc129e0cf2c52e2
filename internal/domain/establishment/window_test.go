package establishment

import (
	"testing"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/models"
)

func TestValidateBookingWindow(t *testing.T) {
	cases := []struct {
		name     string
		min, max string
		expected string
	}{
		{name: "valid pair", min: "08:00", max: "18:00"},
		{name: "only min known", min: "08:00"},
		{name: "only max known", max: "18:00"},
		{name: "nothing known"},
		{name: "reversed", min: "10:00", max: "08:00", expected: "Invalid param: " + MsgWindowOrder},
		{name: "equal bounds", min: "10:00", max: "10:00", expected: "Invalid param: " + MsgWindowOrder},
		{name: "minutes matter", min: "10:30", max: "10:15", expected: "Invalid param: " + MsgWindowOrder},
		{name: "bad max format", min: "08:00", max: "8pm", expected: "Invalid param: maxBookingHour"},
		{name: "bad min format", min: "25:00", max: "18:00", expected: "Invalid param: minBookingHour"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBookingWindow(tc.min, tc.max)
			if tc.expected == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !httperr.IsBusiness(err, httperr.CodeInvalidParam) {
				t.Fatalf("expected invalid param, got %v", err)
			}
			if err.Error() != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, err.Error())
			}
		})
	}
}

func TestMergeBookingWindow(t *testing.T) {
	stored := &models.EstablishmentAttachment{MinBookingHour: "10:00", MaxBookingHour: "20:00"}
	eight := "08:00"
	nine := "09:00"

	cases := []struct {
		name           string
		newMin, newMax *string
		expMin, expMax string
	}{
		{name: "nothing supplied", expMin: "10:00", expMax: "20:00"},
		{name: "only max", newMax: &eight, expMin: "10:00", expMax: "08:00"},
		{name: "only min", newMin: &eight, expMin: "08:00", expMax: "20:00"},
		{name: "both", newMin: &eight, newMax: &nine, expMin: "08:00", expMax: "09:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			minHour, maxHour := MergeBookingWindow(stored, tc.newMin, tc.newMax)
			if minHour != tc.expMin || maxHour != tc.expMax {
				t.Fatalf("expected (%s, %s), got (%s, %s)", tc.expMin, tc.expMax, minHour, maxHour)
			}
		})
	}
}
