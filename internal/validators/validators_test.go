package validators

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
)

func TestParseISODate(t *testing.T) {
	cases := []struct {
		input    string
		ok       bool
		expected time.Time
	}{
		{input: "2099-01-01", ok: true, expected: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{input: "2024-03-21T10:00:00.304Z", ok: true, expected: time.Date(2024, 3, 21, 10, 0, 0, 304000000, time.UTC)},
		{input: "2024-03-21T10:00:00-03:00", ok: true, expected: time.Date(2024, 3, 21, 13, 0, 0, 0, time.UTC)},
		{input: "2024-03-21T10:00:00", ok: true, expected: time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC)},
		{input: " 2024-03-21 ", ok: true, expected: time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC)},
		{input: "21/03/2024", ok: false},
		{input: "2024-13-01", ok: false},
		{input: "tomorrow", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseISODate(tc.input)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && !got.Equal(tc.expected) {
				t.Fatalf("expected %s, got %s", tc.expected, got)
			}
		})
	}
}

func TestIsBookingHour(t *testing.T) {
	valid := []string{"00:00", "08:30", "19:59", "23:59"}
	invalid := []string{"24:00", "8:30", "08:60", "0830", "08:3", "", "ab:cd"}

	for _, v := range valid {
		if !IsBookingHour(v) {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	for _, v := range invalid {
		if IsBookingHour(v) {
			t.Fatalf("expected %q to be invalid", v)
		}
	}
}

func TestIsZipcode(t *testing.T) {
	cases := map[string]bool{
		"01310-100": true,
		"01310100":  true,
		"0131-0100": false,
		"1310-100":  false,
		"abcde-fgh": false,
	}
	for input, expected := range cases {
		if got := IsZipcode(input); got != expected {
			t.Fatalf("IsZipcode(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestIsPhone(t *testing.T) {
	cases := map[string]bool{
		"(11) 91234-5678":   true,
		"11912345678":       true,
		"+55 11 91234-5678": true,
		"1132345678":        true,
		"(01) 91234-5678":   false,
		"912345678":         false,
		"phone":             false,
	}
	for input, expected := range cases {
		if got := IsPhone(input); got != expected {
			t.Fatalf("IsPhone(%q) = %v, expected %v", input, got, expected)
		}
	}
}

func TestSmallValidators(t *testing.T) {
	if !IsCountry("BR") || IsCountry("US") || IsCountry("br") {
		t.Fatal("country check mismatch")
	}
	if !IsEstablishmentType("kitnet") || IsEstablishmentType("castle") {
		t.Fatal("establishment type check mismatch")
	}
	if !IsState("SP") || IsState("XX") {
		t.Fatal("state check mismatch")
	}
	if !IsEmail("guest@example.com") || IsEmail("guest@") {
		t.Fatal("email check mismatch")
	}
}

func TestRegisterBindings(t *testing.T) {
	v := validator.New()
	if err := Register(v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type payload struct {
		Hour    string `validate:"hhmm"`
		Zipcode string `validate:"cep"`
		Date    string `validate:"isodate"`
	}

	if err := v.Struct(payload{Hour: "10:00", Zipcode: "01310-100", Date: "2099-01-01"}); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if err := v.Struct(payload{Hour: "25:00", Zipcode: "01310-100", Date: "2099-01-01"}); err == nil {
		t.Fatal("expected invalid hour to fail")
	}
}
