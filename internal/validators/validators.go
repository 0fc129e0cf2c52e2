package validators

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/property-booking/internal/timezone"
)

const SupportedCountry = "BR"

var (
	validate = validator.New()

	bookingHourRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	zipcodeRe     = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	phoneRe       = regexp.MustCompile(`^(\+?55\s?)?\(?[1-9]{2}\)?\s?9?\d{4}[-\s]?\d{4}$`)
)

var establishmentTypes = map[string]struct{}{
	"hotel":     {},
	"house":     {},
	"kitnet":    {},
	"apartment": {},
}

// isoLayouts are tried in order; the first one that parses wins.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISODate parses an ISO-8601 date or date-time. Values without a zone
// are read as UTC. The result is always in UTC.
func ParseISODate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func IsDate(raw string) bool {
	_, ok := ParseISODate(raw)
	return ok
}

// IsBookingHour reports whether hm is a 24h HH:MM string.
func IsBookingHour(hm string) bool {
	return bookingHourRe.MatchString(hm)
}

// IsZipcode validates a brazilian CEP, with or without the hyphen.
func IsZipcode(zipcode string) bool {
	return zipcodeRe.MatchString(strings.TrimSpace(zipcode))
}

// IsPhone validates a brazilian landline or mobile number, optionally
// prefixed by the +55 country code.
func IsPhone(contact string) bool {
	return phoneRe.MatchString(strings.TrimSpace(contact))
}

func IsCountry(country string) bool {
	return country == SupportedCountry
}

func IsEstablishmentType(kind string) bool {
	_, ok := establishmentTypes[kind]
	return ok
}

func IsState(state string) bool {
	return timezone.IsKnownState(state)
}

// Bindings maps the custom binding tags to their checks.
func Bindings() map[string]validator.Func {
	str := func(check func(string) bool) validator.Func {
		return func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}
	}
	return map[string]validator.Func{
		"isodate":            str(IsDate),
		"hhmm":               str(IsBookingHour),
		"cep":                str(IsZipcode),
		"br_phone":           str(IsPhone),
		"country":            str(IsCountry),
		"establishment_type": str(IsEstablishmentType),
		"br_state":           str(IsState),
	}
}

// Register installs the custom tags on v. Call it with gin's binding engine
// so request structs can use them.
func Register(v *validator.Validate) error {
	for tag, fn := range Bindings() {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
