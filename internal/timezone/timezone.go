package timezone

import (
	"fmt"
	"strings"
	"time"
)

// DefaultState is used when an establishment carries no known state code.
// Its offset is the national legal time (Brasília).
const DefaultState = "DF"

const DisplayLayout = "02/01/2006, 15:04:05"

// stateOffsets holds the fixed UTC offset, in hours, of each brazilian state.
// Daylight saving is not modelled.
var stateOffsets = map[string]int{
	"AC": -4, "AM": -4, "MT": -4, "MS": -4, "RO": -4, "RR": -4,

	"AL": -3, "AP": -3, "BA": -3, "CE": -3, "DF": -3, "ES": -3,
	"GO": -3, "MA": -3, "MG": -3, "PA": -3, "PB": -3, "PE": -3,
	"PI": -3, "PR": -3, "RJ": -3, "RN": -3, "RS": -3, "SC": -3,
	"SE": -3, "SP": -3, "TO": -3,
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

func IsKnownState(state string) bool {
	_, ok := stateOffsets[normalizeState(state)]
	return ok
}

// Offset returns the state's UTC offset in hours and whether the state is
// known. Unknown states report the DefaultState offset.
func Offset(state string) (int, bool) {
	if h, ok := stateOffsets[normalizeState(state)]; ok {
		return h, true
	}
	return stateOffsets[DefaultState], false
}

// Location returns a fixed zone for the state.
func Location(state string) *time.Location {
	h, ok := Offset(state)
	name := normalizeState(state)
	if !ok {
		name = DefaultState
	}
	return time.FixedZone(fmt.Sprintf("%s%+03d", name, h), h*int(time.Hour/time.Second))
}

// DateConverterGMT renders a UTC instant in the state's local time as
// DD/MM/YYYY, HH:MM:SS.
func DateConverterGMT(instant time.Time, state string) string {
	return instant.In(Location(state)).Format(DisplayLayout)
}

// ParseAndConvert is DateConverterGMT for an RFC 3339 string.
func ParseAndConvert(raw, state string) (string, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("parse instant %q: %w", raw, err)
	}
	return DateConverterGMT(t, state), nil
}
