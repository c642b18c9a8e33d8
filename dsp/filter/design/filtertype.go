package design

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilterType is returned by ParseFilterType for unrecognized names.
var ErrUnknownFilterType = errors.New("design: unknown filter type")

// FilterType selects one of the closed-form biquad designs.
type FilterType int

const (
	TypeLowpass FilterType = iota
	TypeHighpass
	TypeBandpass
	TypeNotch
	TypePeak
	TypeLowShelf
	TypeHighShelf
	TypeUnity
)

var filterTypeNames = [...]string{
	TypeLowpass:   "lowpass",
	TypeHighpass:  "highpass",
	TypeBandpass:  "bandpass",
	TypeNotch:     "notch",
	TypePeak:      "peak",
	TypeLowShelf:  "lowshelf",
	TypeHighShelf: "highshelf",
	TypeUnity:     "unity",
}

// String returns the lowercase name of the filter type.
func (t FilterType) String() string {
	if t < 0 || int(t) >= len(filterTypeNames) {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}

	return filterTypeNames[t]
}

// FilterTypes returns all known filter types in declaration order.
func FilterTypes() []FilterType {
	out := make([]FilterType, len(filterTypeNames))
	for i := range out {
		out[i] = FilterType(i)
	}

	return out
}

// ParseFilterType maps a name such as "lowshelf" back to its FilterType.
// Matching ignores case and surrounding whitespace.
func ParseFilterType(name string) (FilterType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range filterTypeNames {
		if n == key {
			return FilterType(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFilterType, name)
}
