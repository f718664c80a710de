package mathops

import (
	"fmt"
	"strings"

	"github.com/martinlindhe/unit"
)

var lengthUnits = map[string]unit.Length{
	"mm": unit.Millimeter,
	"cm": unit.Centimeter,
	"m":  unit.Meter,
	"km": unit.Kilometer,
	"in": unit.Inch,
	"ft": unit.Foot,
	"yd": unit.Yard,
	"mi": unit.Mile,
}

var massUnits = map[string]unit.Mass{
	"mg": unit.Milligram,
	"g":  unit.Gram,
	"kg": unit.Kilogram,
	"oz": unit.AvoirdupoisOunce,
	"lb": unit.AvoirdupoisPound,
}

var temperatureUnits = map[string]struct{}{
	"c": {}, "f": {}, "k": {},
}

// Convert converts value between two units of the same kind. Supported kinds:
// length, mass, temperature. Unit names are case-insensitive short forms
// ("cm", "kg", "f").
func Convert(value float64, from, to string) (float64, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))

	if fu, ok := lengthUnits[from]; ok {
		tu, ok := lengthUnits[to]
		if !ok {
			return 0, fmt.Errorf("cannot convert length %q to %q", from, to)
		}
		return value * float64(fu) / float64(tu), nil
	}
	if fu, ok := massUnits[from]; ok {
		tu, ok := massUnits[to]
		if !ok {
			return 0, fmt.Errorf("cannot convert mass %q to %q", from, to)
		}
		return value * float64(fu) / float64(tu), nil
	}
	if _, ok := temperatureUnits[from]; ok {
		return convertTemperature(value, from, to)
	}
	return 0, fmt.Errorf("unknown unit %q", from)
}

// Temperature scales are affine, so they go through the library's
// constructors instead of a plain ratio.
func convertTemperature(value float64, from, to string) (float64, error) {
	var t unit.Temperature
	switch from {
	case "c":
		t = unit.FromCelsius(value)
	case "f":
		t = unit.FromFahrenheit(value)
	case "k":
		t = unit.FromKelvin(value)
	}
	switch to {
	case "c":
		return t.Celsius(), nil
	case "f":
		return t.Fahrenheit(), nil
	case "k":
		return t.Kelvin(), nil
	}
	return 0, fmt.Errorf("cannot convert temperature %q to %q", from, to)
}
