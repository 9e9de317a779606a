package rng

import "sort"

// units maps a unit symbol to the factor a bound declared in that unit is
// multiplied by before comparison against a measured value.
var units = map[string]float64{
	// general
	"":  1,
	"B": 1,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,

	// kibi
	"KiB": 1 << 10,
	"MiB": 1 << 20,
	"GiB": 1 << 30,
	"TiB": 1 << 40,

	// kilo
	"kB": 1e3,
	"MB": 1e6,
	"GB": 1e9,
	"TB": 1e12,

	// time
	"nsec": 1e9,
	"usec": 1e6,
	"msec": 1e3,
	"sec":  1,
	"min":  1.0 / 60,
}

// Scale returns the scale factor for the given unit symbol.
func Scale(unit string) (float64, bool) {
	scale, ok := units[unit]

	return scale, ok
}

// Units returns the supported unit symbols in lexical order.
func Units() []string {
	names := make([]string, 0, len(units))
	for name := range units {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
