// Package rng parses and evaluates interval notation with units, e.g. `[-5;100[ msec`
// which reads "must be >= -5 msec and < 100 msec".
package rng

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	edgeOpen  = "]"
	edgeClose = "["
)

var (
	// ErrInvalidRange is the base error for every rejected interval.
	ErrInvalidRange = errors.New("invalid range")
	// ErrMalformed is returned when the interval does not match the grammar.
	ErrMalformed = errors.New("malformed")
	// ErrBoundOrder is returned when the lower bound exceeds the upper bound.
	ErrBoundOrder = errors.New("expected lower bound <= upper bound")
	// ErrUnknownUnit is returned when the unit suffix is not in the unit table.
	ErrUnknownUnit = errors.New("unexpected unit")

	rangeRe = regexp.MustCompile(
		`^\s*(?P<elower>[\[\]])\s*(?P<lower>-?inf|-?\d+(?:\.\d*)?)\s*;` + // [1.0;
			`\s*(?P<upper>-?inf|-?\d+(?:\.\d*)?)\s*(?P<eupper>[\[\]])` + // 1.0]
			`\s*(?P<unit>\S*)\s*$`, // msec
	)
)

// ParseError records a rejected interval and why it was rejected. It matches both
// ErrInvalidRange and the specific cause with errors.Is.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidRange, e.Input, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidRange, e.Err}
}

// Range is an immutable interval built from interval notation.
type Range struct {
	lower     float64
	upper     float64
	elower    string
	eupper    string
	unit      string
	scale     float64
	normLower float64
	normUpper float64
}

// Parse builds a Range from its textual notation.
func Parse(s string) (*Range, error) {
	match := rangeRe.FindStringSubmatch(s)
	if match == nil {
		return nil, &ParseError{Input: s, Err: ErrMalformed}
	}

	group := func(name string) string {
		return match[rangeRe.SubexpIndex(name)]
	}

	lower, err := strconv.ParseFloat(group("lower"), 64)
	if err != nil {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("%w lower bound: %v", ErrMalformed, err)}
	}

	upper, err := strconv.ParseFloat(group("upper"), 64)
	if err != nil {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("%w upper bound: %v", ErrMalformed, err)}
	}

	if lower > upper {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("%w, got %v > %v", ErrBoundOrder, lower, upper)}
	}

	unit := group("unit")

	scale, ok := Scale(unit)
	if !ok {
		return nil, &ParseError{Input: s, Err: fmt.Errorf("%w '%s', supported units are: %q", ErrUnknownUnit, unit, Units())}
	}

	return &Range{
		lower:     lower,
		upper:     upper,
		elower:    group("elower"),
		eupper:    group("eupper"),
		unit:      unit,
		scale:     scale,
		normLower: lower * scale,
		normUpper: upper * scale,
	}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// Contains reports whether v, expressed in the base unit, satisfies the interval.
func (r *Range) Contains(v float64) bool {
	return r.checkLower(v) && r.checkUpper(v)
}

func (r *Range) checkLower(v float64) bool {
	if r.LowerInclusive() {
		return v >= r.normLower
	}

	return v > r.normLower
}

func (r *Range) checkUpper(v float64) bool {
	if r.UpperInclusive() {
		return v <= r.normUpper
	}

	return v < r.normUpper
}

// Lower returns the declared lower bound, before unit scaling.
func (r *Range) Lower() float64 { return r.lower }

// Upper returns the declared upper bound, before unit scaling.
func (r *Range) Upper() float64 { return r.upper }

// LowerInclusive is true for a `[` lower edge.
func (r *Range) LowerInclusive() bool { return r.elower == edgeClose }

// UpperInclusive is true for a `]` upper edge.
func (r *Range) UpperInclusive() bool { return r.eupper == edgeOpen }

// Unit returns the unit symbol, empty when none was given.
func (r *Range) Unit() string { return r.unit }

// Scale returns the factor applied to both bounds.
func (r *Range) Scale() float64 { return r.scale }

func (r *Range) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s%s;%s%s %s",
		r.elower, formatBound(r.lower), formatBound(r.upper), r.eupper, r.unit))
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
