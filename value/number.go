package value

import (
	"math"
	"strconv"
	"strings"
)

// Number is a variant of integer (signed 64-bit) and real (IEEE-754
// double), per spec §3.2. Grounded on gelo's number.go, generalized from
// gelo's single float64 representation to the integer/real split the
// spec requires so that integer-only arithmetic stays integer-preserving.
type Number struct {
	isInt bool
	i     int64
	r     float64
}

// NewInt constructs an integer Number.
func NewInt(i int64) *Number { return &Number{isInt: true, i: i} }

// NewReal constructs a real Number.
func NewReal(r float64) *Number { return &Number{isInt: false, r: r} }

// ParseNumber parses text as a decimal integer or, failing that, a real
// number, mirroring push_number's contract in
// original_source/include/plorth/context.hpp and w_to_number's fallback
// in original_source/src/value-string.cpp.
func ParseNumber(text string) (*Number, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return NewInt(i), true
	}
	r, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(r) {
		return nil, false
	}
	return NewReal(r), true
}

func (n *Number) Tag() Tag { return TagNumber }

// IsInt reports whether n holds an integer.
func (n *Number) IsInt() bool { return n.isInt }

// Int returns n as an int64, truncating a real value toward zero.
func (n *Number) Int() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.r)
}

// Real returns n as a float64, widening an integer value.
func (n *Number) Real() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.r
}

func (n *Number) Equals(other Value) bool {
	on, ok := other.(*Number)
	if !ok {
		return false
	}
	if n.isInt && on.isInt {
		return n.i == on.i
	}
	return n.Real() == on.Real()
}

func (n *Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.r, 'g', -1, 64)
}

func (n *Number) Source() string { return n.String() }
