package value

import "strings"

// Array is an ordered, immutable sequence of values.
type Array struct {
	elements []Value
}

// NewArray builds an array from elements, copying the slice so later
// mutation by the caller cannot reach back into the value (§3.1: values
// are immutable after construction).
func NewArray(elements []Value) *Array {
	buf := make([]Value, len(elements))
	copy(buf, elements)
	return &Array{elements: buf}
}

func (a *Array) Tag() Tag { return TagArray }

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.elements) }

// At returns the element at index i.
func (a *Array) At(i int) Value { return a.elements[i] }

// Elements returns a defensive copy of a's backing slice.
func (a *Array) Elements() []Value {
	out := make([]Value, len(a.elements))
	copy(out, a.elements)
	return out
}

func (a *Array) Equals(other Value) bool {
	oa, ok := other.(*Array)
	if !ok || len(a.elements) != len(oa.elements) {
		return false
	}
	for i, v := range a.elements {
		if !v.Equals(oa.elements[i]) {
			return false
		}
	}
	return true
}

func (a *Array) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) Source() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Source())
	}
	b.WriteByte(']')
	return b.String()
}
