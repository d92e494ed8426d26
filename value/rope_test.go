package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleStringBasics(t *testing.T) {
	s := NewStringFromGo("Hello, World!")
	assert.Equal(t, 13, s.Length())
	assert.Equal(t, 'H', s.At(0))
	assert.Equal(t, '!', s.At(12))
	assert.Equal(t, "Hello, World!", s.String())
}

func TestConcatLengthAndAtConsistentWithMaterialize(t *testing.T) {
	left := NewStringFromGo("foo")
	right := NewStringFromGo("bar")
	c := Concat(left, right)

	require.Equal(t, 6, c.Length())
	for i := 0; i < c.Length(); i++ {
		assert.Equal(t, rune("foobar"[i]), c.At(i))
	}
	assert.Equal(t, "foobar", c.String())
}

func TestConcatEmptyChildIsElided(t *testing.T) {
	left := NewStringFromGo("")
	right := NewStringFromGo("bar")

	assert.Same(t, right, Concat(left, right))
	assert.Same(t, left, Concat(left, NewStringFromGo("")))
}

func TestSliceMaterializesSubrange(t *testing.T) {
	s := NewStringFromGo("Hello, World!")
	sub := Slice(s, 7, 5)

	require.Equal(t, 5, sub.Length())
	assert.Equal(t, "World", sub.String())
}

func TestSliceFullRangeReturnsOriginal(t *testing.T) {
	s := NewStringFromGo("Hello")
	assert.Same(t, s, Slice(s, 0, s.Length()))
}

func TestSliceOfSliceFlattensOffsets(t *testing.T) {
	s := NewStringFromGo("Hello, World!")
	once := Slice(s, 7, 6) // "World!"
	twice := Slice(once, 0, 5) // "World"

	assert.Equal(t, "World", twice.String())
	inner, ok := twice.(*sliceString)
	require.True(t, ok)
	assert.Same(t, s, inner.original)
}

func TestSliceZeroLengthIsEmptySimpleString(t *testing.T) {
	s := NewStringFromGo("Hello")
	empty := Slice(s, 2, 0)
	assert.Equal(t, 0, empty.Length())
	assert.Equal(t, "", empty.String())
}

func TestStringEqualsIsCodepointWise(t *testing.T) {
	a := NewStringFromGo("abc")
	b := Concat(NewStringFromGo("ab"), NewStringFromGo("c"))
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.False(t, a.Equals(NewStringFromGo("abd")))
	assert.False(t, a.Equals(NewInt(1)))
}

func TestToSourceEscapesControlAndQuoteCharacters(t *testing.T) {
	s := NewStringFromGo("a\"b\\c\nd")
	assert.Equal(t, `"a\"b\\c\nd"`, ToSource(s))
}

func TestToSourceSurrogatePairsAboveBMP(t *testing.T) {
	s := NewString([]rune{0x1F600})
	got := ToSource(s)
	assert.True(t, strings.HasPrefix(got, `"\u`))
	assert.Equal(t, `"\ud83d\ude00"`, got)
}

func TestReverseOfReverseRoundTrips(t *testing.T) {
	runes := []rune("Hello, World!")
	once := make([]rune, len(runes))
	for i, r := range runes {
		once[len(runes)-1-i] = r
	}
	twice := make([]rune, len(once))
	for i, r := range once {
		twice[len(once)-1-i] = r
	}
	assert.Equal(t, runes, twice)
}
