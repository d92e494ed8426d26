package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberInteger(t *testing.T) {
	n, ok := ParseNumber("42")
	require.True(t, ok)
	assert.True(t, n.IsInt())
	assert.Equal(t, int64(42), n.Int())
}

func TestParseNumberReal(t *testing.T) {
	n, ok := ParseNumber("3.14")
	require.True(t, ok)
	assert.False(t, n.IsInt())
	assert.InDelta(t, 3.14, n.Real(), 1e-9)
}

func TestParseNumberRejectsTrailingGarbage(t *testing.T) {
	_, ok := ParseNumber("12.5abc")
	assert.False(t, ok)
}

func TestParseNumberRejectsEmpty(t *testing.T) {
	_, ok := ParseNumber("")
	assert.False(t, ok)
}

func TestNumberEqualsCrossesIntAndReal(t *testing.T) {
	i := NewInt(2)
	r := NewReal(2.0)
	assert.True(t, i.Equals(r))
	assert.True(t, r.Equals(i))
}

func TestNumberIntPreservingWhenBothIntegers(t *testing.T) {
	a := NewInt(7)
	assert.Equal(t, "7", a.String())
}

func TestNumberStringFormatsReal(t *testing.T) {
	r := NewReal(2.5)
	assert.Equal(t, "2.5", r.String())
}
