package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helvm/plorth/value"
)

type stubRuntime struct {
	globals map[string]*value.Word
}

func (r *stubRuntime) LookupGlobal(name string) (*value.Word, bool) {
	w, ok := r.globals[name]
	return w, ok
}

func (r *stubRuntime) Resolve(v value.Value, name string) (value.Quote, bool) {
	return nil, false
}

func (r *stubRuntime) Tracef(string, ...any) {}

func newTestContext() *Context {
	return New(&stubRuntime{globals: map[string]*value.Word{}})
}

func TestPushPopRoundTrips(t *testing.T) {
	ctx := newTestContext()
	ctx.PushInt(42)
	v, ok := ctx.Pop()
	require.True(t, ok)
	assert.Equal(t, value.TagNumber, v.Tag())
	assert.Equal(t, 0, ctx.Size())
}

func TestPopOnEmptyStackSetsRangeError(t *testing.T) {
	ctx := newTestContext()
	_, ok := ctx.Pop()
	assert.False(t, ok)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, value.CodeRange, ctx.Error().Code)
}

func TestPopTypedMismatchLeavesStackUnchanged(t *testing.T) {
	ctx := newTestContext()
	ctx.PushInt(1)
	before := ctx.Size()

	_, ok := ctx.PopString()
	assert.False(t, ok)
	require.NotNil(t, ctx.Error())
	assert.Equal(t, value.CodeType, ctx.Error().Code)
	assert.Equal(t, before, ctx.Size())
}

func TestSetErrorThenClearError(t *testing.T) {
	ctx := newTestContext()
	ctx.SetError(value.CodeValue, "boom")
	require.NotNil(t, ctx.Error())
	ctx.ClearError()
	assert.Nil(t, ctx.Error())
}

func TestLocalLookupShadowsGlobal(t *testing.T) {
	globalWord := value.NewWord(value.NewSymbol("double"), value.NewNativeQuote(func(c value.Context) {
		n, _ := c.PopNumber()
		c.PushInt(n.Int() * 2)
	}))
	ctx := New(&stubRuntime{globals: map[string]*value.Word{"double": globalWord}})

	localQuote := value.NewNativeQuote(func(c value.Context) { c.PushInt(99) })
	ctx.Define(value.NewWord(value.NewSymbol("double"), localQuote))

	w, ok := ctx.Lookup("double")
	require.True(t, ok)
	assert.True(t, w.Quote().Equals(localQuote))
}

func TestInvokeNativeQuote(t *testing.T) {
	ctx := newTestContext()
	q := value.NewNativeQuote(func(c value.Context) { c.PushInt(7) })
	ctx.Invoke(q)

	v, ok := ctx.Pop()
	require.True(t, ok)
	n, ok := v.(*value.Number)
	require.True(t, ok)
	assert.Equal(t, int64(7), n.Int())
}

func TestInvokeSequenceQuoteResolvesSymbolsAndShortCircuitsOnError(t *testing.T) {
	fail := value.NewWord(value.NewSymbol("fail"), value.NewNativeQuote(func(c value.Context) {
		c.SetError(value.CodeValue, "deliberate")
	}))
	ctx := New(&stubRuntime{globals: map[string]*value.Word{"fail": fail}})

	seq := value.NewQuote([]value.Value{
		value.NewInt(1),
		value.NewSymbol("fail"),
		value.NewInt(2),
	})
	ctx.Invoke(seq)

	require.NotNil(t, ctx.Error())
	assert.Equal(t, 1, ctx.Size())
}

func TestInvokeUnknownSymbolSetsReferenceError(t *testing.T) {
	ctx := newTestContext()
	seq := value.NewQuote([]value.Value{value.NewSymbol("nope")})
	ctx.Invoke(seq)

	require.NotNil(t, ctx.Error())
	assert.Equal(t, value.CodeReference, ctx.Error().Code)
}

func TestValuesReturnsDefensiveCopy(t *testing.T) {
	ctx := newTestContext()
	ctx.PushInt(1)
	ctx.PushInt(2)

	vals := ctx.Values()
	require.Len(t, vals, 2)
	vals[0] = value.NewInt(999)

	assert.Equal(t, 2, ctx.Size())
	original := ctx.Values()
	assert.Equal(t, int64(1), original[0].(*value.Number).Int())
}
