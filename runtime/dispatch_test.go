package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helvm/plorth/value"
)

// These tests drive word dispatch the way a real caller does — pushing
// a value and invoking a symbol by name through Context.Invoke/Resolve
// — rather than calling a wordXxx function directly, to prove §4.5's
// prototype-chain lookup is actually wired into dispatch and not just
// reachable by test code that bypasses it.

func TestInvokeResolvesStringWordThroughPrototypeChain(t *testing.T) {
	ctx := newTestRuntimeContext(t)
	ctx.PushString(value.NewStringFromGo("Hello, World!"))

	ctx.Invoke(value.NewQuote([]value.Value{value.NewSymbol("length")}))

	require.Nil(t, ctx.Error())
	n, ok := ctx.PopNumber()
	require.True(t, ok)
	assert.Equal(t, int64(13), n.Int())
	s, ok := ctx.PopString()
	require.True(t, ok)
	assert.Equal(t, "Hello, World!", s.String())
}

func TestInvokeResolvesTagAgnosticGlobalWord(t *testing.T) {
	ctx := newTestRuntimeContext(t)
	ctx.PushInt(5)

	ctx.Invoke(value.NewQuote([]value.Value{value.NewSymbol("dup")}))

	require.Nil(t, ctx.Error())
	assert.Equal(t, 2, ctx.Size())
}

func TestInvokeUnknownWordStillSetsReferenceError(t *testing.T) {
	ctx := newTestRuntimeContext(t)
	ctx.PushInt(5)

	ctx.Invoke(value.NewQuote([]value.Value{value.NewSymbol("no-such-word")}))

	require.NotNil(t, ctx.Error())
	assert.Equal(t, value.CodeReference, ctx.Error().Code)
}

func TestRuntimeResolveFallsThroughToGlobalDictionary(t *testing.T) {
	rt := New()
	q, ok := rt.Resolve(value.NewStringFromGo("x"), "dup")
	require.True(t, ok)
	assert.NotNil(t, q)
}
