package runtime

import "github.com/helvm/plorth/value"

// globalDefinitions are the tag-agnostic words installed directly into
// the global dictionary rather than into any one type's prototype —
// grounded on gelo's EvaluationCommands bundle (src/gelo/builtins.go),
// which registers a flat map of always-available words alongside the
// per-type command sets.
var globalDefinitions = []Definition{
	{Name: "dup", Func: wordDup},
	{Name: "drop", Func: wordDrop},
	{Name: "swap", Func: wordSwap},
	{Name: "if", Func: wordIf},
	{Name: "nop", Func: wordNop},
}

func wordNop(ctx value.Context) {}

func wordDup(ctx value.Context) {
	v, ok := ctx.Pop()
	if !ok {
		return
	}
	ctx.Push(v)
	ctx.Push(v)
}

func wordDrop(ctx value.Context) {
	ctx.Pop()
}

func wordSwap(ctx value.Context) {
	b, ok := ctx.Pop()
	if !ok {
		return
	}
	a, ok := ctx.Pop()
	if !ok {
		ctx.Push(b)
		return
	}
	ctx.Push(b)
	ctx.Push(a)
}

// wordIf implements: cond then-quote else-quote if ( -- ), invoking
// then-quote when cond is true and else-quote otherwise, grounded on
// gelo's "if" combinator in src/gelo/commands/combinator.go.
func wordIf(ctx value.Context) {
	elseQuote, ok := ctx.PopQuote()
	if !ok {
		return
	}
	thenQuote, ok := ctx.PopQuote()
	if !ok {
		return
	}
	cond, ok := ctx.PopBoolean()
	if !ok {
		return
	}
	invoker, ok := ctx.(interface{ Invoke(value.Quote) })
	chosen := elseQuote
	if cond.Bool() {
		chosen = thenQuote
	}
	if ok {
		invoker.Invoke(chosen)
		return
	}
	if fn, ok := chosen.Native(); ok {
		fn(ctx)
	}
}
