// Package context implements the per-evaluation execution state of the
// Plorth core: the data stack, the local dictionary, and the error slot,
// per spec §4.2. Grounded structurally on
// original_source/include/plorth/context.hpp's method list, and on
// gelo's VM/namespace split (src/gelo/vm.go, namespace.go) for how a
// per-evaluation dictionary overrides a process-wide one.
package context

import (
	"fmt"

	"github.com/helvm/plorth/value"
)

// Runtime is the minimal surface Context needs from its owning runtime:
// global dictionary lookup, prototype-chain word resolution, and a
// tracing hook. Declared here rather than imported from a concrete
// runtime package to avoid an import cycle (runtime.Runtime constructs
// *Context, so context cannot import runtime) — the same
// structural-interface technique value.Context uses for native quotes.
type Runtime interface {
	LookupGlobal(name string) (*value.Word, bool)

	// Resolve looks up name against v's prototype chain, falling
	// through to the global dictionary if nothing on the chain matches
	// (§4.5).
	Resolve(v value.Value, name string) (value.Quote, bool)

	Tracef(format string, args ...any)
}

// Context holds one evaluation's data stack, local dictionary overrides,
// and current error, plus an optional source filename (§4.2).
type Context struct {
	rt       Runtime
	stack    []value.Value
	locals   map[string]*value.Word
	err      *value.Error
	filename string
}

// New constructs a context bound to rt.
func New(rt Runtime) *Context {
	return &Context{rt: rt, locals: make(map[string]*value.Word)}
}

// SetFilename attaches a source filename to the context, used in error
// positions reported by the host.
func (c *Context) SetFilename(name string) { c.filename = name }

// Filename returns the context's attached source filename, if any.
func (c *Context) Filename() string { return c.filename }

// Runtime returns the runtime this context is bound to.
func (c *Context) Runtime() Runtime { return c.rt }

// ---- error slot (§4.2) ----

// Error returns the context's currently set error, or nil.
func (c *Context) Error() *value.Error { return c.err }

// SetError constructs an error from code and message and stores it as
// the context's current error. This is the universal failure channel:
// words do not abort the context; they set the error and return.
func (c *Context) SetError(code value.ErrorCode, message string) {
	var pos *value.Position
	if c.filename != "" {
		pos = &value.Position{File: c.filename}
	}
	c.err = value.NewError(code, message, pos)
}

// SetErrorValue stores err directly as the context's current error.
func (c *Context) SetErrorValue(err *value.Error) { c.err = err }

// ClearError removes the context's current error, if any.
func (c *Context) ClearError() { c.err = nil }

// ---- local dictionary ----

// Define adds or overrides a word in the context's local dictionary.
func (c *Context) Define(w *value.Word) {
	c.locals[w.Symbol().ID()] = w
}

// Lookup resolves an identifier: the local dictionary is searched first,
// then the runtime's global dictionary (§4.5, last sentence).
func (c *Context) Lookup(name string) (*value.Word, bool) {
	if w, ok := c.locals[name]; ok {
		return w, true
	}
	if c.rt == nil {
		return nil, false
	}
	return c.rt.LookupGlobal(name)
}

// Resolve is the full word-dispatch resolution order (§4.5): the local
// dictionary first, then — when the data stack is non-empty — the
// prototype chain of the value on top of the stack (which itself falls
// through to the global dictionary), and finally the global dictionary
// directly for when the stack is empty. This is what Invoke uses to
// turn a symbol into the quote it runs; Lookup above only ever sees the
// local/global dictionaries and is kept for callers that want word
// values rather than dispatch (e.g. Define's counterpart reads).
func (c *Context) Resolve(name string) (value.Quote, bool) {
	if w, ok := c.locals[name]; ok {
		return w.Quote(), true
	}
	if c.rt == nil {
		return nil, false
	}
	if n := len(c.stack); n > 0 {
		if q, ok := c.rt.Resolve(c.stack[n-1], name); ok {
			return q, true
		}
	}
	if w, ok := c.rt.LookupGlobal(name); ok {
		return w.Quote(), true
	}
	return nil, false
}

// ---- data stack (§4.2's "Stack protocol") ----

// Push pushes v onto the top of the data stack.
func (c *Context) Push(v value.Value) {
	c.stack = append(c.stack, v)
}

// Size returns the number of values currently on the data stack.
func (c *Context) Size() int { return len(c.stack) }

// Clear empties the data stack.
func (c *Context) Clear() { c.stack = nil }

// Values returns a defensive copy of the data stack, bottom first. Hosts
// use this to inspect final stack contents after a run; it is not part
// of the stack-discipline contract words themselves rely on.
func (c *Context) Values() []value.Value {
	out := make([]value.Value, len(c.stack))
	copy(out, c.stack)
	return out
}

// Pop removes and returns the top of the data stack. On an empty stack
// it sets a range error "Stack underflow." and returns (nil, false).
func (c *Context) Pop() (value.Value, bool) {
	n := len(c.stack)
	if n == 0 {
		c.SetError(value.CodeRange, "Stack underflow.")
		return nil, false
	}
	v := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return v, true
}

// PopTyped removes the top of the stack if its tag matches want; on a
// mismatch it sets a type error and leaves the stack unchanged; on an
// empty stack it sets a range error.
func (c *Context) PopTyped(want value.Tag) (value.Value, bool) {
	n := len(c.stack)
	if n == 0 {
		c.SetError(value.CodeRange, "Stack underflow.")
		return nil, false
	}
	top := c.stack[n-1]
	if top.Tag() != want {
		c.SetError(value.CodeType, fmt.Sprintf("Expected %s, got %s.", want, top.Tag()))
		return nil, false
	}
	c.stack = c.stack[:n-1]
	return top, true
}

// PopString pops a string value.
func (c *Context) PopString() (value.String, bool) {
	v, ok := c.PopTyped(value.TagString)
	if !ok {
		return nil, false
	}
	return v.(value.String), true
}

// PopNumber pops a number value.
func (c *Context) PopNumber() (*value.Number, bool) {
	v, ok := c.PopTyped(value.TagNumber)
	if !ok {
		return nil, false
	}
	return v.(*value.Number), true
}

// PopBoolean pops a boolean value.
func (c *Context) PopBoolean() (value.Bool, bool) {
	v, ok := c.PopTyped(value.TagBoolean)
	if !ok {
		return false, false
	}
	return v.(value.Bool), true
}

// PopArray pops an array value.
func (c *Context) PopArray() (*value.Array, bool) {
	v, ok := c.PopTyped(value.TagArray)
	if !ok {
		return nil, false
	}
	return v.(*value.Array), true
}

// PopObject pops an object value.
func (c *Context) PopObject() (*value.Object, bool) {
	v, ok := c.PopTyped(value.TagObject)
	if !ok {
		return nil, false
	}
	return v.(*value.Object), true
}

// PopSymbol pops a symbol value.
func (c *Context) PopSymbol() (value.Symbol, bool) {
	v, ok := c.PopTyped(value.TagSymbol)
	if !ok {
		return "", false
	}
	return v.(value.Symbol), true
}

// PopQuote pops a quote value.
func (c *Context) PopQuote() (value.Quote, bool) {
	v, ok := c.PopTyped(value.TagQuote)
	if !ok {
		return nil, false
	}
	return v.(value.Quote), true
}

// PopWord pops a word value.
func (c *Context) PopWord() (*value.Word, bool) {
	v, ok := c.PopTyped(value.TagWord)
	if !ok {
		return nil, false
	}
	return v.(*value.Word), true
}

// ---- convenience pushers (§4.2) ----

func (c *Context) PushNull() { c.Push(value.Null) }

func (c *Context) PushBoolean(b bool) { c.Push(value.FromBool(b)) }

func (c *Context) PushInt(i int64) { c.Push(value.NewInt(i)) }

func (c *Context) PushReal(r float64) { c.Push(value.NewReal(r)) }

// PushNumber parses text as a decimal integer or real and pushes the
// result; on a parse failure it sets a value error and returns false.
func (c *Context) PushNumber(text string) bool {
	n, ok := value.ParseNumber(text)
	if !ok {
		c.SetError(value.CodeValue, "Could not convert string to number.")
		return false
	}
	c.Push(n)
	return true
}

func (c *Context) PushString(s value.String) { c.Push(s) }

// PushStringText pushes a simple string built from Go text.
func (c *Context) PushStringText(text string) {
	c.Push(value.NewStringFromGo(text))
}

// PushStringRunes pushes a simple string built from a codepoint buffer.
func (c *Context) PushStringRunes(buf []rune, length int) {
	c.Push(value.NewString(buf[:length]))
}

func (c *Context) PushArray(elements []value.Value) {
	c.Push(value.NewArray(elements))
}

func (c *Context) PushObject(properties map[string]value.Value) {
	c.Push(value.NewObject(properties))
}

func (c *Context) PushSymbol(id string) {
	c.Push(value.NewSymbol(id))
}

func (c *Context) PushQuote(values []value.Value) {
	c.Push(value.NewQuote(values))
}

func (c *Context) PushWord(sym value.Symbol, quote value.Quote) {
	c.Push(value.NewWord(sym, quote))
}

// Invoke runs a quote against this context: a primitive quote calls its
// native function directly; a value-sequence quote pushes literals and
// invokes words in order (§3.5). A symbol is dispatched through Resolve
// — local dictionary, then the prototype chain of whatever value is on
// top of the stack, then the global dictionary (§4.5) — not through the
// local/global-only Lookup, since most words (the string prototype's
// among them) live on a type's prototype rather than in the global
// dictionary. Per spec §4.2, a word does not abort execution on error —
// Invoke itself stops advancing through a value-sequence quote's
// remaining items as soon as the error slot is set, mirroring the
// interpreter loop description in spec §7 ("the caller... short-circuits
// further execution until the error is cleared").
func (c *Context) Invoke(q value.Quote) {
	if fn, ok := q.Native(); ok {
		fn(c)
		return
	}
	values, _ := q.Values()
	for _, v := range values {
		if sym, ok := v.(value.Symbol); ok {
			quote, found := c.Resolve(sym.ID())
			if !found {
				c.SetError(value.CodeReference, fmt.Sprintf("Unknown word: %s.", sym.ID()))
				return
			}
			c.Invoke(quote)
		} else {
			c.Push(v)
		}
		if c.err != nil {
			return
		}
	}
}
