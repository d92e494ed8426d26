// Package runtime implements the process-wide registry of the Plorth
// execution core: the built-in dictionary, the per-type prototype
// objects, and the value factories (§4.1). Grounded on
// original_source/src/runtime.cpp's constructor (allocate booleans,
// install the global dictionary, walk each prototype definition list via
// make_prototype) and on gelo's NewVM/Register* family (src/gelo/vm.go)
// for the Go-facing construction and registration API.
package runtime

import (
	"fmt"

	"github.com/helvm/plorth/context"
	"github.com/helvm/plorth/value"
)

// Definition pairs an identifier with the native function that
// implements it — the "(identifier, native-function) pairs" a prototype
// or the global dictionary is built from (§4.1).
type Definition struct {
	Name string
	Func value.NativeFunc
}

// Runtime owns the global dictionary and the nine per-type prototype
// objects, constructed once per interpreter instance and thereafter
// read-only (§5).
type Runtime struct {
	tracef func(format string, args ...any)

	global map[string]*value.Word

	prototypes [value.TagError + 1]*value.Object
}

// Option configures a Runtime at construction time, grounded on the
// options-applied-at-New shape of jcorbin-gothird/options.go (a
// VMOption interface with an apply(vm *VM) method, collected into a
// slice and applied in order by New/vm.apply) — simplified here to a
// plain function type since a Runtime has no default options to apply
// before the caller's own, and construction cannot fail.
type Option func(*Runtime)

// WithTracef installs a tracing hook, called with a printf-style format
// string at points a host may want to observe (word dispatch, prototype
// construction). Grounded on gelo's per-VM logging struct
// (src/gelo/core.go's "logging"/logf) — a no-op by default rather than a
// process-global logger.
func WithTracef(fn func(format string, args ...any)) Option {
	return func(r *Runtime) { r.tracef = fn }
}

// WithExtraBuiltins registers additional global words at construction
// time, on top of the base set defined in globals.go.
func WithExtraBuiltins(defs []Definition) Option {
	return func(r *Runtime) {
		for _, d := range defs {
			r.global[d.Name] = value.NewWord(value.NewSymbol(d.Name), value.NewNativeQuote(d.Func))
		}
	}
}

// New constructs a runtime: it allocates the two canonical booleans
// (already package-level singletons in value.True/value.False), installs
// the global dictionary, and constructs every per-type prototype object
// by walking its definition list — the same construction order as
// original_source/src/runtime.cpp.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		tracef: func(string, ...any) {},
		global: make(map[string]*value.Word, len(globalDefinitions)),
	}

	for _, d := range globalDefinitions {
		r.global[d.Name] = value.NewWord(value.NewSymbol(d.Name), value.NewNativeQuote(d.Func))
	}

	r.installPrototype(value.TagArray, "array", nil)
	r.installPrototype(value.TagBoolean, "boolean", nil)
	r.installPrototype(value.TagError, "error", nil)
	r.installPrototype(value.TagNumber, "number", nil)
	r.installPrototype(value.TagObject, "object", nil)
	r.installPrototype(value.TagQuote, "quote", nil)
	r.installPrototype(value.TagString, "string", StringPrototypeDefinitions())
	r.installPrototype(value.TagSymbol, "symbol", nil)
	r.installPrototype(value.TagWord, "word", nil)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// installPrototype builds the "prototype" object for typeName from defs
// and publishes it both under r.prototypes and as a global dictionary
// entry named typeName whose value is an object {prototype: <table>},
// mirroring make_prototype in original_source/src/runtime.cpp.
func (r *Runtime) installPrototype(tag value.Tag, typeName string, defs []Definition) {
	properties := make(map[string]value.Value, len(defs))
	for _, d := range defs {
		properties[d.Name] = value.NewNativeQuote(d.Func)
	}
	prototype := value.NewObject(properties)
	r.prototypes[tag] = prototype

	wrapper := value.NewObject(map[string]value.Value{"prototype": prototype})
	r.global[typeName] = value.NewWord(value.NewSymbol(typeName), value.NewNativeQuote(func(ctx value.Context) {
		ctx.Push(wrapper)
	}))
	r.tracef("runtime: installed %s prototype (%d words)", typeName, len(defs))
}

// Tracef forwards to the runtime's tracing hook.
func (r *Runtime) Tracef(format string, args ...any) { r.tracef(format, args...) }

// LookupGlobal resolves name in the global dictionary, satisfying
// context.Runtime.
func (r *Runtime) LookupGlobal(name string) (*value.Word, bool) {
	w, ok := r.global[name]
	return w, ok
}

// NewContext builds a fresh context bound to r (§4.1's new_context()).
func (r *Runtime) NewContext() *context.Context {
	return context.New(r)
}

// ---- prototype accessors (§4.1) ----

func (r *Runtime) ArrayPrototype() *value.Object  { return r.prototypes[value.TagArray] }
func (r *Runtime) BooleanPrototype() *value.Object { return r.prototypes[value.TagBoolean] }
func (r *Runtime) ErrorPrototype() *value.Object  { return r.prototypes[value.TagError] }
func (r *Runtime) NumberPrototype() *value.Object { return r.prototypes[value.TagNumber] }
func (r *Runtime) ObjectPrototype() *value.Object { return r.prototypes[value.TagObject] }
func (r *Runtime) QuotePrototype() *value.Object  { return r.prototypes[value.TagQuote] }
func (r *Runtime) StringPrototype() *value.Object { return r.prototypes[value.TagString] }
func (r *Runtime) SymbolPrototype() *value.Object { return r.prototypes[value.TagSymbol] }
func (r *Runtime) WordPrototype() *value.Object   { return r.prototypes[value.TagWord] }

// PrototypeOf resolves the prototype object for v, per §4.5:
// null maps to the object prototype; every other primitive tag maps to
// its dedicated per-type prototype; an object uses its own __proto__
// property if present, else the runtime's object prototype.
func (r *Runtime) PrototypeOf(v value.Value) *value.Object {
	if v.Tag() == value.TagNull {
		return r.ObjectPrototype()
	}
	if obj, ok := v.(*value.Object); ok {
		if proto, ok := obj.Proto(); ok {
			return proto
		}
		return r.ObjectPrototype()
	}
	return r.prototypes[v.Tag()]
}

// Resolve looks up name on v's prototype chain first (its prototype
// object's "prototype" property, then __proto__ walk for objects), then
// falls through to the global dictionary — "First match wins" (§4.5).
func (r *Runtime) Resolve(v value.Value, name string) (value.Quote, bool) {
	if obj, isObj := v.(*value.Object); isObj {
		for cur := obj; cur != nil; {
			if prop, ok := cur.Get(name); ok {
				if q, ok := prop.(value.Quote); ok {
					return q, true
				}
			}
			proto, ok := cur.Proto()
			if !ok {
				break
			}
			cur = proto
		}
	} else if proto := r.PrototypeOf(v); proto != nil {
		if prop, ok := proto.Get(name); ok {
			if q, ok := prop.(value.Quote); ok {
				return q, true
			}
		}
	}
	if w, ok := r.global[name]; ok {
		return w.Quote(), true
	}
	return nil, false
}

// ---- value factories (§4.1) ----

func (r *Runtime) True() value.Value  { return value.True }
func (r *Runtime) False() value.Value { return value.False }

func (r *Runtime) Int(i int64) *value.Number   { return value.NewInt(i) }
func (r *Runtime) Real(f float64) *value.Number { return value.NewReal(f) }

func (r *Runtime) StringFromGo(s string) value.String { return value.NewStringFromGo(s) }

func (r *Runtime) StringFromRunes(runes []rune) value.String { return value.NewString(runes) }

func (r *Runtime) Array(elements []value.Value) *value.Array { return value.NewArray(elements) }

func (r *Runtime) Object(properties map[string]value.Value) *value.Object {
	return value.NewObject(properties)
}

func (r *Runtime) Symbol(id string) value.Symbol { return value.NewSymbol(id) }

func (r *Runtime) Quote(values []value.Value) value.Quote { return value.NewQuote(values) }

func (r *Runtime) Word(sym value.Symbol, q value.Quote) *value.Word {
	return value.NewWord(sym, q)
}

func (r *Runtime) Error(code value.ErrorCode, message string, pos *value.Position) *value.Error {
	return value.NewError(code, message, pos)
}

// String is a convenience wrapper mirroring the overloaded
// runtime::string(...) factories of original_source/include: it accepts
// either a Go string or a codepoint buffer.
func (r *Runtime) String(input any) (value.String, error) {
	switch v := input.(type) {
	case string:
		return value.NewStringFromGo(v), nil
	case []rune:
		return value.NewString(v), nil
	default:
		return nil, fmt.Errorf("runtime: String: unsupported input type %T", input)
	}
}
