package value

import (
	"sort"
	"strings"
)

// ProtoProperty is the name of an object's implicit prototype-chain
// parent property, per spec §3.4.
const ProtoProperty = "__proto__"

// Object is an insertion-order-irrelevant mapping from name to value.
// Its property map is frozen at construction (§3.1) — grounded on
// gelo's Dict (dict.go), generalized with the __proto__ chain link
// spec §3.4 requires, which gelo's flat Dict has no equivalent of.
type Object struct {
	properties map[string]Value
}

// NewObject builds an object from properties, copying the map so the
// caller cannot mutate it afterward.
func NewObject(properties map[string]Value) *Object {
	m := make(map[string]Value, len(properties))
	for k, v := range properties {
		m[k] = v
	}
	return &Object{properties: m}
}

func (o *Object) Tag() Tag { return TagObject }

// Get returns the named property and whether it is present.
func (o *Object) Get(name string) (Value, bool) {
	v, ok := o.properties[name]
	return v, ok
}

// Has reports whether name is a property of o.
func (o *Object) Has(name string) bool {
	_, ok := o.properties[name]
	return ok
}

// Proto returns the object's __proto__ property and whether it is set.
func (o *Object) Proto() (*Object, bool) {
	v, ok := o.properties[ProtoProperty]
	if !ok {
		return nil, false
	}
	p, ok := v.(*Object)
	return p, ok
}

// Keys returns the object's property names in sorted order, for
// deterministic display.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.properties))
	for k := range o.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (o *Object) Equals(other Value) bool {
	oo, ok := other.(*Object)
	if !ok || len(o.properties) != len(oo.properties) {
		return false
	}
	for k, v := range o.properties {
		ov, ok := oo.properties[k]
		if !ok || !v.Equals(ov) {
			return false
		}
	}
	return true
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(o.properties[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

func (o *Object) Source() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range o.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(NewStringFromGo(k).Source())
		b.WriteString(": ")
		b.WriteString(o.properties[k].Source())
	}
	b.WriteByte('}')
	return b.String()
}
