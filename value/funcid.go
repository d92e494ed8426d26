package value

import "reflect"

// sameFunc compares two native functions by code pointer. Go forbids
// comparing func values with ==, and native quotes are only ever
// meaningfully equal to themselves (they carry no source text to compare
// the way gelo's quote.go compares q.source bytes), so pointer identity
// is the right notion of equality here.
func sameFunc(a, b NativeFunc) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
