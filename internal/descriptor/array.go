package descriptor

import "strings"

// ArrayName is a class-or-array name split into its array dimensions and
// element type.
type ArrayName struct {
	Dims      int    // number of leading array markers
	Elem      string // element class name, or primitive name when Primitive is set
	Primitive bool
}

// SplitArray splits an array name such as "[[Lpkg.Foo;" into its dimensions
// and element name. It reports false when name is not a well formed array
// name; callers pass such names through unchanged.
func SplitArray(name string) (ArrayName, bool) {
	dims := 0
	for dims < len(name) && name[dims] == ArrayMarker {
		dims++
	}

	if dims == 0 {
		return ArrayName{}, false
	}

	rest := name[dims:]
	switch {
	case len(rest) == 1:
		prim, ok := primitiveNames[rest[0]]
		if !ok || prim == "void" {
			return ArrayName{}, false
		}

		return ArrayName{Dims: dims, Elem: prim, Primitive: true}, true

	case len(rest) > 2 && rest[0] == objectPrefix && rest[len(rest)-1] == objectSuffix:
		elem := rest[1 : len(rest)-1]
		if strings.ContainsAny(elem, ";[") {
			return ArrayName{}, false
		}

		return ArrayName{Dims: dims, Elem: elem}, true

	default:
		return ArrayName{}, false
	}
}

// Join reassembles the array name around elem. For primitive arrays elem is
// ignored and the original primitive is kept.
func (a ArrayName) Join(elem string) string {
	var b strings.Builder
	for range a.Dims {
		b.WriteByte(ArrayMarker)
	}

	if a.Primitive {
		b.WriteByte(primitiveCodes[a.Elem])
		return b.String()
	}

	b.WriteByte(objectPrefix)
	b.WriteString(elem)
	b.WriteByte(objectSuffix)

	return b.String()
}

// String returns the class-or-array name.
func (a ArrayName) String() string {
	return a.Join(a.Elem)
}

// ArrayOf returns the class-or-array name of an array whose elements are
// named elem.
func ArrayOf(elem string) string {
	if len(elem) > 0 && elem[0] == ArrayMarker {
		return string(ArrayMarker) + elem
	}

	if code, ok := primitiveCodes[elem]; ok {
		return string([]byte{ArrayMarker, code})
	}

	return string(ArrayMarker) + string(objectPrefix) + elem + string(objectSuffix)
}
