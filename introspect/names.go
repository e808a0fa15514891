package introspect

import (
	"reflect"

	"reflection-remapper/internal/descriptor"
)

// BuiltinPkg is the pseudo package of predeclared Go types that have no
// primitive counterpart.
const BuiltinPkg = "builtin"

var goPrimitives = map[string]string{
	"bool":    "boolean",
	"int8":    "byte",
	"int16":   "short",
	"uint16":  "char",
	"int32":   "int",
	"int64":   "long",
	"float32": "float",
	"float64": "double",
}

// PredeclaredName returns the type name of a predeclared Go type given its
// canonical Go name ("int32", "string", "uint8").
func PredeclaredName(goName string) string {
	if prim, ok := goPrimitives[goName]; ok {
		return prim
	}

	return BuiltinPkg + "." + goName
}

// TypeName returns the type name of t without consulting any registry.
func TypeName(t reflect.Type) string {
	return typeName(t, nil)
}

func typeName(t reflect.Type, registered func(reflect.Type) (string, bool)) string {
	if t == nil {
		return PredeclaredName("any")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if registered != nil {
		if name, ok := registered(t); ok {
			return name
		}
	}

	if t.Name() == "" {
		switch t.Kind() {
		case reflect.Slice, reflect.Array:
			return descriptor.ArrayOf(typeName(t.Elem(), registered))
		case reflect.Interface:
			if t.NumMethod() == 0 {
				return PredeclaredName("any")
			}
		}

		return t.String()
	}

	if t.PkgPath() == "" {
		// Predeclared. byte and rune are aliases and report uint8 and int32.
		return PredeclaredName(t.Name())
	}

	return t.PkgPath() + "." + t.Name()
}

// TypeNames returns the type names of ts.
func TypeNames(ts []reflect.Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = TypeName(t)
	}

	return names
}
