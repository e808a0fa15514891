package descriptor

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ArrayMarker prefixes one array dimension.
	ArrayMarker = '['

	objectPrefix = 'L'
	objectSuffix = ';'
)

// ErrMalformed is returned when a descriptor cannot be parsed.
var ErrMalformed = errors.New("malformed descriptor")

var primitiveCodes = map[string]byte{
	"long":    'J',
	"int":     'I',
	"char":    'C',
	"short":   'S',
	"byte":    'B',
	"double":  'D',
	"float":   'F',
	"boolean": 'Z',
	"void":    'V',
}

var primitiveNames = func() map[byte]string {
	m := make(map[byte]string, len(primitiveCodes))
	for name, code := range primitiveCodes {
		m[code] = name
	}

	return m
}()

// PrimitiveCode returns the single character code of a primitive type name.
func PrimitiveCode(name string) (byte, bool) {
	code, ok := primitiveCodes[name]
	return code, ok
}

// PrimitiveName returns the primitive type name for a code.
func PrimitiveName(code byte) (string, bool) {
	name, ok := primitiveNames[code]
	return name, ok
}

// IsPrimitive reports whether name is one of the primitive type names.
func IsPrimitive(name string) bool {
	_, ok := primitiveCodes[name]
	return ok
}

// Encode returns the descriptor of a class-or-array name.
func Encode(name string) string {
	if code, ok := primitiveCodes[name]; ok {
		return string(code)
	}

	if len(name) > 0 && name[0] == ArrayMarker {
		// Array names already carry their element in descriptor form.
		return toInternal(name)
	}

	return string(objectPrefix) + toInternal(name) + string(objectSuffix)
}

// EncodeParams concatenates the descriptors of names in order.
// An empty parameter list encodes to the empty string.
func EncodeParams(names ...string) string {
	if len(names) == 0 {
		return ""
	}

	var b strings.Builder
	for _, name := range names {
		b.WriteString(Encode(name))
	}

	return b.String()
}

// Decode returns the class-or-array name of a single type descriptor.
func Decode(desc string) (string, error) {
	name, n, err := decodeOne(desc)
	if err != nil {
		return "", err
	}

	if n != len(desc) {
		return "", fmt.Errorf("%w: trailing data in %q", ErrMalformed, desc)
	}

	return name, nil
}

// DecodeParams splits a parameter descriptor into class-or-array names.
func DecodeParams(desc string) ([]string, error) {
	var names []string

	for rest := desc; rest != ""; {
		name, n, err := decodeOne(rest)
		if err != nil {
			return nil, err
		}

		names = append(names, name)
		rest = rest[n:]
	}

	return names, nil
}

// ParamsOf extracts the parameter part of a method descriptor,
// e.g. "(ILpkg/Foo;)V" -> "ILpkg/Foo;".
func ParamsOf(methodDesc string) (string, error) {
	if len(methodDesc) == 0 || methodDesc[0] != '(' {
		return "", fmt.Errorf("%w: method descriptor %q does not start with '('", ErrMalformed, methodDesc)
	}

	end := strings.IndexByte(methodDesc, ')')
	if end < 0 {
		return "", fmt.Errorf("%w: method descriptor %q has no ')'", ErrMalformed, methodDesc)
	}

	return methodDesc[1:end], nil
}

// MapClassNames rewrites every object type in desc through fn.
// fn receives and returns dot separated class names. Anything that is not an
// object type is copied unchanged, so desc may be a type, parameter or method
// descriptor.
func MapClassNames(desc string, fn func(string) string) (string, error) {
	var b strings.Builder
	b.Grow(len(desc))

	for i := 0; i < len(desc); i++ {
		c := desc[i]
		if c != objectPrefix {
			b.WriteByte(c)
			continue
		}

		end := strings.IndexByte(desc[i:], objectSuffix)
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated object type in %q", ErrMalformed, desc)
		}

		name := fromInternal(desc[i+1 : i+end])
		b.WriteByte(objectPrefix)
		b.WriteString(toInternal(fn(name)))
		b.WriteByte(objectSuffix)

		i += end
	}

	return b.String(), nil
}

func decodeOne(desc string) (string, int, error) {
	if desc == "" {
		return "", 0, fmt.Errorf("%w: empty descriptor", ErrMalformed)
	}

	switch c := desc[0]; c {
	case ArrayMarker:
		dims := 0
		for dims < len(desc) && desc[dims] == ArrayMarker {
			dims++
		}

		elem, n, err := decodeOne(desc[dims:])
		if err != nil {
			return "", 0, err
		}

		if elem == "void" {
			return "", 0, fmt.Errorf("%w: array of void in %q", ErrMalformed, desc)
		}

		return fromInternal(desc[:dims+n]), dims + n, nil

	case objectPrefix:
		end := strings.IndexByte(desc, objectSuffix)
		if end < 2 {
			return "", 0, fmt.Errorf("%w: bad object type in %q", ErrMalformed, desc)
		}

		return fromInternal(desc[1:end]), end + 1, nil

	default:
		name, ok := primitiveNames[c]
		if !ok {
			return "", 0, fmt.Errorf("%w: unknown type code %q in %q", ErrMalformed, c, desc)
		}

		return name, 1, nil
	}
}

func toInternal(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

func fromInternal(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
