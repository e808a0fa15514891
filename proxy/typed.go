package proxy

import (
	"errors"
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Invoke invokes name on o and returns the result as R. A nil result is the
// zero R.
func Invoke[R any](o *Object, name string, args ...any) (R, error) {
	var zero R

	v, err := o.Invoke(name, args...)
	if err != nil || v == nil {
		return zero, err
	}

	r, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("%w: %s returned %T, want %s", ErrResultType, name, v, reflect.TypeFor[R]())
	}

	return r, nil
}

// Exec invokes name on o and discards the result.
func Exec(o *Object, name string, args ...any) error {
	_, err := o.Invoke(name, args...)
	return err
}

var errorType = reflect.TypeFor[error]()

// Implement fills the func fields of the struct dst points to with closures
// invoking o. A field invokes the declaration named by its `proxy` tag, or
// else the declaration with the field's name or its lower-case first letter
// variant. Fields tagged `proxy:"-"` and unexported fields are left alone.
//
// A func may return nothing, a result, an error or a result and an error.
// Funcs without an error result panic when the invocation fails.
func Implement(o *Object, dst any) error {
	pv := reflect.ValueOf(dst)
	if pv.Kind() != reflect.Pointer || pv.IsNil() || pv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("implement: want a non-nil pointer to a struct, got %T", dst)
	}

	sv := pv.Elem()
	st := sv.Type()

	for i := range st.NumField() {
		sf := st.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.Func {
			continue
		}

		tag := sf.Tag.Get("proxy")
		if tag == "-" {
			continue
		}

		name, b, err := o.lookup(sf.Name, tag)
		if err != nil {
			return fmt.Errorf("implement %s.%s: %w", st.Name(), sf.Name, err)
		}

		ft := sf.Type
		if ft.IsVariadic() || ft.NumIn() != b.arity {
			return fmt.Errorf("implement %s.%s: %w: %s takes %d arguments, func has %d",
				st.Name(), sf.Name, ErrArgCount, name, b.arity, ft.NumIn())
		}

		if err := checkResults(ft); err != nil {
			return fmt.Errorf("implement %s.%s: %w", st.Name(), sf.Name, err)
		}

		sv.Field(i).Set(reflect.MakeFunc(ft, o.funcFor(name, ft)))
	}

	return nil
}

func (o *Object) lookup(field, tag string) (string, *binding, error) {
	candidates := []string{field}
	if tag != "" {
		candidates = []string{tag}
	} else if r, size := utf8.DecodeRuneInString(field); r != utf8.RuneError {
		candidates = append(candidates, string(unicode.ToLower(r))+field[size:])
	}

	for _, name := range candidates {
		if b, ok := o.bindings[name]; ok {
			return name, b, nil
		}
	}

	return "", nil, fmt.Errorf("%w: %s has no declaration %s", ErrUnknownMember, o.desc.Name, candidates[0])
}

func checkResults(ft reflect.Type) error {
	switch ft.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if ft.Out(1) == errorType {
			return nil
		}
	}

	return errors.New("func must return at most a result and an error")
}

func (o *Object) funcFor(name string, ft reflect.Type) func([]reflect.Value) []reflect.Value {
	hasErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	var resultType reflect.Type
	if n := ft.NumOut(); n == 2 || (n == 1 && !hasErr) {
		resultType = ft.Out(0)
	}

	return func(in []reflect.Value) []reflect.Value {
		args := make([]any, len(in))
		for i, v := range in {
			args[i] = v.Interface()
		}

		v, err := o.Invoke(name, args...)

		var result reflect.Value
		if err == nil && resultType != nil {
			result, err = resultValue(name, v, resultType)
		}

		if err != nil && !hasErr {
			panic(err)
		}

		out := make([]reflect.Value, 0, 2)
		if resultType != nil {
			if err != nil {
				result = reflect.Zero(resultType)
			}

			out = append(out, result)
		}

		if hasErr {
			errVal := reflect.Zero(errorType)
			if err != nil {
				errVal = reflect.ValueOf(&err).Elem()
			}

			out = append(out, errVal)
		}

		return out
	}
}

func resultValue(name string, v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(t), nil
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.Type().AssignableTo(t):
		return rv, nil
	case rv.Type().ConvertibleTo(t) && rv.Kind() == t.Kind():
		return rv.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s returned %s, want %s", ErrResultType, name, rv.Type(), t)
	}
}
