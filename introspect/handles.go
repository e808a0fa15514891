package introspect

import (
	"fmt"
	"reflect"
	"unsafe"
)

var errorType = reflect.TypeFor[error]()

type staticField struct {
	owner *class
	name  string
	value reflect.Value
}

func (f *staticField) Name() string { return f.name }

func (f *staticField) Type() string { return f.owner.registry.TypeName(f.value.Type()) }

func (f *staticField) Static() bool { return true }

func (f *staticField) Get(any) (any, error) {
	return f.value.Interface(), nil
}

func (f *staticField) Set(_ any, value any) error {
	v, err := convertArg(value, f.value.Type())
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", f.owner.name, f.name, err)
	}

	f.value.Set(v)

	return nil
}

type instanceField struct {
	owner *class
	field reflect.StructField
}

func (f *instanceField) Name() string { return f.field.Name }

func (f *instanceField) Type() string { return f.owner.registry.TypeName(f.field.Type) }

func (f *instanceField) Static() bool { return false }

func (f *instanceField) Get(recv any) (any, error) {
	v, err := f.locate(recv, false)
	if err != nil {
		return nil, err
	}

	return v.Interface(), nil
}

func (f *instanceField) Set(recv any, value any) error {
	v, err := f.locate(recv, true)
	if err != nil {
		return err
	}

	arg, err := convertArg(value, f.field.Type)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", f.owner.name, f.field.Name, err)
	}

	v.Set(arg)

	return nil
}

// locate returns a settable value of the field inside recv. recv is either
// the owner type or a type embedding it. Reads from a non-pointer receiver
// work on a copy.
func (f *instanceField) locate(recv any, write bool) (reflect.Value, error) {
	v := reflect.ValueOf(recv)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return reflect.Value{}, fmt.Errorf("%w: nil receiver for %s.%s", ErrReceiver, f.owner.name, f.field.Name)
	}

	if v.Kind() != reflect.Pointer {
		if write {
			return reflect.Value{}, fmt.Errorf("%w: %s.%s needs a pointer receiver to be set, got %s",
				ErrReceiver, f.owner.name, f.field.Name, v.Type())
		}

		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	owner, ok := findEmbedded(reflect.Indirect(v), f.owner.typ)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s has no %s", ErrReceiver, v.Type(), f.owner.name)
	}

	fv := owner.FieldByIndex(f.field.Index)

	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}

// findEmbedded finds the value of type t in v or, breadth first, in the
// structs v embeds. v must be addressable.
func findEmbedded(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	queue := []reflect.Value{v}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.Type() == t {
			return cur, true
		}

		if cur.Kind() != reflect.Struct {
			continue
		}

		for i := range cur.NumField() {
			if !cur.Type().Field(i).Anonymous {
				continue
			}

			fv := cur.Field(i)
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}

				fv = fv.Elem()
			}

			queue = append(queue, fv)
		}
	}

	return reflect.Value{}, false
}

type staticMethod struct {
	owner *class
	name  string
	fn    reflect.Value
}

func (m *staticMethod) Name() string { return m.name }

func (m *staticMethod) Params() []string {
	return m.owner.registry.typeNames(funcParams(m.fn.Type(), 0))
}

func (m *staticMethod) Static() bool { return true }

func (m *staticMethod) Invoke(_ any, args ...any) (any, error) {
	return call(m.owner.name+"."+m.name, m.fn, args)
}

type instanceMethod struct {
	owner  *class
	method reflect.Method
}

func (m *instanceMethod) Name() string { return m.method.Name }

func (m *instanceMethod) Params() []string {
	return m.owner.registry.typeNames(funcParams(m.method.Type, 1))
}

func (m *instanceMethod) Static() bool { return false }

// Invoke looks the method up on recv so that overrides of embedding types
// are honored. recv must be the owner type or embed it.
func (m *instanceMethod) Invoke(recv any, args ...any) (any, error) {
	name := m.owner.name + "." + m.method.Name

	v := reflect.ValueOf(recv)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, fmt.Errorf("%w: nil receiver for %s", ErrReceiver, name)
	}

	if _, ok := findEmbedded(reflect.Indirect(v), m.owner.typ); !ok {
		return nil, fmt.Errorf("%w: %s has no %s", ErrReceiver, v.Type(), m.owner.name)
	}

	fn := v.MethodByName(m.method.Name)
	if !fn.IsValid() && v.Kind() != reflect.Pointer {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		fn = ptr.MethodByName(m.method.Name)
	}

	if !fn.IsValid() {
		return nil, fmt.Errorf("%w: %s has no method %s", ErrReceiver, v.Type(), m.method.Name)
	}

	return call(name, fn, args)
}

type constructor struct {
	owner *class
	fn    reflect.Value
}

func (c *constructor) Params() []string {
	return c.owner.registry.typeNames(funcParams(c.fn.Type(), 0))
}

func (c *constructor) New(args ...any) (any, error) {
	return call(c.owner.name+".<new>", c.fn, args)
}

// call converts args to fn's parameter types and calls it.
func call(name string, fn reflect.Value, args []any) (any, error) {
	ft := fn.Type()

	if ft.IsVariadic() {
		if len(args) < ft.NumIn()-1 {
			return nil, fmt.Errorf("%w: %s takes at least %d arguments, got %d", ErrArgument, name, ft.NumIn()-1, len(args))
		}
	} else if len(args) != ft.NumIn() {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgument, name, ft.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		pt := paramType(ft, i)

		v, err := convertArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%s argument %d: %w", name, i, err)
		}

		in[i] = v
	}

	return results(fn.Call(in))
}

func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}

	return ft.In(i)
}

func results(out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}

		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}

		return vals, nil
	}
}

// convertArg converts arg to t. nil becomes the zero value; values are
// converted only between types of the same kind or between numeric types.
func convertArg(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(arg)

	switch {
	case v.Type().AssignableTo(t):
		return v, nil
	case (v.Kind() == t.Kind() || numeric(v.Kind()) && numeric(t.Kind())) && v.Type().ConvertibleTo(t):
		return v.Convert(t), nil
	case t.Kind() == reflect.Pointer && v.Type().AssignableTo(t.Elem()):
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)

		return ptr, nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrArgument, v.Type(), t)
	}
}

func numeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
