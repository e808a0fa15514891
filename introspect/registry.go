package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"
)

// ErrDuplicateClass is returned by Define when a name or type is registered
// twice.
var ErrDuplicateClass = errors.New("class already defined")

// Registry is a Loader over Go types registered under runtime class names.
//
// Instance fields are the fields of the struct, exported or not. Instance
// methods are the exported methods of the pointer type and are dispatched on
// the receiver passed at invocation time, so a method overridden by an
// embedding type runs the override. Go has no static members or
// constructors; they are registered with the StaticField, StaticMethod and
// NewFunc options.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*class
	byType map[reflect.Type]*class
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*class),
		byType: make(map[reflect.Type]*class),
	}
}

// ClassOption configures a class in Define.
type ClassOption func(*class) error

// StaticField registers the variable ptr points to as a static field.
func StaticField(name string, ptr any) ClassOption {
	return func(c *class) error {
		v := reflect.ValueOf(ptr)
		if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
			return fmt.Errorf("static field %s: want a non-nil pointer, got %T", name, ptr)
		}

		if _, dup := c.statics[name]; dup {
			return fmt.Errorf("static field %s: defined twice", name)
		}

		c.statics[name] = v.Elem()

		return nil
	}
}

// StaticMethod registers fn as a static method.
func StaticMethod(name string, fn any) ClassOption {
	return func(c *class) error {
		v := reflect.ValueOf(fn)
		if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
			return fmt.Errorf("static method %s: want a func, got %T", name, fn)
		}

		c.staticFuncs = append(c.staticFuncs, namedFunc{name: name, fn: v})

		return nil
	}
}

// NewFunc registers fn as a constructor. fn returns the class type or a
// pointer to it, optionally followed by an error.
func NewFunc(fn any) ClassOption {
	return func(c *class) error {
		v := reflect.ValueOf(fn)
		if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
			return fmt.Errorf("constructor: want a func, got %T", fn)
		}

		ft := v.Type()
		out := ft.NumOut()
		if out == 2 && ft.Out(1) == errorType {
			out = 1
		}

		if out != 1 || (ft.Out(0) != c.typ && ft.Out(0) != reflect.PointerTo(c.typ)) {
			return fmt.Errorf("constructor: %s does not create %s", ft, c.typ)
		}

		c.constructors = append(c.constructors, v)

		return nil
	}
}

// Extends sets the superclass explicitly. Without it the first embedded
// field of a registered type is the superclass.
func Extends(name string) ClassOption {
	return func(c *class) error {
		c.super = name
		return nil
	}
}

// Define registers t under the runtime class name name. Pointer types are
// registered as their element type.
func (r *Registry) Define(name string, t reflect.Type, opts ...ClassOption) error {
	if name == "" || t == nil {
		return errors.New("define: empty name or nil type")
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c := &class{
		registry: r,
		name:     name,
		typ:      t,
		statics:  make(map[string]reflect.Value),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return fmt.Errorf("define %s: %w", name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, name)
	}

	if prev, ok := r.byType[t]; ok {
		return fmt.Errorf("%w: %s is registered as %s", ErrDuplicateClass, t, prev.name)
	}

	r.byName[name] = c
	r.byType[t] = c

	return nil
}

// MustDefine is like Define but panics on error. It is meant for package
// initialization.
func (r *Registry) MustDefine(name string, t reflect.Type, opts ...ClassOption) {
	if err := r.Define(name, t, opts...); err != nil {
		panic(err)
	}
}

// Load returns the class registered under name.
func (r *Registry) Load(name string) (Class, error) {
	r.mu.RLock()
	c, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrClassNotFound, name)
	}

	return c, nil
}

// Names returns the registered class names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// TypeName is like the package level TypeName but names registered types by
// their runtime class name.
func (r *Registry) TypeName(t reflect.Type) string {
	return typeName(t, r.registeredName)
}

func (r *Registry) registeredName(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byType[t]; ok {
		return c.name, true
	}

	return "", false
}

func (r *Registry) typeNames(ts []reflect.Type) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = r.TypeName(t)
	}

	return names
}

type namedFunc struct {
	name string
	fn   reflect.Value
}

type class struct {
	registry     *Registry
	name         string
	typ          reflect.Type
	super        string
	statics      map[string]reflect.Value
	staticFuncs  []namedFunc
	constructors []reflect.Value
}

func (c *class) Name() string {
	return c.name
}

func (c *class) String() string {
	return c.name
}

func (c *class) Super() (Class, bool) {
	if c.super != "" {
		super, err := c.registry.Load(c.super)
		if err != nil {
			return nil, false
		}

		return super, true
	}

	if c.typ.Kind() != reflect.Struct {
		return nil, false
	}

	for i := range c.typ.NumField() {
		f := c.typ.Field(i)
		if !f.Anonymous {
			continue
		}

		t := f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}

		if name, ok := c.registry.registeredName(t); ok {
			super, err := c.registry.Load(name)
			if err == nil {
				return super, true
			}
		}
	}

	return nil, false
}

func (c *class) Field(name string) (Field, bool) {
	if v, ok := c.statics[name]; ok {
		return &staticField{owner: c, name: name, value: v}, true
	}

	if c.typ.Kind() != reflect.Struct {
		return nil, false
	}

	// Only fields declared directly on the struct; promoted fields belong to
	// the embedded class.
	for i := range c.typ.NumField() {
		f := c.typ.Field(i)
		if f.Name == name {
			return &instanceField{owner: c, field: f}, true
		}
	}

	return nil, false
}

func (c *class) Method(name string, params []string) (Method, bool) {
	for _, sf := range c.staticFuncs {
		if sf.name == name && slices.Equal(c.registry.typeNames(funcParams(sf.fn.Type(), 0)), params) {
			return &staticMethod{owner: c, name: name, fn: sf.fn}, true
		}
	}

	m, ok := reflect.PointerTo(c.typ).MethodByName(name)
	if !ok {
		return nil, false
	}

	// Skip the receiver.
	if !slices.Equal(c.registry.typeNames(funcParams(m.Type, 1)), params) {
		return nil, false
	}

	return &instanceMethod{owner: c, method: m}, true
}

func (c *class) Constructor(params []string) (Constructor, bool) {
	for _, fn := range c.constructors {
		if slices.Equal(c.registry.typeNames(funcParams(fn.Type(), 0)), params) {
			return &constructor{owner: c, fn: fn}, true
		}
	}

	return nil, false
}

func (c *class) FieldNames() []string {
	var names []string

	if c.typ.Kind() == reflect.Struct {
		for i := range c.typ.NumField() {
			names = append(names, c.typ.Field(i).Name)
		}
	}

	for name := range c.statics {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (c *class) MethodNames() []string {
	pt := reflect.PointerTo(c.typ)

	names := make([]string, 0, pt.NumMethod()+len(c.staticFuncs))
	for i := range pt.NumMethod() {
		names = append(names, pt.Method(i).Name)
	}

	for _, sf := range c.staticFuncs {
		names = append(names, sf.name)
	}

	sort.Strings(names)

	return slices.Compact(names)
}

func funcParams(ft reflect.Type, skip int) []reflect.Type {
	params := make([]reflect.Type, 0, ft.NumIn()-skip)
	for i := skip; i < ft.NumIn(); i++ {
		params = append(params, ft.In(i))
	}

	return params
}
