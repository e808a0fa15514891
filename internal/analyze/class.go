package analyze

import (
	"fmt"
	"slices"

	"reflection-remapper/introspect"
)

// class exposes a ClassInfo as an introspect.Class.
type class struct {
	info  *ClassInfo
	graph *TypeGraph
}

var _ introspect.Class = (*class)(nil)

func (c *class) Name() string {
	return c.info.Name
}

// Super returns the class of the first embedded struct field that is itself
// a loaded class.
func (c *class) Super() (introspect.Class, bool) {
	for _, name := range c.info.Embedded {
		if info, ok := c.graph.Classes[name]; ok {
			return &class{info: info, graph: c.graph}, true
		}
	}

	return nil, false
}

func (c *class) Field(name string) (introspect.Field, bool) {
	// Static fields shadow struct fields of the same name.
	for _, static := range []bool{true, false} {
		for i := range c.info.Fields {
			f := &c.info.Fields[i]
			if f.Static == static && f.Name == name {
				return &field{class: c.info.Name, info: f}, true
			}
		}
	}

	return nil, false
}

func (c *class) Method(name string, params []string) (introspect.Method, bool) {
	for _, static := range []bool{true, false} {
		for i := range c.info.Methods {
			m := &c.info.Methods[i]
			if m.Static == static && m.Name == name && slices.Equal(m.Params, params) {
				return &method{class: c.info.Name, info: m}, true
			}
		}
	}

	return nil, false
}

func (c *class) Constructor(params []string) (introspect.Constructor, bool) {
	for i := range c.info.Constructors {
		m := &c.info.Constructors[i]
		if slices.Equal(m.Params, params) {
			return &constructor{class: c.info.Name, info: m}, true
		}
	}

	return nil, false
}

func (c *class) FieldNames() []string {
	names := make([]string, 0, len(c.info.Fields))
	for _, f := range c.info.Fields {
		names = append(names, f.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

func (c *class) MethodNames() []string {
	names := make([]string, 0, len(c.info.Methods))
	for _, m := range c.info.Methods {
		names = append(names, m.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

type field struct {
	class string
	info  *FieldInfo
}

func (f *field) Name() string { return f.info.Name }
func (f *field) Type() string { return f.info.Type }
func (f *field) Static() bool { return f.info.Static }

func (f *field) Get(any) (any, error) {
	return nil, notInvocable(f.class, f.info.Name)
}

func (f *field) Set(any, any) error {
	return notInvocable(f.class, f.info.Name)
}

type method struct {
	class string
	info  *MethodInfo
}

func (m *method) Name() string     { return m.info.Name }
func (m *method) Params() []string { return slices.Clone(m.info.Params) }
func (m *method) Static() bool     { return m.info.Static }

func (m *method) Invoke(any, ...any) (any, error) {
	return nil, notInvocable(m.class, m.info.Name)
}

type constructor struct {
	class string
	info  *MethodInfo
}

func (c *constructor) Params() []string { return slices.Clone(c.info.Params) }

func (c *constructor) New(...any) (any, error) {
	return nil, notInvocable(c.class, c.info.Name)
}

func notInvocable(class, member string) error {
	return fmt.Errorf("%w: %s.%s was loaded from source", introspect.ErrNotInvocable, class, member)
}
