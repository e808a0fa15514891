package mappings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrEmptyName is returned when a class, field or method entry lacks a name.
var ErrEmptyName = errors.New("empty name in mapping entry")

// Namespace identifies one side of the table.
type Namespace int

const (
	NamespaceDeclared Namespace = iota
	NamespaceRuntime
)

// String returns a human-readable namespace name.
func (n Namespace) String() string {
	switch n {
	case NamespaceDeclared:
		return "declared"
	case NamespaceRuntime:
		return "runtime"
	default:
		return "unknown"
	}
}

// DuplicateMappingError reports a name that maps to more than one entry.
type DuplicateMappingError struct {
	Namespace Namespace
	Kind      RecordKind
	Owner     string // owning class (declared name) for field and method keys
	Name      string
}

func (e *DuplicateMappingError) Error() string {
	if e.Owner != "" {
		return fmt.Sprintf("duplicate %s mapping for %s %q in class %s", e.Namespace, e.Kind, e.Name, e.Owner)
	}

	return fmt.Sprintf("duplicate %s mapping for %s %q", e.Namespace, e.Kind, e.Name)
}

// ClassMapping is the table entry for one class.
type ClassMapping struct {
	Runtime  string            // fully qualified runtime name
	Declared string            // fully qualified declared name
	Fields   map[string]string // declared field name -> runtime field name
	Methods  map[string]string // MethodKey(declared name, runtime params) -> runtime name
}

// MethodKey builds the overload-disambiguating key of a method.
func MethodKey(declaredName, runtimeParams string) string {
	return declaredName + runtimeParams
}

// Table is an immutable bidirectional class index.
type Table struct {
	byRuntime  map[string]*ClassMapping
	byDeclared map[string]*ClassMapping
}

// Build creates a Table from class entries. It fails with a
// *DuplicateMappingError when two entries share a runtime or declared name.
// The entries are copied; later changes to them do not affect the table.
func Build(classes []ClassMapping) (*Table, error) {
	t := &Table{
		byRuntime:  make(map[string]*ClassMapping, len(classes)),
		byDeclared: make(map[string]*ClassMapping, len(classes)),
	}

	for i := range classes {
		c := &classes[i]
		if c.Runtime == "" || c.Declared == "" {
			return nil, fmt.Errorf("%w: class %q/%q", ErrEmptyName, c.Declared, c.Runtime)
		}

		if _, ok := t.byRuntime[c.Runtime]; ok {
			return nil, &DuplicateMappingError{Namespace: NamespaceRuntime, Kind: RecordClass, Name: c.Runtime}
		}

		if _, ok := t.byDeclared[c.Declared]; ok {
			return nil, &DuplicateMappingError{Namespace: NamespaceDeclared, Kind: RecordClass, Name: c.Declared}
		}

		entry := &ClassMapping{
			Runtime:  c.Runtime,
			Declared: c.Declared,
			Fields:   cloneOrEmpty(c.Fields),
			Methods:  cloneOrEmpty(c.Methods),
		}

		t.byRuntime[entry.Runtime] = entry
		t.byDeclared[entry.Declared] = entry
	}

	return t, nil
}

// Len returns the number of classes in the table.
func (t *Table) Len() int {
	return len(t.byRuntime)
}

// ClassRuntimeName returns the runtime name of a declared class name, or the
// name unchanged when the class is unknown.
func (t *Table) ClassRuntimeName(declared string) string {
	if c, ok := t.byDeclared[declared]; ok {
		return c.Runtime
	}

	return declared
}

// ClassDeclaredName returns the declared name of a runtime class name, or the
// name unchanged when the class is unknown.
func (t *Table) ClassDeclaredName(runtime string) string {
	if c, ok := t.byRuntime[runtime]; ok {
		return c.Declared
	}

	return runtime
}

// FieldRuntimeName returns the runtime name of a field declared on the class
// whose runtime name is owner. Unknown owners and fields pass through.
func (t *Table) FieldRuntimeName(owner, declaredField string) string {
	c, ok := t.byRuntime[owner]
	if !ok {
		return declaredField
	}

	if name, ok := c.Fields[declaredField]; ok {
		return name
	}

	return declaredField
}

// MethodRuntimeName returns the runtime name of a method declared on the
// class whose runtime name is owner. runtimeParams is the parameter
// descriptor computed over runtime parameter type names.
func (t *Table) MethodRuntimeName(owner, declaredMethod, runtimeParams string) string {
	c, ok := t.byRuntime[owner]
	if !ok {
		return declaredMethod
	}

	if name, ok := c.Methods[MethodKey(declaredMethod, runtimeParams)]; ok {
		return name
	}

	return declaredMethod
}

// Class returns a copy of the entry for a runtime class name.
func (t *Table) Class(runtime string) (ClassMapping, bool) {
	c, ok := t.byRuntime[runtime]
	if !ok {
		return ClassMapping{}, false
	}

	return c.clone(), true
}

// Classes returns copies of all entries sorted by declared name.
func (t *Table) Classes() []ClassMapping {
	out := make([]ClassMapping, 0, len(t.byDeclared))
	for _, c := range t.byDeclared {
		out = append(out, c.clone())
	}

	slices.SortFunc(out, func(a, b ClassMapping) int {
		return strings.Compare(a.Declared, b.Declared)
	})

	return out
}

func (c *ClassMapping) clone() ClassMapping {
	return ClassMapping{
		Runtime:  c.Runtime,
		Declared: c.Declared,
		Fields:   maps.Clone(c.Fields),
		Methods:  maps.Clone(c.Methods),
	}
}

func cloneOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}

	return maps.Clone(m)
}
