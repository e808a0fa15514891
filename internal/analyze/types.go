package analyze

import (
	"fmt"
	"sort"

	"reflection-remapper/introspect"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "reflection-remapper/internal/analyze/testdata/game"
	Name    string // e.g., "Level"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// ClassInfo describes a named struct type as a class.
type ClassInfo struct {
	ID           TypeID       // Go identity of the type
	Name         string       // class name, see TypeGraph.Load
	Fields       []FieldInfo  // direct fields followed by static fields
	Methods      []MethodInfo // exported methods of *T, promoted ones included, then static funcs
	Constructors []MethodInfo // New<Type> funcs
	Embedded     []string     // class names of embedded struct fields, in declaration order
}

// FieldInfo describes a field.
type FieldInfo struct {
	Name     string // Go field or variable name
	Type     string // type name
	Exported bool
	Embedded bool
	Static   bool // package level variable
	Index    int  // field index in the struct, -1 for static fields
}

// MethodInfo describes a method, a static func or a constructor.
type MethodInfo struct {
	Name     string
	Params   []string // parameter type names, receiver excluded
	Results  []string // result type names
	Static   bool
	Promoted bool // reached through an embedded field
}

// TypeGraph holds the classes of loaded packages. It implements
// introspect.Loader.
type TypeGraph struct {
	// Classes maps class names to classes.
	Classes map[string]*ClassInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Classes:  make(map[string]*ClassInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetClass returns the class with the given name, or nil if not found.
func (g *TypeGraph) GetClass(name string) *ClassInfo {
	return g.Classes[name]
}

// Load implements introspect.Loader.
func (g *TypeGraph) Load(name string) (introspect.Class, error) {
	info, ok := g.Classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", introspect.ErrClassNotFound, name)
	}

	return &class{info: info, graph: g}, nil
}

// Names returns the class names, sorted.
func (g *TypeGraph) Names() []string {
	names := make([]string, 0, len(g.Classes))
	for name := range g.Classes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Classes []string // class names defined in this package
}
