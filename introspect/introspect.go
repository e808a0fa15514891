// Package introspect describes the members of runtime target types by name.
//
// The binder in package proxy never touches reflect directly; it asks a
// Loader for a Class by its runtime name and looks members up on it. Registry
// is the reflect-backed Loader used at run time. A static, go/types based
// Loader lives in internal/analyze.
//
// Type names follow the class-or-array format: primitives by their short name
// ("int", "long", "boolean"), classes by their dot separated name
// ("pkg.Foo") and arrays by one '[' per dimension followed by the element
// descriptor ("[I", "[Lpkg.Foo;").
package introspect

import "errors"

var (
	// ErrClassNotFound is returned by Loader.Load for unknown class names.
	ErrClassNotFound = errors.New("class not found")

	// ErrNotInvocable is returned by handles of loaders that only describe
	// types and cannot execute them.
	ErrNotInvocable = errors.New("member is not invocable")

	// ErrReceiver is returned when an instance member is used with a receiver
	// of the wrong type.
	ErrReceiver = errors.New("invalid receiver")

	// ErrArgument is returned when an argument cannot be converted to the
	// parameter type.
	ErrArgument = errors.New("invalid argument")
)

// Loader resolves runtime class names.
type Loader interface {
	Load(name string) (Class, error)
}

// Class is a loaded runtime type.
type Class interface {
	// Name returns the runtime class name.
	Name() string
	// Super returns the direct superclass, if any.
	Super() (Class, bool)
	// Field returns the field declared on this class with the given name.
	Field(name string) (Field, bool)
	// Method returns the method with the given name whose parameter type
	// names equal params exactly.
	Method(name string, params []string) (Method, bool)
	// Constructor returns the constructor whose parameter type names equal
	// params exactly.
	Constructor(params []string) (Constructor, bool)
	// FieldNames and MethodNames list the members in a stable order.
	FieldNames() []string
	MethodNames() []string
}

// Field reads and writes one field. Static fields ignore the receiver.
type Field interface {
	Name() string
	Type() string
	Static() bool
	Get(recv any) (any, error)
	Set(recv any, value any) error
}

// Method invokes one method. Static methods ignore the receiver.
//
// Results are returned as nil (no result), the value itself (one result) or
// a []any (several results). A trailing error result is returned as the
// error.
type Method interface {
	Name() string
	Params() []string
	Static() bool
	Invoke(recv any, args ...any) (any, error)
}

// Constructor creates a new instance of its class.
type Constructor interface {
	Params() []string
	New(args ...any) (any, error)
}

// IsSubclass reports whether sub is super or one of its subclasses.
// Classes are compared by name. A superclass chain that loops back on
// itself ends at the first repeated class.
func IsSubclass(sub, super Class) bool {
	visited := make(map[string]bool)

	for c, ok := sub, true; ok; c, ok = c.Super() {
		if c.Name() == super.Name() {
			return true
		}

		if visited[c.Name()] {
			return false
		}

		visited[c.Name()] = true
	}

	return false
}
