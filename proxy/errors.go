package proxy

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMember is returned when invoking a name the bound
	// description does not declare.
	ErrUnknownMember = errors.New("unknown declaration")

	// ErrArgCount is returned when an invocation passes the wrong number of
	// arguments.
	ErrArgCount = errors.New("wrong number of arguments")

	// ErrResultType is returned by the typed helpers when a result has an
	// unexpected type.
	ErrResultType = errors.New("unexpected result type")
)

// MissingConstructorError reports a target class without a constructor of
// the declared parameter types.
type MissingConstructorError struct {
	Class  string   // runtime class name
	Params []string // resolved parameter type names
}

func (e *MissingConstructorError) Error() string {
	return fmt.Sprintf("could not find constructor of %s with parameter types (%s)",
		e.Class, strings.Join(e.Params, ", "))
}

// MissingFieldError reports a target class without the declared field.
type MissingFieldError struct {
	Class       string // runtime class name
	Field       string // declared field name
	Runtime     string // remapped field name
	Static      bool
	Suggestions []string
}

func (e *MissingFieldError) Error() string {
	var b strings.Builder

	kind := "field"
	if e.Static {
		kind = "static field"
	}

	fmt.Fprintf(&b, "could not find %s '%s'", kind, e.Field)

	if e.Runtime != e.Field {
		fmt.Fprintf(&b, " (runtime '%s')", e.Runtime)
	}

	fmt.Fprintf(&b, " in %s", e.Class)
	writeSuggestions(&b, e.Suggestions)

	return b.String()
}

// MissingMethodError reports a target class without the declared method.
type MissingMethodError struct {
	Class       string   // runtime class name
	Method      string   // declared method name
	Runtime     string   // remapped method name
	Params      []string // resolved parameter type names
	Static      bool
	Suggestions []string
}

func (e *MissingMethodError) Error() string {
	var b strings.Builder

	kind := "method"
	if e.Static {
		kind = "static method"
	}

	fmt.Fprintf(&b, "could not find %s %s.%s(%s)", kind, e.Class, e.Method, strings.Join(e.Params, ", "))

	if e.Runtime != e.Method {
		fmt.Fprintf(&b, " (runtime '%s')", e.Runtime)
	}

	writeSuggestions(&b, e.Suggestions)

	return b.String()
}

// ConfigurationError reports a description that contradicts itself: wrong
// arity, a missing name, conflicting redeclarations or an invalid extension
// graph.
type ConfigurationError struct {
	Description string
	Decl        string // empty for description-level problems
	Reason      string
}

func (e *ConfigurationError) Error() string {
	if e.Decl == "" {
		return fmt.Sprintf("invalid description %s: %s", e.Description, e.Reason)
	}

	return fmt.Sprintf("invalid declaration %s in %s: %s", e.Decl, e.Description, e.Reason)
}

// BindError wraps any failure to bind a description. It names the
// description and, when known, the offending declaration.
type BindError struct {
	Description string
	Decl        string
	Err         error
}

func (e *BindError) Error() string {
	if e.Decl == "" {
		return fmt.Sprintf("bind %s: %v", e.Description, e.Err)
	}

	return fmt.Sprintf("bind %s.%s: %v", e.Description, e.Decl, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func configErr(d *Description, decl, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Description: d.Name, Decl: decl, Reason: fmt.Sprintf(format, args...)}
}

func writeSuggestions(b *strings.Builder, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}

	fmt.Fprintf(b, " (did you mean %s?)", strings.Join(suggestions, ", "))
}
