package proxy

import (
	"slices"

	"reflection-remapper/introspect"
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind classifies a declaration.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindMethod      // method
	KindGetter      // getter
	KindSetter      // setter
	KindConstructor // constructor
	KindDefault     // default
	KindNoop        // noop
)

// Resolvable reports whether declarations of kind k are bound against the
// target class.
func (k Kind) Resolvable() bool {
	switch k {
	case KindMethod, KindGetter, KindSetter, KindConstructor:
		return true
	default:
		return false
	}
}

type paramKind int

const (
	paramType paramKind = iota
	paramClass
	paramProxy
	paramReceiver
)

// Param is a declared parameter. It names the parameter's type in one of
// several ways; see Arg, ArgClass, ArgProxy and Receiver.
type Param struct {
	kind  paramKind
	name  string
	proxy *Description
}

// Arg is a parameter whose type is given by its runtime type name, used
// verbatim.
func Arg(typeName string) Param {
	return Param{kind: paramType, name: typeName}
}

// ArgClass is a parameter whose type is given by its declared class-or-array
// name. The name is remapped before lookup.
func ArgClass(declared string) Param {
	return Param{kind: paramClass, name: declared}
}

// ArgProxy is a parameter whose type is the target class of d.
func ArgProxy(d *Description) Param {
	return Param{kind: paramProxy, proxy: d}
}

// Receiver is the receiver placeholder of instance declarations. Its type is
// not part of the member lookup.
func Receiver() Param {
	return Param{kind: paramReceiver}
}

// String returns the parameter as written in description files.
func (p Param) String() string {
	switch p.kind {
	case paramClass:
		return "class:" + p.name
	case paramProxy:
		if p.proxy == nil {
			return "proxy:"
		}

		return "proxy:" + p.proxy.Name
	case paramReceiver:
		return "receiver"
	default:
		return p.name
	}
}

func (p Param) equal(o Param) bool {
	return p.kind == o.kind && p.name == o.name && p.proxy == o.proxy
}

// DefaultFunc implements a default behavior.
type DefaultFunc func(c *Call) (any, error)

// Decl declares one member of a description. Name identifies the
// declaration and is what callers invoke; Member is the declared member
// name looked up on the target and defaults to Name.
//
// For instance declarations the first parameter is the receiver. Instance
// getters therefore take one parameter and instance setters two.
type Decl struct {
	Name    string
	Kind    Kind
	Member  string
	Params  []Param
	Returns string
	Static  bool
	Default DefaultFunc
}

// Method declares a method invoker.
func Method(name string, params ...Param) Decl {
	return Decl{Name: name, Kind: KindMethod, Params: params}
}

// Getter declares a field getter.
func Getter(name string, params ...Param) Decl {
	return Decl{Name: name, Kind: KindGetter, Params: params}
}

// Setter declares a field setter.
func Setter(name string, params ...Param) Decl {
	return Decl{Name: name, Kind: KindSetter, Params: params}
}

// Constructor declares a constructor invoker.
func Constructor(name string, params ...Param) Decl {
	return Decl{Name: name, Kind: KindConstructor, Params: params, Static: true}
}

// Default declares a default behavior implemented by fn.
func Default(name string, fn DefaultFunc, params ...Param) Decl {
	return Decl{Name: name, Kind: KindDefault, Params: params, Default: fn}
}

// AsStatic marks the declaration static.
func (d Decl) AsStatic() Decl {
	d.Static = true
	return d
}

// Named overrides the declared member name.
func (d Decl) Named(member string) Decl {
	d.Member = member
	return d
}

// Returning records the result type name.
func (d Decl) Returning(typeName string) Decl {
	d.Returns = typeName
	return d
}

func (d *Decl) member() string {
	if d.Member != "" {
		return d.Member
	}

	return d.Name
}

// kind classifies d, detecting the structural no-ops Equal(any) boolean,
// Hash() int and String() builtin.string.
func (d *Decl) kind() Kind {
	if d.Kind != KindMethod || d.Static || d.Member != "" {
		return d.Kind
	}

	switch {
	case d.Name == "Equal" && d.Returns == "boolean" &&
		len(d.Params) == 1 && d.Params[0].equal(Arg(introspect.PredeclaredName("any"))):
		return KindNoop
	case d.Name == "Hash" && d.Returns == "int" && len(d.Params) == 0:
		return KindNoop
	case d.Name == "String" && d.Returns == introspect.PredeclaredName("string") && len(d.Params) == 0:
		return KindNoop
	default:
		return d.Kind
	}
}

func (d *Decl) sameSignature(o *Decl) bool {
	return slices.EqualFunc(d.Params, o.Params, Param.equal)
}

// Target names the runtime class a description binds to.
type Target struct {
	// Class is the declared class name; it is remapped before loading.
	Class string
	// Runtime, when set, is used as is.
	Runtime introspect.Class
}

// TargetName targets the class with the given declared name.
func TargetName(declared string) Target {
	return Target{Class: declared}
}

// TargetClass targets an already loaded runtime class.
func TargetClass(c introspect.Class) Target {
	return Target{Runtime: c}
}

func (t Target) String() string {
	if t.Runtime != nil {
		return t.Runtime.Name()
	}

	return t.Class
}

// Description is a declarative description of a target class's surface.
// Descriptions must not be modified once bound.
type Description struct {
	Name    string
	Target  Target
	Extends []*Description
	Decls   []Decl
}

// Describe creates a Description.
func Describe(name string, target Target, decls ...Decl) *Description {
	return &Description{Name: name, Target: target, Decls: decls}
}

// Extending adds parents to d and returns d.
func (d *Description) Extending(parents ...*Description) *Description {
	d.Extends = append(d.Extends, parents...)
	return d
}

// Decl returns the declaration named name declared directly on d.
func (d *Description) Decl(name string) (*Decl, bool) {
	for i := range d.Decls {
		if d.Decls[i].Name == name {
			return &d.Decls[i], true
		}
	}

	return nil, false
}

func (d *Description) String() string {
	return d.Name
}
