package proxy

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"reflection-remapper/introspect"
)

// Object is a bound description. Invocations dispatch on the dispatch table
// built by Bind; nothing is resolved again. An Object is safe for concurrent
// use.
type Object struct {
	id       uuid.UUID
	desc     *Description
	target   introspect.Class
	factory  *Factory
	bindings map[string]*binding

	defaults sync.Map // defaultKey -> *defaultHandle
}

type defaultKey struct {
	owner *Description
	name  string
}

// defaultHandle is a default behavior bound to its place in the declaring
// description's linearization.
type defaultHandle struct {
	decl  *Decl
	owner *Description
	above []*Description
}

// Call is passed to default behaviors.
type Call struct {
	// Self is the object the behavior was invoked on.
	Self *Object
	// Args are the invocation arguments.
	Args []any

	handle *defaultHandle
}

// Name returns the name of the running declaration.
func (c *Call) Name() string {
	return c.handle.decl.Name
}

// Owner returns the description declaring the running behavior.
func (c *Call) Owner() *Description {
	return c.handle.owner
}

// Super invokes the next implementation of the running declaration in the
// declaring description's linearization.
func (c *Call) Super(args ...any) (any, error) {
	return c.Self.invokeAbove(c.handle.owner, c.handle.above, c.handle.decl.Name, args)
}

// SuperOf invokes parent's implementation of the running declaration.
// parent must be a direct parent of the declaring description.
func (c *Call) SuperOf(parent *Description, args ...any) (any, error) {
	owner := c.handle.owner

	direct := false
	for _, p := range owner.Extends {
		if p == parent {
			direct = true
			break
		}
	}

	if !direct {
		return nil, configErr(owner, c.handle.decl.Name, "%s is not a direct parent", parent)
	}

	l, err := c.Self.factory.Linearize(parent)
	if err != nil {
		return nil, err
	}

	return c.Self.invokeAbove(owner, l, c.handle.decl.Name, args)
}

// ID returns the object's unique id.
func (o *Object) ID() uuid.UUID {
	return o.id
}

// Description returns the bound description.
func (o *Object) Description() *Description {
	return o.desc
}

// Target returns the runtime class the description was bound to.
func (o *Object) Target() introspect.Class {
	return o.target
}

// Declarations returns the names of all bound declarations, sorted.
func (o *Object) Declarations() []string {
	names := make([]string, 0, len(o.bindings))
	for name := range o.bindings {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Kind returns the kind of the bound declaration name.
func (o *Object) Kind(name string) (Kind, bool) {
	b, ok := o.bindings[name]
	if !ok {
		return 0, false
	}

	return b.kind, true
}

// String summarizes the object.
func (o *Object) String() string {
	return fmt.Sprintf("proxy[description=%s, target=%s, id=%s]", o.desc.Name, o.target.Name(), o.id)
}

// Invoke invokes the declaration name. Instance declarations take the
// receiver as their first argument. Errors of the underlying member are
// returned unchanged.
func (o *Object) Invoke(name string, args ...any) (any, error) {
	b, ok := o.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no declaration %s", ErrUnknownMember, o.desc.Name, name)
	}

	if len(args) != b.arity {
		return nil, fmt.Errorf("%w: %s.%s takes %d, got %d", ErrArgCount, o.desc.Name, name, b.arity, len(args))
	}

	switch b.kind {
	case KindGetter:
		if b.decl.Static {
			return b.field.Get(nil)
		}

		return b.field.Get(args[0])

	case KindSetter:
		if b.decl.Static {
			return nil, b.field.Set(nil, args[0])
		}

		return nil, b.field.Set(args[0], args[1])

	case KindConstructor:
		return b.ctor.New(args...)

	case KindMethod:
		if b.decl.Static {
			return b.method.Invoke(nil, args...)
		}

		return b.method.Invoke(args[0], args[1:]...)

	case KindNoop:
		return o.noop(b.decl, args)

	case KindDefault:
		return o.callDefault(b.owner, b.decl, args)

	default:
		return nil, fmt.Errorf("%s.%s: unexpected kind %s", o.desc.Name, name, b.kind)
	}
}

func (o *Object) noop(decl *Decl, args []any) (any, error) {
	switch decl.Name {
	case "Equal":
		other, ok := args[0].(*Object)
		return ok && other == o, nil
	case "Hash":
		return int32(0), nil
	default:
		return o.String(), nil
	}
}

// callDefault runs the default behavior decl declared on owner, binding it
// on first use.
func (o *Object) callDefault(owner *Description, decl *Decl, args []any) (any, error) {
	key := defaultKey{owner: owner, name: decl.Name}

	h, ok := o.defaults.Load(key)
	if !ok {
		l, err := o.factory.Linearize(owner)
		if err != nil {
			return nil, err
		}

		h, _ = o.defaults.LoadOrStore(key, &defaultHandle{decl: decl, owner: owner, above: l[1:]})
	}

	handle := h.(*defaultHandle)

	return handle.decl.Default(&Call{Self: o, Args: args, handle: handle})
}

// invokeAbove runs the first implementation of name found in candidates.
// Only default behaviors can be reached this way.
func (o *Object) invokeAbove(from *Description, candidates []*Description, name string, args []any) (any, error) {
	for _, d := range candidates {
		decl, ok := d.Decl(name)
		if !ok {
			continue
		}

		if decl.kind() != KindDefault {
			return nil, configErr(from, name, "%s of %s is a %s, not a default behavior", name, d.Name, decl.kind())
		}

		if len(args) != len(decl.Params) {
			return nil, fmt.Errorf("%w: %s.%s takes %d, got %d", ErrArgCount, d.Name, name, len(decl.Params), len(args))
		}

		return o.callDefault(d, decl, args)
	}

	return nil, fmt.Errorf("%w: no implementation of %s above %s", ErrUnknownMember, name, from.Name)
}
