package proxy

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"reflection-remapper/internal/match"
	"reflection-remapper/introspect"
	"reflection-remapper/remap"
)

// Config configures a Factory.
type Config struct {
	// Logger receives debug logs of binding. Nil discards them.
	Logger *slog.Logger
	// VerifyHierarchy requires the target of every ancestor description to
	// be a superclass of (or equal to) the target of the bound one.
	VerifyHierarchy bool
	// Suggestions is the number of similar member names listed in missing
	// member errors. Zero disables suggestions.
	Suggestions int
}

// DefaultConfig returns the default factory configuration.
func DefaultConfig() Config {
	return Config{
		VerifyHierarchy: true,
		Suggestions:     3,
	}
}

// Factory binds descriptions to runtime classes. A Factory is safe for
// concurrent use; every Bind produces an independent Object.
type Factory struct {
	remapper remap.Remapper
	loader   introspect.Loader
	config   Config
	log      *slog.Logger

	linearizations sync.Map // *Description -> []*Description
}

// NewFactory creates a Factory resolving declared names through remapper and
// loading runtime classes from loader.
func NewFactory(remapper remap.Remapper, loader introspect.Loader, config Config) *Factory {
	log := config.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Factory{
		remapper: remapper,
		loader:   loader,
		config:   config,
		log:      log,
	}
}

// Linearize returns d followed by its ancestors in precedence order, most
// specific first. The result must not be modified.
func (f *Factory) Linearize(d *Description) ([]*Description, error) {
	if cached, ok := f.linearizations.Load(d); ok {
		return cached.([]*Description), nil
	}

	l, err := linearize(d)
	if err != nil {
		return nil, err
	}

	actual, _ := f.linearizations.LoadOrStore(d, l)

	return actual.([]*Description), nil
}

// Bind resolves every declaration of d and its ancestors against the target
// class and returns the bound object. Any failure aborts binding with a
// *BindError naming the offending declaration.
func (f *Factory) Bind(d *Description) (*Object, error) {
	if d == nil {
		return nil, errors.New("bind: nil description")
	}

	mro, err := f.Linearize(d)
	if err != nil {
		return nil, &BindError{Description: d.Name, Err: err}
	}

	b := &binder{factory: f, targets: make(map[*Description]introspect.Class)}

	target, err := b.target(d)
	if err != nil {
		return nil, &BindError{Description: d.Name, Err: err}
	}

	f.log.Debug("binding description",
		"description", d.Name, "target", target.Name(), "linearization", descNames(mro))

	if f.config.VerifyHierarchy {
		if err := b.verifyHierarchy(d, target, mro[1:]); err != nil {
			return nil, &BindError{Description: d.Name, Err: err}
		}
	}

	winners, cfgErr := resolveDecls(mro)
	if cfgErr != nil {
		return nil, &BindError{Description: d.Name, Decl: cfgErr.Decl, Err: cfgErr}
	}

	bindings := make(map[string]*binding, len(winners))

	for _, w := range winners {
		bound, err := b.bind(w.owner, w.decl)
		if err != nil {
			return nil, &BindError{Description: d.Name, Decl: w.decl.Name, Err: err}
		}

		bindings[w.decl.Name] = bound
	}

	obj := &Object{
		id:       uuid.New(),
		desc:     d,
		target:   target,
		factory:  f,
		bindings: bindings,
	}

	f.log.Debug("bound description",
		"description", d.Name, "target", target.Name(), "declarations", len(bindings), "id", obj.id)

	return obj, nil
}

// declared is a declaration together with the description declaring it.
type declared struct {
	owner *Description
	decl  *Decl
}

// resolveDecls picks, for every declaration name in mro, the most specific
// declaration. Every conflict is reported before anything is resolved
// against the target.
func resolveDecls(mro []*Description) ([]declared, *ConfigurationError) {
	var winners []declared

	byName := make(map[string]declared)

	for _, desc := range mro {
		seen := make(map[string]bool, len(desc.Decls))

		for i := range desc.Decls {
			decl := &desc.Decls[i]

			if decl.Name == "" {
				return nil, configErr(desc, "", "declaration %d has no name", i)
			}

			if seen[decl.Name] {
				return nil, configErr(desc, decl.Name, "declared twice")
			}

			seen[decl.Name] = true

			if prev, ok := byName[decl.Name]; ok {
				if !prev.decl.sameSignature(decl) {
					return nil, configErr(prev.owner, decl.Name,
						"redeclares %s.%s (%s) with parameters (%s)",
						desc.Name, decl.Name, paramList(decl.Params), paramList(prev.decl.Params))
				}

				continue
			}

			w := declared{owner: desc, decl: decl}
			byName[decl.Name] = w
			winners = append(winners, w)
		}
	}

	return winners, nil
}

// binding is one entry of an object's dispatch table.
type binding struct {
	kind   Kind
	decl   *Decl
	owner  *Description
	arity  int
	field  introspect.Field
	method introspect.Method
	ctor   introspect.Constructor
}

// binder holds the state of one Bind call.
type binder struct {
	factory *Factory
	targets map[*Description]introspect.Class
}

func (b *binder) target(d *Description) (introspect.Class, error) {
	if c, ok := b.targets[d]; ok {
		return c, nil
	}

	var c introspect.Class

	switch {
	case d.Target.Runtime != nil:
		c = d.Target.Runtime
	case d.Target.Class != "":
		name := b.factory.remapper.RemapClassOrArray(d.Target.Class)

		loaded, err := b.factory.loader.Load(name)
		if err != nil {
			return nil, fmt.Errorf("target of %s: %w", d.Name, err)
		}

		c = loaded
	default:
		return nil, configErr(d, "", "target has neither a class name nor a runtime class")
	}

	b.targets[d] = c

	return c, nil
}

func (b *binder) verifyHierarchy(d *Description, target introspect.Class, ancestors []*Description) error {
	for _, a := range ancestors {
		at, err := b.target(a)
		if err != nil {
			return err
		}

		if !introspect.IsSubclass(target, at) {
			return configErr(d, "", "invalid hierarchy: target %s does not extend %s, the target of %s",
				target.Name(), at.Name(), a.Name)
		}
	}

	return nil
}

func (b *binder) bind(owner *Description, decl *Decl) (bound *binding, err error) {
	kind := decl.kind()
	bound = &binding{kind: kind, decl: decl, owner: owner, arity: len(decl.Params)}

	switch kind {
	case KindDefault:
		if decl.Default == nil {
			return nil, configErr(owner, decl.Name, "default behavior has no implementation")
		}

		// Bound on first invocation.
		return bound, nil

	case KindNoop:
		return bound, nil

	case KindConstructor:
		err = b.bindConstructor(owner, decl, bound)
	case KindGetter, KindSetter:
		err = b.bindField(owner, decl, bound)
	case KindMethod:
		err = b.bindMethod(owner, decl, bound)
	default:
		err = configErr(owner, decl.Name, "unknown declaration kind %s", kind)
	}

	if err != nil {
		return nil, err
	}

	return bound, nil
}

func (b *binder) bindConstructor(owner *Description, decl *Decl, bound *binding) error {
	params, err := b.resolveParams(owner, decl, decl.Params)
	if err != nil {
		return err
	}

	target, err := b.target(owner)
	if err != nil {
		return err
	}

	ctor, ok := target.Constructor(params)
	if !ok {
		return &MissingConstructorError{Class: target.Name(), Params: params}
	}

	bound.ctor = ctor
	b.logBound(owner, decl, target, "")

	return nil
}

func (b *binder) bindField(owner *Description, decl *Decl, bound *binding) error {
	want := 0
	if decl.Kind == KindSetter {
		want++
	}

	if !decl.Static {
		want++
	}

	if len(decl.Params) != want {
		return configErr(owner, decl.Name, "unexpected amount of parameters, got %d while expecting %d for a %s %s",
			len(decl.Params), want, staticWord(decl.Static), decl.Kind)
	}

	target, err := b.target(owner)
	if err != nil {
		return err
	}

	declared := decl.member()
	runtime := b.factory.remapper.RemapField(target.Name(), declared)

	field, ok := target.Field(runtime)
	if !ok {
		return &MissingFieldError{
			Class:       target.Name(),
			Field:       declared,
			Runtime:     runtime,
			Static:      decl.Static,
			Suggestions: b.suggest(runtime, target.FieldNames()),
		}
	}

	if field.Static() != decl.Static {
		return configErr(owner, decl.Name, "field %s of %s is %s but the declaration is %s",
			runtime, target.Name(), staticWord(field.Static()), staticWord(decl.Static))
	}

	bound.field = field
	b.logBound(owner, decl, target, runtime)

	return nil
}

func (b *binder) bindMethod(owner *Description, decl *Decl, bound *binding) error {
	params := decl.Params
	if !decl.Static {
		if len(params) == 0 {
			return configErr(owner, decl.Name, "instance method invokers need a receiver parameter")
		}

		params = params[1:]
	}

	resolved, err := b.resolveParams(owner, decl, params)
	if err != nil {
		return err
	}

	target, err := b.target(owner)
	if err != nil {
		return err
	}

	declared := decl.member()
	runtime := b.factory.remapper.RemapMethod(target.Name(), declared, resolved...)

	method, ok := target.Method(runtime, resolved)
	if !ok {
		return &MissingMethodError{
			Class:       target.Name(),
			Method:      declared,
			Runtime:     runtime,
			Params:      resolved,
			Static:      decl.Static,
			Suggestions: b.suggest(runtime, target.MethodNames()),
		}
	}

	if method.Static() != decl.Static {
		return configErr(owner, decl.Name, "method %s of %s is %s but the declaration is %s",
			runtime, target.Name(), staticWord(method.Static()), staticWord(decl.Static))
	}

	bound.method = method
	b.logBound(owner, decl, target, runtime)

	return nil
}

// resolveParams returns the runtime type names of params.
func (b *binder) resolveParams(owner *Description, decl *Decl, params []Param) ([]string, error) {
	resolved := make([]string, 0, len(params))

	for i, p := range params {
		switch p.kind {
		case paramType:
			if p.name == "" {
				return nil, configErr(owner, decl.Name, "parameter %d has no type", i)
			}

			resolved = append(resolved, p.name)

		case paramClass:
			if p.name == "" {
				return nil, configErr(owner, decl.Name, "parameter %d has an empty class name", i)
			}

			resolved = append(resolved, b.factory.remapper.RemapClassOrArray(p.name))

		case paramProxy:
			if p.proxy == nil {
				return nil, configErr(owner, decl.Name, "parameter %d refers to a nil description", i)
			}

			c, err := b.target(p.proxy)
			if err != nil {
				return nil, err
			}

			resolved = append(resolved, c.Name())

		case paramReceiver:
			return nil, configErr(owner, decl.Name, "receiver placeholder at parameter %d", i)
		}
	}

	return resolved, nil
}

func (b *binder) suggest(name string, candidates []string) []string {
	if b.factory.config.Suggestions <= 0 {
		return nil
	}

	return match.Closest(name, candidates, b.factory.config.Suggestions)
}

func (b *binder) logBound(owner *Description, decl *Decl, target introspect.Class, runtime string) {
	b.factory.log.Debug("bound declaration",
		"description", owner.Name, "decl", decl.Name, "kind", decl.Kind,
		"target", target.Name(), "member", runtime, "static", decl.Static)
}

func staticWord(static bool) string {
	if static {
		return "static"
	}

	return "instance"
}

func paramList(params []Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.String()
	}

	return strings.Join(names, ", ")
}

func descNames(ds []*Description) []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}

	return names
}
