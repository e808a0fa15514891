package proxy

import (
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"reflection-remapper/internal/mappings"
	"reflection-remapper/introspect"
	"reflection-remapper/remap"
)

// a is the runtime shape of the declared class pkg.Foo.
type a struct {
	b int32
}

func (x *a) C(n int32) int32 { return x.b + n }

func (x *a) D(s string) string { return s + "!" }

func (x *a) E(other *a) bool { return other != nil && other.b == x.b }

type privateClass struct {
	secret string
}

func newPrivateClass(secret string) *privateClass {
	return &privateClass{secret: secret}
}

var staticField = "initial"

type level struct {
	number int32
}

func (l *level) Name() string  { return l.Level() }
func (l *level) Level() string { return "Level" }

type serverLevel struct {
	level
	number1 int32
}

func (s *serverLevel) Name() string        { return s.ServerLevel() }
func (s *serverLevel) ServerLevel() string { return "ServerLevel" }

type path struct{ elems []string }

type str struct{ value string }

func newLevel() *level { return &level{number: 50} }

func newServerLevel() *serverLevel {
	return &serverLevel{level: level{number: 50}, number1: 55}
}

func newTestRegistry(t *testing.T) *introspect.Registry {
	t.Helper()

	r := introspect.NewRegistry()
	require.NoError(t, r.Define("pkg.A", reflect.TypeFor[a]()))
	require.NoError(t, r.Define("test.PrivateClass", reflect.TypeFor[privateClass](),
		introspect.NewFunc(newPrivateClass),
		introspect.StaticField("static_field", &staticField),
	))
	require.NoError(t, r.Define("test.Level", reflect.TypeFor[level]()))
	require.NoError(t, r.Define("test.ServerLevel", reflect.TypeFor[serverLevel]()))
	require.NoError(t, r.Define("test.Path", reflect.TypeFor[path]()))
	require.NoError(t, r.Define("test.String", reflect.TypeFor[str]()))

	t.Cleanup(func() { staticField = "initial" })

	return r
}

func newTestTable(t *testing.T) *mappings.Table {
	t.Helper()

	table, err := mappings.Build([]mappings.ClassMapping{
		{
			Runtime:  "pkg.A",
			Declared: "pkg.Foo",
			Fields:   map[string]string{"bar": "b"},
			Methods: map[string]string{
				mappings.MethodKey("add", "I"):                "C",
				mappings.MethodKey("add", "Lbuiltin/string;"): "D",
				mappings.MethodKey("same", "Lpkg/A;"):         "E",
			},
		},
	})
	require.NoError(t, err)

	return table
}

func newTestFactory(t *testing.T) *Factory {
	t.Helper()

	return NewFactory(remap.New(newTestTable(t)), newTestRegistry(t), DefaultConfig())
}

// countingRemapper counts every remapper call.
type countingRemapper struct {
	remap.Remapper
	calls atomic.Int64
}

func (c *countingRemapper) RemapClass(name string) string {
	c.calls.Add(1)
	return c.Remapper.RemapClass(name)
}

func (c *countingRemapper) RemapField(owner, field string) string {
	c.calls.Add(1)
	return c.Remapper.RemapField(owner, field)
}

func (c *countingRemapper) RemapMethod(owner, method string, params ...string) string {
	c.calls.Add(1)
	return c.Remapper.RemapMethod(owner, method, params...)
}

func (c *countingRemapper) RemapClassOrArray(name string) string {
	c.calls.Add(1)
	return c.Remapper.RemapClassOrArray(name)
}

func fooProxy() *Description {
	return Describe("FooProxy", TargetName("pkg.Foo"),
		Getter("bar", Receiver()),
		Setter("setBar", Receiver(), Arg("int")).Named("bar"),
		Method("add", Receiver(), Arg("int")).Returning("int"),
		Method("addString", Receiver(), Arg("builtin.string")).Named("add"),
		Method("same", Receiver(), ArgClass("pkg.Foo")).Returning("boolean"),
	)
}

func privateClassProxy() *Description {
	return Describe("PrivateClassProxy", TargetName("test.PrivateClass"),
		Constructor("new", Arg("builtin.string")),
		Getter("secret", Receiver()),
		Getter("staticField").AsStatic().Named("static_field"),
		Setter("setStaticField", Arg("builtin.string")).AsStatic().Named("static_field"),
	)
}

func constant(v any) DefaultFunc {
	return func(*Call) (any, error) { return v, nil }
}
