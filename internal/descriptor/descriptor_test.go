package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"long", "J"},
		{"int", "I"},
		{"char", "C"},
		{"short", "S"},
		{"byte", "B"},
		{"double", "D"},
		{"float", "F"},
		{"boolean", "Z"},
		{"void", "V"},
		{"pkg.Foo", "Lpkg/Foo;"},
		{"builtin.string", "Lbuiltin/string;"},
		{"[I", "[I"},
		{"[[J", "[[J"},
		{"[Lpkg.Foo;", "[Lpkg/Foo;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.name))
		})
	}
}

func TestEncodeParams(t *testing.T) {
	assert.Empty(t, EncodeParams())
	assert.Equal(t, "ILpkg/Foo;[J", EncodeParams("int", "pkg.Foo", "[J"))
}

func TestEncodeParamsIsInjective(t *testing.T) {
	lists := [][]string{
		{},
		{"int"},
		{"int", "int"},
		{"[I"},
		{"[I", "int"},
		{"int", "[I"},
		{"pkg.I"},
		{"pkg.Foo", "int"},
		{"pkg.FooI"},
		{"[Lpkg.Foo;"},
		{"pkg.Foo", "pkg.Bar"},
		{"long"},
		{"builtin.int"},
	}

	seen := make(map[string][]string)
	for _, params := range lists {
		desc := EncodeParams(params...)
		if prev, ok := seen[desc]; ok {
			t.Fatalf("%v and %v both encode to %q", prev, params, desc)
		}

		seen[desc] = params

		decoded, err := DecodeParams(desc)
		require.NoError(t, err)
		assert.Equal(t, len(params), len(decoded))

		for i := range params {
			assert.Equal(t, params[i], decoded[i])
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		desc     string
		expected string
		wantErr  bool
	}{
		{desc: "I", expected: "int"},
		{desc: "Z", expected: "boolean"},
		{desc: "Lpkg/Foo;", expected: "pkg.Foo"},
		{desc: "[Lpkg/Foo;", expected: "[Lpkg.Foo;"},
		{desc: "[[D", expected: "[[D"},
		{desc: "", wantErr: true},
		{desc: "Q", wantErr: true},
		{desc: "Lpkg/Foo", wantErr: true},
		{desc: "L;", wantErr: true},
		{desc: "[", wantErr: true},
		{desc: "[V", wantErr: true},
		{desc: "II", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Decode(tt.desc)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParamsOf(t *testing.T) {
	params, err := ParamsOf("(ILpkg/Foo;)V")
	require.NoError(t, err)
	assert.Equal(t, "ILpkg/Foo;", params)

	params, err = ParamsOf("()Lpkg/Foo;")
	require.NoError(t, err)
	assert.Empty(t, params)

	_, err = ParamsOf("I)V")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = ParamsOf("(I")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestMapClassNames(t *testing.T) {
	renames := map[string]string{
		"pkg.Foo": "a",
		"pkg.Bar": "obf.b",
	}
	fn := func(name string) string {
		if r, ok := renames[name]; ok {
			return r
		}

		return name
	}

	got, err := MapClassNames("(Lpkg/Foo;I[Lpkg/Bar;Lother/Baz;)Lpkg/Foo;", fn)
	require.NoError(t, err)
	assert.Equal(t, "(La;I[Lobf/b;Lother/Baz;)La;", got)

	_, err = MapClassNames("(Lpkg/Foo", fn)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestSplitArray(t *testing.T) {
	tests := []struct {
		name   string
		want   ArrayName
		wantOK bool
	}{
		{name: "[I", want: ArrayName{Dims: 1, Elem: "int", Primitive: true}, wantOK: true},
		{name: "[[Lpkg.Foo;", want: ArrayName{Dims: 2, Elem: "pkg.Foo"}, wantOK: true},
		{name: "pkg.Foo"},
		{name: ""},
		{name: "["},
		{name: "[L"},
		{name: "[Lpkg.Foo"},
		{name: "[Q"},
		{name: "[V"},
		{name: "[Lpkg.Foo;I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SplitArray(tt.name)
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.name, got.String(), "split must round-trip")
			}
		})
	}
}

func TestArrayJoinRemapsOnlyElement(t *testing.T) {
	a, ok := SplitArray("[[Lpkg.Foo;")
	require.True(t, ok)
	assert.Equal(t, "[[Lobf.a;", a.Join("obf.a"))

	p, ok := SplitArray("[J")
	require.True(t, ok)
	assert.Equal(t, "[J", p.Join("ignored"))
}

func TestArrayOf(t *testing.T) {
	assert.Equal(t, "[I", ArrayOf("int"))
	assert.Equal(t, "[Lpkg.Foo;", ArrayOf("pkg.Foo"))
	assert.Equal(t, "[[Lpkg.Foo;", ArrayOf(ArrayOf("pkg.Foo")))
	assert.Equal(t, "[Lbuiltin.string;", ArrayOf("builtin.string"))
}

func TestPrimitiveLookup(t *testing.T) {
	code, ok := PrimitiveCode("boolean")
	require.True(t, ok)
	assert.Equal(t, byte('Z'), code)

	name, ok := PrimitiveName('J')
	require.True(t, ok)
	assert.Equal(t, "long", name)

	assert.True(t, IsPrimitive("void"))
	assert.False(t, IsPrimitive("builtin.int"))
}
