package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fooAPI struct {
	Bar       func(recv *a) int32
	SetBar    func(recv *a, v int32) error
	Add       func(recv *a, n int32) (int32, error)
	Concat    func(recv *a, s string) string `proxy:"addString"`
	Same      func(recv *a, other *a) (bool, error)
	Unrelated func() `proxy:"-"`

	note string
}

func TestImplement(t *testing.T) {
	obj, err := newTestFactory(t).Bind(fooProxy())
	require.NoError(t, err)

	var api fooAPI
	require.NoError(t, Implement(obj, &api))
	assert.Nil(t, api.Unrelated)

	target := &a{b: 40}

	assert.Equal(t, int32(40), api.Bar(target))
	require.NoError(t, api.SetBar(target, 41))
	assert.Equal(t, int32(41), target.b)

	sum, err := api.Add(target, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(42), sum)

	assert.Equal(t, "x!", api.Concat(target, "x"))

	same, err := api.Same(target, target)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestImplement_ErrorsSurfaceThroughFuncs(t *testing.T) {
	obj, err := newTestFactory(t).Bind(fooProxy())
	require.NoError(t, err)

	var api struct {
		Bar    func(recv any) int32
		SetBar func(recv any, v any) error
	}
	require.NoError(t, Implement(obj, &api))

	err = api.SetBar(&privateClass{}, 1)
	require.Error(t, err)

	assert.Panics(t, func() { api.Bar(&privateClass{}) })
}

func TestImplement_Rejects(t *testing.T) {
	obj, err := newTestFactory(t).Bind(fooProxy())
	require.NoError(t, err)

	tests := []struct {
		name    string
		dst     any
		wantErr error
	}{
		{
			name: "non-pointer",
			dst:  fooAPI{},
		},
		{
			name: "unknown declaration",
			dst: &struct {
				Missing func()
			}{},
			wantErr: ErrUnknownMember,
		},
		{
			name: "arity mismatch",
			dst: &struct {
				Bar func() int32
			}{},
			wantErr: ErrArgCount,
		},
		{
			name: "too many results",
			dst: &struct {
				Bar func(recv *a) (int32, int32, error)
			}{},
		},
		{
			name: "second result is not an error",
			dst: &struct {
				Bar func(recv *a) (int32, int32)
			}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Implement(obj, tt.dst)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInvoke_ResultType(t *testing.T) {
	obj, err := newTestFactory(t).Bind(fooProxy())
	require.NoError(t, err)

	_, err = Invoke[string](obj, "bar", &a{})
	require.ErrorIs(t, err, ErrResultType)

	v, err := Invoke[any](obj, "setBar", &a{}, 1)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindMethod, "method"},
		{KindGetter, "getter"},
		{KindConstructor, "constructor"},
		{KindNoop, "noop"},
		{Kind(0), "Kind(0)"},
		{Kind(7), "Kind(7)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}

	assert.True(t, KindSetter.Resolvable())
	assert.False(t, KindDefault.Resolvable())
}
