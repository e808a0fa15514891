package declfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflection-remapper/proxy"
)

const levelYAML = `
descriptions:
  - name: LevelProxy
    target: test.Level
    declarations:
      - {name: number, kind: getter, params: [receiver]}
      - {name: name, kind: method, member: Name, params: [receiver], returns: builtin.string}
  - name: ServerLevelProxy
    target: test.ServerLevel
    extends: [LevelProxy]
    declarations:
      - {name: number1, kind: getter, params: [receiver]}
      - {name: same, kind: method, params: [receiver, "proxy:LevelProxy", "class:pkg.Foo", int]}
      - {name: new, kind: constructor, params: [builtin.string]}
`

const levelHCL = `
description "LevelProxy" {
  target = "test.Level"

  declaration "number" {
    kind   = "getter"
    params = ["receiver"]
  }

  declaration "name" {
    kind    = "method"
    member  = "Name"
    params  = ["receiver"]
    returns = "builtin.string"
  }
}

description "ServerLevelProxy" {
  target  = "test.ServerLevel"
  extends = ["LevelProxy"]

  declaration "number1" {
    kind   = "getter"
    params = ["receiver"]
  }

  declaration "same" {
    kind   = "method"
    params = ["receiver", "proxy:LevelProxy", "class:pkg.Foo", "int"]
  }

  declaration "new" {
    kind   = "constructor"
    params = ["builtin.string"]
  }
}
`

func TestParse_Formats(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: levelYAML, format: FormatYAML},
		{name: "hcl", data: levelHCL, format: FormatHCL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			ds, err := f.Build()
			require.NoError(t, err)
			require.Len(t, ds, 2)

			level, server := ds[0], ds[1]
			assert.Equal(t, "LevelProxy", level.Name)
			assert.Equal(t, "test.Level", level.Target.Class)
			assert.Empty(t, level.Extends)

			name, ok := level.Decl("name")
			require.True(t, ok)
			assert.Equal(t, proxy.KindMethod, name.Kind)
			assert.Equal(t, "Name", name.Member)
			assert.Equal(t, "builtin.string", name.Returns)
			assert.Equal(t, []proxy.Param{proxy.Receiver()}, name.Params)

			require.Len(t, server.Extends, 1)
			assert.Same(t, level, server.Extends[0])

			same, ok := server.Decl("same")
			require.True(t, ok)
			assert.Equal(t, []proxy.Param{
				proxy.Receiver(), proxy.ArgProxy(level), proxy.ArgClass("pkg.Foo"), proxy.Arg("int"),
			}, same.Params)

			ctor, ok := server.Decl("new")
			require.True(t, ok)
			assert.Equal(t, proxy.KindConstructor, ctor.Kind)
			assert.True(t, ctor.Static)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "malformed",
			data:    "descriptions: [",
			wantErr: "failed to parse description YAML",
		},
		{
			name:    "no descriptions",
			data:    "{}",
			wantErr: "invalid description file",
		},
		{
			name: "missing target",
			data: `
descriptions:
  - name: P
`,
			wantErr: "Target",
		},
		{
			name: "unknown kind",
			data: `
descriptions:
  - name: P
    target: pkg.Foo
    declarations:
      - {name: run, kind: default}
`,
			wantErr: "Kind",
		},
		{
			name: "duplicate description",
			data: `
descriptions:
  - {name: P, target: pkg.Foo}
  - {name: P, target: pkg.Bar}
`,
			wantErr: "defined twice",
		},
		{
			name: "unknown parent",
			data: `
descriptions:
  - {name: P, target: pkg.Foo, extends: [Q]}
`,
			wantErr: "extends unknown description Q",
		},
		{
			name: "unknown proxy parameter",
			data: `
descriptions:
  - name: P
    target: pkg.Foo
    declarations:
      - {name: same, kind: method, params: [receiver, "proxy:Q"]}
`,
			wantErr: "refers to an unknown description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_InvalidHCL(t *testing.T) {
	_, err := Parse([]byte(`description "P" { target = }`), FormatHCL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse description HCL")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "levels.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(levelYAML), 0o600))

	hclPath := filepath.Join(dir, "levels.hcl")
	require.NoError(t, os.WriteFile(hclPath, []byte(levelHCL), 0o600))

	fromYAML, err := LoadFile(yamlPath)
	require.NoError(t, err)

	fromHCL, err := LoadFile(hclPath)
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromHCL)

	_, err = LoadFile(filepath.Join(dir, "levels.json"))
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromDescriptions(t *testing.T) {
	f, err := Parse([]byte(levelYAML), FormatYAML)
	require.NoError(t, err)

	ds, err := f.Build()
	require.NoError(t, err)

	back, err := FromDescriptions(ds)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	data, err := Marshal(back)
	require.NoError(t, err)

	again, err := Parse(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, f, again)
}

func TestFromDescriptions_RejectsDefaults(t *testing.T) {
	d := proxy.Describe("P", proxy.TargetName("pkg.Foo"),
		proxy.Default("run", func(*proxy.Call) (any, error) { return nil, nil }))

	_, err := FromDescriptions([]*proxy.Description{d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default declarations cannot be written")
}
