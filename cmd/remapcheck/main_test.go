package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMappings = `
namespaces: [named, runtime]
classes:
  - names: [world.Level, test.Level]
    fields:
      - names: [ticks, number]
    methods:
      - names: [advance, Tick]
        descriptor: (I)J
  - names: [world.ServerLevel, test.ServerLevel]
`

const goodDescriptions = `
descriptions:
  - name: LevelProxy
    target: world.Level
    declarations:
      - {name: ticks, kind: getter, params: [receiver]}
      - {name: advance, kind: method, params: [receiver, int]}
  - name: ServerLevelProxy
    target: world.ServerLevel
    extends: [LevelProxy]
`

const badDescriptions = `
descriptions:
  - name: LevelProxy
    target: world.Level
    declarations:
      - {name: tickz, kind: getter, params: [receiver], member: ticks}
      - {name: numbr, kind: getter, params: [receiver]}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestCheck(t *testing.T) {
	mappings := writeFile(t, "mappings.yaml", testMappings)

	checkArgs := func(descriptions string) []string {
		return []string{
			"check", descriptions,
			"-m", mappings,
			"-C", "../../internal/analyze",
			"-p", "./testdata/game",
		}
	}

	t.Run("bound", func(t *testing.T) {
		code, out, errOut := runCLI(t, checkArgs(writeFile(t, "good.yaml", goodDescriptions))...)
		require.Equal(t, 0, code, errOut)
		assert.Contains(t, out, "2 descriptions bound")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("missing members", func(t *testing.T) {
		code, out, _ := runCLI(t, checkArgs(writeFile(t, "bad.yaml", badDescriptions))...)
		require.Equal(t, 1, code)
		assert.Contains(t, out, "[missing_field]")
		assert.Contains(t, out, "1 of 1 descriptions failed to bind")
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, errOut := runCLI(t, checkArgs(writeFile(t, "good.json", goodDescriptions))...)
		require.Equal(t, 1, code)
		assert.Contains(t, errOut, "unknown description file format")
	})
}

func TestRemap(t *testing.T) {
	mappings := writeFile(t, "mappings.yaml", testMappings)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "class", args: []string{"remap", "class", "world.Level"}, want: "test.Level\n"},
		{name: "array", args: []string{"remap", "class", "[[Lworld.Level;"}, want: "[[Ltest.Level;\n"},
		{name: "unmapped class", args: []string{"remap", "class", "other.Thing"}, want: "other.Thing\n"},
		{name: "field", args: []string{"remap", "field", "world.Level", "ticks"}, want: "number\n"},
		{name: "method", args: []string{"remap", "method", "world.Level", "advance", "int"}, want: "Tick\n"},
		{name: "overload miss", args: []string{"remap", "method", "world.Level", "advance"}, want: "advance\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, append(tt.args, "-m", mappings)...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDump(t *testing.T) {
	mappings := writeFile(t, "mappings.yaml", testMappings)

	code, out, errOut := runCLI(t, "dump", mappings, "world.Level")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, `"test.Level"`)
	assert.Contains(t, out, `"ticks": (string) (len=6) "number"`)
	assert.NotContains(t, out, "world.ServerLevel")

	code, _, errOut = runCLI(t, "dump", mappings, "other.Thing")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "class other.Thing is not mapped")
}

func TestUsage(t *testing.T) {
	code, out, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "remapcheck")

	code, _, _ = runCLI(t, "nope")
	assert.Equal(t, 2, code)

	code, out, _ = runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "0.1.0")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger("debug", "json", &buf).Debug("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	newLogger("error", "text", &buf).Warn("dropped")
	assert.Empty(t, buf.String())
}
