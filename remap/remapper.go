// Package remap remaps class, field and method names from the declared
// namespace to the runtime namespace.
//
// It is particularly useful for dynamic lookups by name, which are not
// covered when compiled code is renamed.
//
// A Remapper never fails: names it does not know are returned unchanged.
package remap

import (
	"fmt"
	"io"
	"os"

	"reflection-remapper/internal/descriptor"
	"reflection-remapper/internal/mappings"
	"reflection-remapper/internal/mapsource"
)

// Remapper remaps declared names to their runtime counterparts.
type Remapper interface {
	// RemapClass remaps a fully qualified declared class name.
	RemapClass(name string) string
	// RemapField remaps a declared field name. owner is the runtime name of
	// the class declaring the field.
	RemapField(owner, field string) string
	// RemapMethod remaps a declared method name. owner is the runtime name
	// of the class declaring the method and params are the runtime
	// class-or-array names of its parameter types.
	RemapMethod(owner, method string, params ...string) string
	// RemapClassOrArray remaps a class-or-array name such as "[Lpkg.Foo;",
	// remapping only the element class of arrays.
	RemapClassOrArray(name string) string
}

// New returns a Remapper backed by table.
func New(table *mappings.Table) Remapper {
	return &tableRemapper{table: table}
}

// ForMappings reads a mapping file from r and returns a Remapper for the
// namespace pair from → to. It does not close r.
func ForMappings(r io.Reader, from, to string) (Remapper, error) {
	f, err := mapsource.Read(r)
	if err != nil {
		return nil, err
	}

	return forFile(f, from, to)
}

// ForMappingsFile is ForMappings for a file on disk.
func ForMappingsFile(path string, from, to string) (Remapper, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mappings %s: %w", path, err)
	}
	defer fh.Close()

	return ForMappings(fh, from, to)
}

// Unless returns Noop when live reports that the declared namespace is
// already the one in effect, and the result of load otherwise. Detecting the
// live namespace is left to the caller.
func Unless(live bool, load func() (Remapper, error)) (Remapper, error) {
	if live {
		return Noop(), nil
	}

	return load()
}

func forFile(f *mapsource.File, from, to string) (Remapper, error) {
	table, err := f.Table(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build mappings %s -> %s: %w", from, to, err)
	}

	return New(table), nil
}

type tableRemapper struct {
	table *mappings.Table
}

func (r *tableRemapper) RemapClass(name string) string {
	return r.table.ClassRuntimeName(name)
}

func (r *tableRemapper) RemapField(owner, field string) string {
	return r.table.FieldRuntimeName(owner, field)
}

func (r *tableRemapper) RemapMethod(owner, method string, params ...string) string {
	return r.table.MethodRuntimeName(owner, method, descriptor.EncodeParams(params...))
}

func (r *tableRemapper) RemapClassOrArray(name string) string {
	return remapClassOrArray(name, r.RemapClass)
}

// remapClassOrArray unwraps array markers and remaps only the element class.
// Primitive arrays and malformed names pass through unchanged.
func remapClassOrArray(name string, remapClass func(string) string) string {
	if name == "" {
		return name
	}

	if name[0] != descriptor.ArrayMarker {
		return remapClass(name)
	}

	arr, ok := descriptor.SplitArray(name)
	if !ok || arr.Primitive {
		return name
	}

	return arr.Join(remapClass(arr.Elem))
}
