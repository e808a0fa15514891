package mapsource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"reflection-remapper/internal/descriptor"
	"reflection-remapper/internal/mappings"
)

// ErrUnknownNamespace is returned when a requested namespace is not listed
// in the file.
var ErrUnknownNamespace = errors.New("unknown namespace")

var validate = validator.New()

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data)
}

// Read parses a mapping file from r. It does not close r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings: %w", err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates its structure.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in default values and expands scalar names.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	count := len(f.Namespaces)
	for i := range f.Classes {
		c := &f.Classes[i]
		c.Names = c.Names.expand(count)

		for j := range c.Fields {
			c.Fields[j].Names = c.Fields[j].Names.expand(count)
		}

		for j := range c.Methods {
			c.Methods[j].Names = c.Methods[j].Names.expand(count)
		}
	}
}

// Validate checks tags and the per-entry name counts.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid mapping file: %w", err)
	}

	count := len(f.Namespaces)
	for _, c := range f.Classes {
		if len(c.Names) != count {
			return fmt.Errorf("invalid mapping file: class %v has %d names, want %d", c.Names, len(c.Names), count)
		}

		for _, m := range c.Fields {
			if len(m.Names) != count {
				return fmt.Errorf("invalid mapping file: field %v of %s has %d names, want %d",
					m.Names, c.Names[0], len(m.Names), count)
			}
		}

		for _, m := range c.Methods {
			if len(m.Names) != count {
				return fmt.Errorf("invalid mapping file: method %v of %s has %d names, want %d",
					m.Names, c.Names[0], len(m.Names), count)
			}

			if m.Descriptor == "" {
				return fmt.Errorf("invalid mapping file: method %s.%s has no descriptor", c.Names[0], m.Names[0])
			}
		}
	}

	return nil
}

// Records produces the record stream for the namespace pair from → to.
// Names in namespace from become declared names, names in to become runtime
// names.
func (f *File) Records(from, to string) ([]mappings.Record, error) {
	src := slices.Index(f.Namespaces, from)
	if src < 0 {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownNamespace, from, f.Namespaces)
	}

	dst := slices.Index(f.Namespaces, to)
	if dst < 0 {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownNamespace, to, f.Namespaces)
	}

	// Descriptors are written in the first namespace and have to be
	// expressed in the declared namespace.
	firstToDeclared := make(map[string]string, len(f.Classes))
	for _, c := range f.Classes {
		firstToDeclared[c.Names[0]] = c.Names[src]
	}

	toDeclared := func(name string) string {
		if mapped, ok := firstToDeclared[name]; ok {
			return mapped
		}

		return name
	}

	records := make([]mappings.Record, 0, len(f.Classes))
	for _, c := range f.Classes {
		owner := c.Names[src]
		records = append(records, mappings.Record{
			Kind:     mappings.RecordClass,
			Declared: owner,
			Runtime:  c.Names[dst],
		})

		for _, fld := range c.Fields {
			records = append(records, mappings.Record{
				Kind:     mappings.RecordField,
				Owner:    owner,
				Declared: fld.Names[src],
				Runtime:  fld.Names[dst],
			})
		}

		for _, m := range c.Methods {
			desc, err := descriptor.MapClassNames(m.Descriptor, toDeclared)
			if err != nil {
				return nil, fmt.Errorf("method %s.%s: %w", c.Names[0], m.Names[0], err)
			}

			records = append(records, mappings.Record{
				Kind:       mappings.RecordMethod,
				Owner:      owner,
				Declared:   m.Names[src],
				Runtime:    m.Names[dst],
				Descriptor: desc,
			})
		}
	}

	return records, nil
}

// Table builds the mapping table for the namespace pair from → to.
func (f *File) Table(from, to string) (*mappings.Table, error) {
	records, err := f.Records(from, to)
	if err != nil {
		return nil, err
	}

	return mappings.FromRecords(records)
}
