package mappings

import (
	"errors"
	"fmt"

	"reflection-remapper/internal/descriptor"
)

// ErrUnknownOwner is returned when a field or method record names an owner
// class that has no class record.
var ErrUnknownOwner = errors.New("member record references unknown class")

// RecordKind is the kind of entity a Record describes.
type RecordKind int

const (
	RecordClass RecordKind = iota
	RecordField
	RecordMethod
)

// String returns a human-readable kind name.
func (k RecordKind) String() string {
	switch k {
	case RecordClass:
		return "class"
	case RecordField:
		return "field"
	case RecordMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Record is one entry of the stream handed over by a mapping source.
type Record struct {
	Kind RecordKind
	// Owner is the declared name of the owning class (fields and methods only).
	Owner string
	// Declared is the name in the declared namespace.
	Declared string
	// Runtime is the name in the runtime namespace.
	Runtime string
	// Descriptor is the method descriptor in the declared namespace, e.g.
	// "(Lpkg/Foo;I)V" (methods only).
	Descriptor string
}

// FromRecords builds a Table from an ordered record stream. Class records
// may appear anywhere in the stream; member records are attached to their
// owner once all classes are known. Method descriptors are translated into
// the runtime namespace before they become part of the method key.
func FromRecords(records []Record) (*Table, error) {
	classes := make([]ClassMapping, 0)
	index := make(map[string]int)

	for _, r := range records {
		if r.Kind != RecordClass {
			continue
		}

		if _, ok := index[r.Declared]; ok {
			return nil, &DuplicateMappingError{Namespace: NamespaceDeclared, Kind: RecordClass, Name: r.Declared}
		}

		index[r.Declared] = len(classes)
		classes = append(classes, ClassMapping{
			Runtime:  r.Runtime,
			Declared: r.Declared,
			Fields:   map[string]string{},
			Methods:  map[string]string{},
		})
	}

	toRuntime := func(declared string) string {
		if i, ok := index[declared]; ok {
			return classes[i].Runtime
		}

		return declared
	}

	for _, r := range records {
		if r.Kind == RecordClass {
			continue
		}

		i, ok := index[r.Owner]
		if !ok {
			return nil, fmt.Errorf("%w: %s %q in %q", ErrUnknownOwner, r.Kind, r.Declared, r.Owner)
		}

		if r.Declared == "" || r.Runtime == "" {
			return nil, fmt.Errorf("%w: %s %q/%q in %q", ErrEmptyName, r.Kind, r.Declared, r.Runtime, r.Owner)
		}

		owner := &classes[i]

		switch r.Kind {
		case RecordField:
			if _, dup := owner.Fields[r.Declared]; dup {
				return nil, &DuplicateMappingError{
					Namespace: NamespaceDeclared, Kind: RecordField, Owner: r.Owner, Name: r.Declared,
				}
			}

			owner.Fields[r.Declared] = r.Runtime

		case RecordMethod:
			key, err := runtimeMethodKey(r, toRuntime)
			if err != nil {
				return nil, err
			}

			if _, dup := owner.Methods[key]; dup {
				return nil, &DuplicateMappingError{
					Namespace: NamespaceDeclared, Kind: RecordMethod, Owner: r.Owner, Name: key,
				}
			}

			owner.Methods[key] = r.Runtime

		default:
			return nil, fmt.Errorf("unsupported record kind %d", r.Kind)
		}
	}

	return Build(classes)
}

func runtimeMethodKey(r Record, toRuntime func(string) string) (string, error) {
	desc, err := descriptor.MapClassNames(r.Descriptor, toRuntime)
	if err != nil {
		return "", fmt.Errorf("method %s.%s: %w", r.Owner, r.Declared, err)
	}

	params, err := descriptor.ParamsOf(desc)
	if err != nil {
		return "", fmt.Errorf("method %s.%s: %w", r.Owner, r.Declared, err)
	}

	return MethodKey(r.Declared, params), nil
}
