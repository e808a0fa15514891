package mapsource

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is a parsed mapping file.
type File struct {
	Version    string       `yaml:"version"`
	Namespaces []string     `yaml:"namespaces" validate:"min=2,unique,dive,required"`
	Classes    []ClassEntry `yaml:"classes" validate:"dive"`
}

// ClassEntry maps one class and its members.
type ClassEntry struct {
	Names   Names         `yaml:"names" validate:"required,dive,required"`
	Fields  []MemberEntry `yaml:"fields,omitempty" validate:"dive"`
	Methods []MemberEntry `yaml:"methods,omitempty" validate:"dive"`
}

// MemberEntry maps one field or method.
type MemberEntry struct {
	Names Names `yaml:"names" validate:"required,dive,required"`
	// Descriptor is the method descriptor in the first namespace.
	Descriptor string `yaml:"descriptor,omitempty"`
}

// Names holds one name per namespace. In YAML it is either a sequence or a
// single scalar meaning "the same name in every namespace".
type Names []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (n *Names) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*n = Names{str}
		} else {
			*n = Names{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*n = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array of names, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes a single string when all names are identical.
func (n Names) MarshalYAML() (any, error) {
	if len(n) > 0 {
		same := true
		for _, name := range n[1:] {
			if name != n[0] {
				same = false
				break
			}
		}

		if same {
			return n[0], nil
		}
	}

	return []string(n), nil
}

// expand repeats a scalar name once per namespace.
func (n Names) expand(count int) Names {
	if len(n) != 1 || count <= 1 {
		return n
	}

	out := make(Names, count)
	for i := range out {
		out[i] = n[0]
	}

	return out
}
