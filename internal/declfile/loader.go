package declfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"reflection-remapper/proxy"
)

// Format is the encoding of a description file.
type Format int

const (
	FormatYAML Format = iota
	FormatHCL
)

// ErrUnknownFormat is returned for file names without a known extension.
var ErrUnknownFormat = errors.New("unknown description file format")

const (
	receiverParam = "receiver"
	classPrefix   = "class:"
	proxyPrefix   = "proxy:"
)

var validate = validator.New()

var kinds = map[string]proxy.Kind{
	"method":      proxy.KindMethod,
	"getter":      proxy.KindGetter,
	"setter":      proxy.KindSetter,
	"constructor": proxy.KindConstructor,
}

// FormatOf returns the format of a file by its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile loads and parses a description file, picking the format from its
// extension.
func LoadFile(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse parses data in the given format and validates it.
func Parse(data []byte, format Format) (*File, error) {
	var f File

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse description YAML: %w", err)
		}
	case FormatHCL:
		if err := hclsimple.Decode("descriptions.hcl", data, nil, &f); err != nil {
			return nil, fmt.Errorf("failed to parse description HCL: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// Validate checks tags, name uniqueness and references between descriptions.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid description file: %w", err)
	}

	names := make(map[string]bool, len(f.Descriptions))
	for _, d := range f.Descriptions {
		if names[d.Name] {
			return fmt.Errorf("invalid description file: description %s is defined twice", d.Name)
		}

		names[d.Name] = true
	}

	for _, d := range f.Descriptions {
		for _, parent := range d.Extends {
			if !names[parent] {
				return fmt.Errorf("invalid description file: %s extends unknown description %s", d.Name, parent)
			}
		}

		for _, decl := range d.Decls {
			for _, p := range decl.Params {
				if name, ok := strings.CutPrefix(p, proxyPrefix); ok && !names[name] {
					return fmt.Errorf("invalid description file: parameter %q of %s.%s refers to an unknown description",
						p, d.Name, decl.Name)
				}
			}
		}
	}

	return nil
}

// Build returns the descriptions of f in file order, with extension and
// proxy parameters resolved by name.
func (f *File) Build() ([]*proxy.Description, error) {
	byName := make(map[string]*proxy.Description, len(f.Descriptions))
	out := make([]*proxy.Description, len(f.Descriptions))

	for i, d := range f.Descriptions {
		out[i] = proxy.Describe(d.Name, proxy.TargetName(d.Target))
		byName[d.Name] = out[i]
	}

	for i, d := range f.Descriptions {
		desc := out[i]

		for _, parent := range d.Extends {
			p, ok := byName[parent]
			if !ok {
				return nil, fmt.Errorf("%s extends unknown description %s", d.Name, parent)
			}

			desc.Extending(p)
		}

		for _, decl := range d.Decls {
			built, err := buildDecl(decl, byName)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", d.Name, decl.Name, err)
			}

			desc.Decls = append(desc.Decls, built)
		}
	}

	return out, nil
}

func buildDecl(d Decl, byName map[string]*proxy.Description) (proxy.Decl, error) {
	kind, ok := kinds[d.Kind]
	if !ok {
		return proxy.Decl{}, fmt.Errorf("unknown kind %q", d.Kind)
	}

	params := make([]proxy.Param, 0, len(d.Params))
	for _, s := range d.Params {
		p, err := ParseParam(s, byName)
		if err != nil {
			return proxy.Decl{}, err
		}

		params = append(params, p)
	}

	return proxy.Decl{
		Name:    d.Name,
		Kind:    kind,
		Member:  d.Member,
		Params:  params,
		Returns: d.Returns,
		Static:  d.Static || kind == proxy.KindConstructor,
	}, nil
}

// ParseParam parses a parameter as written in description files. Proxy
// parameters are looked up in byName.
func ParseParam(s string, byName map[string]*proxy.Description) (proxy.Param, error) {
	if s == receiverParam {
		return proxy.Receiver(), nil
	}

	if name, ok := strings.CutPrefix(s, classPrefix); ok {
		return proxy.ArgClass(name), nil
	}

	if name, ok := strings.CutPrefix(s, proxyPrefix); ok {
		d, ok := byName[name]
		if !ok {
			return proxy.Param{}, fmt.Errorf("parameter %q refers to an unknown description", s)
		}

		return proxy.ArgProxy(d), nil
	}

	return proxy.Arg(s), nil
}

// FromDescriptions converts descriptions back to their file form. Default
// behaviors have no file form and are reported as errors.
func FromDescriptions(ds []*proxy.Description) (*File, error) {
	f := &File{Descriptions: make([]Description, 0, len(ds))}

	for _, d := range ds {
		if d.Target.Class == "" {
			return nil, fmt.Errorf("%s: only named targets can be written", d.Name)
		}

		out := Description{Name: d.Name, Target: d.Target.Class}

		for _, p := range d.Extends {
			out.Extends = append(out.Extends, p.Name)
		}

		for _, decl := range d.Decls {
			if !decl.Kind.Resolvable() {
				return nil, fmt.Errorf("%s.%s: %s declarations cannot be written", d.Name, decl.Name, decl.Kind)
			}

			var params []string
			for _, p := range decl.Params {
				params = append(params, p.String())
			}

			out.Decls = append(out.Decls, Decl{
				Name:    decl.Name,
				Kind:    decl.Kind.String(),
				Member:  decl.Member,
				Params:  params,
				Returns: decl.Returns,
				Static:  decl.Static && decl.Kind != proxy.KindConstructor,
			})
		}

		f.Descriptions = append(f.Descriptions, out)
	}

	return f, nil
}
