package main

import (
	"fmt"

	"reflection-remapper/remap"
)

type RemapCmd struct {
	Class  RemapClassCmd  `cmd:"" help:"Translate a class or array name."`
	Field  RemapFieldCmd  `cmd:"" help:"Translate a field name."`
	Method RemapMethodCmd `cmd:"" help:"Translate a method name."`
}

// MappingFlags select a mapping file and its namespace pair.
type MappingFlags struct {
	Mappings string `help:"Mapping file." short:"m" type:"existingfile" required:""`
	From     string `help:"Declared namespace of the mapping file." default:"named"`
	To       string `help:"Runtime namespace of the mapping file." default:"runtime"`
}

func (f *MappingFlags) remapper() (remap.Remapper, error) {
	return remap.ForMappingsFile(f.Mappings, f.From, f.To)
}

type RemapClassCmd struct {
	MappingFlags `embed:""`

	Name string `arg:"" help:"Declared class or array name, e.g. pkg.Foo or [Lpkg.Foo;."`
}

func (c *RemapClassCmd) Run(e *env) error {
	r, err := c.remapper()
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, r.RemapClassOrArray(c.Name))

	return nil
}

type RemapFieldCmd struct {
	MappingFlags `embed:""`

	Owner string `arg:"" help:"Declared class name of the owner."`
	Name  string `arg:"" help:"Declared field name."`
}

func (c *RemapFieldCmd) Run(e *env) error {
	r, err := c.remapper()
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, r.RemapField(r.RemapClass(c.Owner), c.Name))

	return nil
}

type RemapMethodCmd struct {
	MappingFlags `embed:""`

	Owner  string   `arg:"" help:"Declared class name of the owner."`
	Name   string   `arg:"" help:"Declared method name."`
	Params []string `arg:"" optional:"" help:"Declared parameter type names."`
}

func (c *RemapMethodCmd) Run(e *env) error {
	r, err := c.remapper()
	if err != nil {
		return err
	}

	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = r.RemapClassOrArray(p)
	}

	fmt.Fprintln(e.out, r.RemapMethod(r.RemapClass(c.Owner), c.Name, params...))

	return nil
}
