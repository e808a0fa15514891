package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"

	"reflection-remapper/internal/mappings"
	"reflection-remapper/internal/mapsource"
)

type DumpCmd struct {
	Mappings string   `arg:"" help:"Mapping file." type:"existingfile"`
	Classes  []string `arg:"" optional:"" help:"Declared class names. All classes when empty."`
	From     string   `help:"Declared namespace of the mapping file." default:"named"`
	To       string   `help:"Runtime namespace of the mapping file." default:"runtime"`
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

func (c *DumpCmd) Run(e *env) error {
	file, err := mapsource.LoadFile(c.Mappings)
	if err != nil {
		return err
	}

	table, err := file.Table(c.From, c.To)
	if err != nil {
		return err
	}

	if len(c.Classes) == 0 {
		dumpConfig.Fdump(e.out, table.Classes())
		return nil
	}

	found := make([]mappings.ClassMapping, 0, len(c.Classes))
	for _, name := range c.Classes {
		class, ok := table.Class(table.ClassRuntimeName(name))
		if !ok {
			return fmt.Errorf("class %s is not mapped", name)
		}

		found = append(found, class)
	}

	dumpConfig.Fdump(e.out, found)

	return nil
}
