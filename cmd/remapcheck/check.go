package main

import (
	"fmt"

	"reflection-remapper/internal/analyze"
	"reflection-remapper/internal/check"
	"reflection-remapper/internal/declfile"
	"reflection-remapper/remap"
)

type CheckCmd struct {
	Descriptions string   `arg:"" help:"Description file (.yaml, .yml or .hcl)." type:"existingfile"`
	Packages     []string `help:"Packages declaring the target classes." short:"p" default:"."`
	Dir          string   `help:"Directory packages are loaded from." short:"C"`
	Mappings     string   `help:"Mapping file. Without one, declared names are runtime names." short:"m" type:"existingfile"`
	From         string   `help:"Declared namespace of the mapping file." default:"named"`
	To           string   `help:"Runtime namespace of the mapping file." default:"runtime"`
	Suggestions  int      `help:"Similar member names listed for missing members." default:"3"`
	NoHierarchy  bool     `help:"Do not require ancestor targets to be superclasses." name:"no-hierarchy"`
	Quiet        bool     `help:"Do not report unmapped classes." short:"q"`
}

func (c *CheckCmd) Run(e *env) error {
	file, err := declfile.LoadFile(c.Descriptions)
	if err != nil {
		return err
	}

	descs, err := file.Build()
	if err != nil {
		return fmt.Errorf("descriptions: %w", err)
	}

	remapper, err := remap.Unless(c.Mappings == "", func() (remap.Remapper, error) {
		return remap.ForMappingsFile(c.Mappings, c.From, c.To)
	})
	if err != nil {
		return err
	}

	analyzer := analyze.NewAnalyzer()
	analyzer.Dir = c.Dir

	graph, err := analyzer.LoadPackages(c.Packages...)
	if err != nil {
		return err
	}

	e.log.Info("loaded classes", "packages", c.Packages, "classes", len(graph.Classes))

	config := check.DefaultConfig()
	config.Logger = e.log
	config.VerifyHierarchy = !c.NoHierarchy
	config.Suggestions = c.Suggestions
	config.ReportUnmapped = !c.Quiet

	diags := check.Run(descs, remapper, graph, config)

	p := printer{w: e.out, color: e.color}
	p.diagnostics(diags)

	if diags.HasErrors() {
		p.summary(false, "%d of %d descriptions failed to bind", len(diags.Errors), len(descs))
		return errFailed
	}

	p.summary(true, "%d descriptions bound", len(descs))

	return nil
}
