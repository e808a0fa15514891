package main

import (
	"fmt"
	"io"

	"reflection-remapper/internal/diagnostic"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
)

// printer writes diagnostics, colored when writing to a terminal.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) paint(color, s string) string {
	if !p.color {
		return s
	}

	return color + s + ansiReset
}

func (p printer) diagnostics(d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		color := ansiCyan
		switch diag.Severity {
		case diagnostic.DiagnosticError:
			color = ansiRed
		case diagnostic.DiagnosticWarning:
			color = ansiYellow
		}

		fmt.Fprintf(p.w, "%s %s\n", p.paint(color, diag.Severity.String()+":"), diag)
	}
}

func (p printer) summary(ok bool, format string, args ...any) {
	mark, color := "✓", ansiGreen
	if !ok {
		mark, color = "✗", ansiRed
	}

	fmt.Fprintf(p.w, "%s %s\n", p.paint(color, mark), fmt.Sprintf(format, args...))
}
