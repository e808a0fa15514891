// Package main provides the remapcheck CLI.
//
// remapcheck checks description files against Go packages loaded from
// source and queries mapping files:
//   - check: bind every description and report missing members
//   - remap: translate a declared class, field or method name
//   - dump: print the mapping entries of classes
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
)

// errFailed is returned by commands that already reported their failure.
var errFailed = errors.New("check failed")

type CLI struct {
	LogLevel  string `help:"Log level." enum:"debug,info,warn,error" default:"warn" name:"log-level"`
	LogFormat string `help:"Log format." enum:"text,json" default:"text" name:"log-format"`
	NoColor   bool   `help:"Disable colored output." name:"no-color"`

	Version VersionCmd `cmd:"" help:"Print version information."`
	Check   CheckCmd   `cmd:"" help:"Bind description files against Go packages and report problems."`
	Remap   RemapCmd   `cmd:"" help:"Translate declared names through a mapping file."`
	Dump    DumpCmd    `cmd:"" help:"Print the mapping entries of classes."`
}

// env is bound to every command's Run method.
type env struct {
	log   *slog.Logger
	out   io.Writer
	color bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{}

	exitCode := -1
	parser, err := kong.New(cli,
		kong.Name("remapcheck"),
		kong.Description("Check reflection descriptions against mapped Go packages."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help and friends.
		return exitCode
	}

	if err != nil {
		fmt.Fprintf(stderr, "remapcheck: %v\n", err)
		return 2
	}

	e := &env{
		log:   newLogger(cli.LogLevel, cli.LogFormat, stderr),
		out:   stdout,
		color: !cli.NoColor && isTerminal(stdout),
	}

	if err := ctx.Run(e); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "remapcheck: %v\n", err)
		}

		return 1
	}

	return 0
}

// newLogger creates a slog.Logger writing to w. It does not set the global
// logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
