package cli

import (
	"io"
	"log/slog"
	"os"
)

// Context carries what every command needs at run time.
type Context struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI is the treectl command tree.
var CLI struct {
	LogLevel string `help:"Log level for diagnostics on stderr" enum:"debug,info,warn,error" default:"warn" env:"TREEKIT_LOG_LEVEL"`

	Show   ShowCmd   `cmd:"" help:"Build a tree from edge files and print its traversals"`
	Relate RelateCmd `cmd:"" help:"Print the parent, children and lineage of one node"`
}

// NewContext builds a run context that logs to stderr at the given level.
func NewContext(level string, out io.Writer) *Context {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return &Context{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})),
		Out:    out,
	}
}
