package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/treekit/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("treectl"),
		kong.Description("Load parent/child edge lists into a tree and query it."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext(cli.CLI.LogLevel, os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
