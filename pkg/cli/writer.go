package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Query", "Result"})
	return t
}

// joinValues formats a node sequence for a table cell.
func joinValues(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, " ")
}

func formatOptional(value string, ok bool) string {
	if !ok {
		return "-"
	}
	return value
}

func writeStats(out io.Writer, stats *Stats) {
	fmt.Fprintf(out, "edges: %d, added: %d, skipped: %d\n", stats.Edges, stats.Added, stats.Skipped)
}
