package cli

import (
	"fmt"
	"log/slog"

	"github.com/khalid-nowaf/treekit/pkg/tree"
)

// TreeFlags select the edge files and the tree shape to load them into.
type TreeFlags struct {
	Files       []string `arg:"" type:"existingfile" help:"Edge files in CSV, TSV, JSON or YAML format"`
	Kind        string   `help:"Tree shape" enum:"unbounded,bounded" default:"unbounded"`
	MaxChildren int      `help:"Child slots per node for bounded trees" default:"2"`
	ParentKey   string   `help:"Field holding the parent node, empty for the root" default:"parent"`
	ChildKey    string   `help:"Field holding the child node" default:"child"`
	SlotKey     string   `help:"Field holding the child slot for bounded trees" default:"slot"`
	Format      string   `help:"Input format, detected from the extension by default" enum:"auto,csv,tsv,json,yaml" default:"auto"`
}

// Stats counts what happened while loading edges.
type Stats struct {
	Edges   int
	Added   int
	Skipped int
}

// buildTree loads every file of flags into a new tree. An unknown parent or a
// second root stops the load; duplicate or unplaceable children are skipped.
func buildTree(flags *TreeFlags, logger *slog.Logger) (tree.Tree[string], *Stats, error) {
	var (
		t       tree.Tree[string]
		slotted tree.NumberedTree[string]
	)
	switch flags.Kind {
	case "bounded":
		bt, err := tree.NewBounded[string](flags.MaxChildren, tree.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		t, slotted = bt, bt
	default:
		t = tree.NewUnbounded[string](tree.WithLogger(logger))
	}

	stats := &Stats{}
	for _, file := range flags.Files {
		err := parseEdges(flags, file, func(edge Edge) error {
			stats.Edges++
			var (
				added bool
				err   error
			)
			if edge.Slot >= 0 && slotted != nil && edge.Parent != "" {
				added, err = slotted.AddAt(edge.Parent, edge.Child, edge.Slot)
			} else {
				added, err = t.AddChild(edge.Parent, edge.Child)
			}
			if err != nil {
				return fmt.Errorf("%s: edge %q -> %q: %w", file, edge.Parent, edge.Child, err)
			}
			if !added {
				stats.Skipped++
				logger.Warn("edge skipped", "file", file, "parent", edge.Parent, "child", edge.Child, "slot", edge.Slot)
				return nil
			}
			stats.Added++
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("edges loaded", "file", file, "edges", stats.Edges, "added", stats.Added, "skipped", stats.Skipped)
	}
	return t, stats, nil
}
