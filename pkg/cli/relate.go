package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/khalid-nowaf/treekit/pkg/tree"
)

// RelateCmd prints how one node relates to the rest of the tree.
type RelateCmd struct {
	TreeFlags `embed:""`

	Node  string `help:"Node to inspect" required:""`
	Other string `help:"Second node for lineage queries on bounded trees"`
}

// Run executes the relate command.
func (cmd *RelateCmd) Run(ctx *Context) error {
	t, _, err := buildTree(&cmd.TreeFlags, ctx.Logger)
	if err != nil {
		return err
	}

	parent, hasParent, err := t.Parent(cmd.Node)
	if err != nil {
		return err
	}
	children, err := t.Children(cmd.Node)
	if err != nil {
		return err
	}

	out := newTable(ctx.Out, cmd.Node)
	out.AppendRow(table.Row{"parent", formatOptional(parent, hasParent)})
	out.AppendRow(table.Row{"children", joinValues(children)})

	// the root has no siblings; unbounded trees report that as an error
	siblings, err := t.Siblings(cmd.Node)
	if err != nil && hasParent {
		return err
	}
	out.AppendRow(table.Row{"siblings", joinValues(siblings)})

	if numbered, ok := t.(tree.NumberedTree[string]); ok {
		if err := appendLineage(out, numbered, cmd.Node, cmd.Other); err != nil {
			return err
		}
	} else if cmd.Other != "" {
		ctx.Logger.Warn("lineage queries need a bounded tree", "other", cmd.Other)
	}

	out.Render()
	return nil
}

func appendLineage(out table.Writer, t tree.NumberedTree[string], node, other string) error {
	slots := lo.Times(t.MaxChildren(), func(i int) string {
		child, ok, err := t.Child(node, i)
		if err != nil || !ok {
			return "_"
		}
		return child
	})
	out.AppendRow(table.Row{"slots", joinValues(slots)})

	if other == "" {
		return nil
	}
	common, ok, err := t.CommonAncestor(node, other)
	if err != nil {
		return err
	}
	isAncestor, err := t.IsAncestor(node, other)
	if err != nil {
		return err
	}
	isDescendant, err := t.IsDescendant(other, node)
	if err != nil {
		return err
	}
	out.AppendSeparator()
	out.AppendRow(table.Row{"common ancestor of " + other, formatOptional(common, ok)})
	out.AppendRow(table.Row{fmt.Sprintf("ancestor of %s", other), isAncestor})
	out.AppendRow(table.Row{fmt.Sprintf("descendant of %s", other), isDescendant})
	return nil
}
