package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/khalid-nowaf/treekit/pkg/tree"
)

// ShowCmd prints traversals and summary queries of a tree.
type ShowCmd struct {
	TreeFlags `embed:""`

	Order  []string `help:"Traversals to print, any of pre, in, post, level" default:"pre,in,post,level" sep:","`
	Render bool     `help:"Also draw the tree"`
}

var traversals = map[string]func(tree.Tree[string]) []string{
	"pre":   func(t tree.Tree[string]) []string { return t.PreOrder() },
	"in":    func(t tree.Tree[string]) []string { return t.InOrder() },
	"post":  func(t tree.Tree[string]) []string { return t.PostOrder() },
	"level": func(t tree.Tree[string]) []string { return t.LevelOrder() },
}

// Run executes the show command.
func (cmd *ShowCmd) Run(ctx *Context) error {
	for _, order := range cmd.Order {
		if _, ok := traversals[order]; !ok {
			return fmt.Errorf("unknown traversal %q, want one of pre, in, post, level", order)
		}
	}
	t, stats, err := buildTree(&cmd.TreeFlags, ctx.Logger)
	if err != nil {
		return err
	}

	root, ok := t.Root()
	out := newTable(ctx.Out, fmt.Sprintf("%s tree", cmd.Kind))
	out.AppendRow(table.Row{"root", formatOptional(root, ok)})
	out.AppendRow(table.Row{"size", t.Size()})
	out.AppendRow(table.Row{"depth", t.Depth()})
	out.AppendSeparator()
	for _, order := range cmd.Order {
		out.AppendRow(table.Row{order + "-order", joinValues(traversals[order](t))})
	}
	out.AppendRow(table.Row{"leaves", joinValues(t.Leaves())})
	out.Render()

	writeStats(ctx.Out, stats)
	if cmd.Render {
		fmt.Fprint(ctx.Out, tree.Render(t))
	}
	return nil
}
