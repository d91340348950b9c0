package tree

import "github.com/xlab/treeprint"

// Render draws the live nodes of t as an indented tree, one node per line,
// children in storage order. An empty tree renders as an empty string.
func Render[E comparable](t Tree[E]) string {
	root, ok := t.Root()
	if !ok {
		return ""
	}

	type pending struct {
		value  E
		branch treeprint.Tree
	}
	printer := treeprint.NewWithRoot(root)
	stack := []pending{{value: root, branch: printer}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := t.Children(top.value)
		if err != nil {
			panic("[BUG] Render: node reached from the root is missing: " + err.Error())
		}
		for _, child := range children {
			stack = append(stack, pending{value: child, branch: top.branch.AddBranch(child)})
		}
	}
	return printer.String()
}
