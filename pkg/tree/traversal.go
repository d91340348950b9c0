package tree

import "slices"

// Traversals walk ids with explicit stacks and queues so deep trees cannot
// exhaust the goroutine stack. Orders match the recursive definitions.

func (a *arena[E]) preOrder() []int {
	if !a.hasRoot() {
		return nil
	}
	var order []int
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, id)

		children := a.liveChildren(id)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return order
}

func (a *arena[E]) postOrder() []int {
	if !a.hasRoot() {
		return nil
	}
	type frame struct {
		id       int
		expanded bool
	}
	var order []int
	stack := []frame{{id: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.expanded {
			order = append(order, top.id)
			continue
		}
		stack = append(stack, frame{id: top.id, expanded: true})
		children := a.liveChildren(top.id)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: children[i]})
		}
	}
	return order
}

func (a *arena[E]) levelOrder() []int {
	if !a.hasRoot() {
		return nil
	}
	var order []int
	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		queue = append(queue, a.liveChildren(id)...)
	}
	return order
}

// step is one unit of in-order work: either emit a node or descend into it.
type step struct {
	id   int
	emit bool
}

// inOrderPlan expands a node into the steps that process it, in order.
type inOrderPlan func(id int, children []int) []step

func (a *arena[E]) inOrder(plan inOrderPlan) []int {
	if !a.hasRoot() {
		return nil
	}
	var order []int
	stack := []step{{id: 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.emit {
			order = append(order, top.id)
			continue
		}
		steps := plan(top.id, a.nodes[top.id].children)
		slices.Reverse(steps)
		stack = append(stack, steps...)
	}
	return order
}

// interleavedPlan is the in-order rule for insertion-ordered children: from
// child len/2 onward the node is emitted before every remaining child, so a
// node with three or more children appears more than once.
func interleavedPlan(id int, children []int) []step {
	if len(children) == 0 {
		return []step{{id: id, emit: true}}
	}
	steps := make([]step, 0, 2*len(children))
	for i, child := range children {
		if i >= len(children)/2 {
			steps = append(steps, step{id: id, emit: true})
		}
		steps = append(steps, step{id: child})
	}
	return steps
}

// splitPlan is the in-order rule for slotted children: the first
// ceil(slots/2) slots, the node, then the remaining slots. Empty slots are
// skipped but still count towards the split.
func splitPlan(id int, slots []int) []step {
	split := (len(slots) + 1) / 2
	steps := make([]step, 0, len(slots)+1)
	for i, child := range slots {
		if i == split {
			steps = append(steps, step{id: id, emit: true})
		}
		if child != noNode {
			steps = append(steps, step{id: child})
		}
	}
	if split >= len(slots) {
		steps = append(steps, step{id: id, emit: true})
	}
	return steps
}
