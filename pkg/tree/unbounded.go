package tree

import (
	"fmt"

	"github.com/samber/lo"
)

// UnboundedTree keeps the children of each node in insertion order, with no
// limit on how many a node may have.
type UnboundedTree[E comparable] struct {
	arena[E]
}

// NewUnbounded returns an empty tree with insertion-ordered children.
func NewUnbounded[E comparable](opts ...Option) *UnboundedTree[E] {
	return &UnboundedTree[E]{
		arena: newArena[E](0, applyOptions(opts)),
	}
}

func (t *UnboundedTree[E]) Add(value E) (bool, error) {
	if root, ok := t.Root(); ok {
		return t.AddChild(root, value)
	}
	return t.AddRoot(value)
}

func (t *UnboundedTree[E]) AddRoot(value E) (bool, error) {
	return t.insertRoot(value)
}

func (t *UnboundedTree[E]) AddChild(parent, child E) (bool, error) {
	if isZero(child) {
		return false, invalidArgument("zero value nodes are not allowed")
	}
	if isZero(parent) {
		return t.AddRoot(child)
	}
	parentID, ok := t.lookup(parent)
	if !ok {
		return false, nodeNotFound(parent)
	}
	if _, exists := t.lookup(child); exists {
		return false, nil
	}

	id := t.push(child, parentID)
	t.nodes[parentID].children = append(t.nodes[parentID].children, id)
	t.log.Debug("node added", "node", child, "parent", parent, "id", id)
	return true, nil
}

func (t *UnboundedTree[E]) AddAll(values ...E) bool {
	added := false
	for _, v := range values {
		ok, _ := t.Add(v)
		added = ok || added
	}
	return added
}

func (t *UnboundedTree[E]) AddAllTo(parent E, values ...E) bool {
	for _, v := range values {
		if _, err := t.AddChild(parent, v); err != nil {
			t.log.Debug("bulk add aborted", "parent", parent, "node", v, "error", err)
			return false
		}
	}
	return true
}

// Siblings returns the other children of value's parent. The root has no
// parent, so asking for its siblings fails with ErrNodeNotFound.
func (t *UnboundedTree[E]) Siblings(value E) ([]E, error) {
	parent, ok, err := t.Parent(value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: parent could not be found for %v", ErrNodeNotFound, value)
	}
	children, err := t.Children(parent)
	if err != nil {
		return nil, err
	}
	return lo.Without(children, value), nil
}

// Leaves returns the nodes without children in level order.
func (t *UnboundedTree[E]) Leaves() []E {
	ids := lo.Filter(t.levelOrder(), func(id int, _ int) bool {
		return len(t.nodes[id].children) == 0
	})
	return t.valuesOf(ids)
}

// InOrder visits the first half of each node's children, then interleaves
// the node before each of the remaining children. A node with three or more
// children is therefore emitted more than once.
func (t *UnboundedTree[E]) InOrder() []E {
	return t.valuesOf(t.inOrder(interleavedPlan))
}

// Clone returns a deep copy that shares no storage with t.
func (t *UnboundedTree[E]) Clone() *UnboundedTree[E] {
	return &UnboundedTree[E]{arena: t.arena.clone()}
}

func (t *UnboundedTree[E]) String() string {
	return Render[E](t)
}
