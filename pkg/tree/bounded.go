package tree

import (
	"slices"

	"github.com/samber/lo"
)

// BoundedTree gives every node exactly maxChildren numbered child slots, some
// of which may be empty. Children can be placed and read by slot index, which
// makes it a base for binary and other fixed-arity trees.
//
// Add and AddChild take the first free slot; use AddAt to choose one.
type BoundedTree[E comparable] struct {
	arena[E]
	maxChildren int
}

// NewBounded returns an empty tree whose nodes have maxChildren slots.
func NewBounded[E comparable](maxChildren int, opts ...Option) (*BoundedTree[E], error) {
	if maxChildren < 1 {
		return nil, invalidArgument("max children must be at least 1, got %d", maxChildren)
	}
	return &BoundedTree[E]{
		arena:       newArena[E](maxChildren, applyOptions(opts)),
		maxChildren: maxChildren,
	}, nil
}

func (t *BoundedTree[E]) MaxChildren() int {
	return t.maxChildren
}

func (t *BoundedTree[E]) Add(value E) (bool, error) {
	if root, ok := t.Root(); ok {
		return t.AddChild(root, value)
	}
	return t.AddRoot(value)
}

func (t *BoundedTree[E]) AddRoot(value E) (bool, error) {
	return t.insertRoot(value)
}

// AddChild puts child in the first empty slot of parent. It reports false
// when child already exists or parent has no free slot.
func (t *BoundedTree[E]) AddChild(parent, child E) (bool, error) {
	return t.addAt(parent, child, func(slots []int) int {
		return slices.Index(slots, noNode)
	})
}

func (t *BoundedTree[E]) AddAt(parent, child E, index int) (bool, error) {
	return t.addAt(parent, child, func(slots []int) int {
		if index < 0 || index >= len(slots) || slots[index] != noNode {
			return noNode
		}
		return index
	})
}

// addAt validates the request, asks pick for a slot under parent and links
// child there. pick returns noNode when no slot can be used.
func (t *BoundedTree[E]) addAt(parent, child E, pick func(slots []int) int) (bool, error) {
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
	slot := pick(t.nodes[parentID].children)
	if slot == noNode {
		return false, nil
	}

	id := t.push(child, parentID)
	t.nodes[parentID].children[slot] = id
	t.log.Debug("node added", "node", child, "parent", parent, "slot", slot, "id", id)
	return true, nil
}

func (t *BoundedTree[E]) AddAll(values ...E) bool {
	added := false
	for _, v := range values {
		ok, _ := t.Add(v)
		added = ok || added
	}
	return added
}

func (t *BoundedTree[E]) AddAllTo(parent E, values ...E) bool {
	for _, v := range values {
		if _, err := t.AddChild(parent, v); err != nil {
			t.log.Debug("bulk add aborted", "parent", parent, "node", v, "error", err)
			return false
		}
	}
	return true
}

// Child returns the node in slot index of parent. An empty slot reports false.
func (t *BoundedTree[E]) Child(parent E, index int) (E, bool, error) {
	var zero E
	id, err := t.resolve(parent)
	if err != nil {
		return zero, false, err
	}
	if index < 0 || index >= t.maxChildren {
		return zero, false, invalidArgument("slot %d out of range [0, %d)", index, t.maxChildren)
	}
	child := t.nodes[id].children[index]
	if child == noNode {
		return zero, false, nil
	}
	return t.nodes[child].value, true, nil
}

// Siblings returns the other children of value's parent. The root has none.
func (t *BoundedTree[E]) Siblings(value E) ([]E, error) {
	parent, ok, err := t.Parent(value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []E{}, nil
	}
	children, err := t.Children(parent)
	if err != nil {
		return nil, err
	}
	return lo.Without(children, value), nil
}

// Leaves returns the nodes with every slot empty, in insertion order.
func (t *BoundedTree[E]) Leaves() []E {
	leaves := []E{}
	for id := range t.nodes {
		n := &t.nodes[id]
		if !n.deleted && len(t.liveChildren(id)) == 0 {
			leaves = append(leaves, n.value)
		}
	}
	return leaves
}

// InOrder visits the first ceil(maxChildren/2) slots, the node, and then the
// remaining slots.
func (t *BoundedTree[E]) InOrder() []E {
	return t.valuesOf(t.inOrder(splitPlan))
}

// height counts the nodes from id up to the root.
func (t *BoundedTree[E]) height(id int) int {
	h := 0
	for ; id != noNode; id = t.nodes[id].parent {
		h++
	}
	return h
}

// hasAncestor walks up from id looking for ancestor, excluding id itself.
func (t *BoundedTree[E]) hasAncestor(id int, ancestor E) bool {
	for p := t.nodes[id].parent; p != noNode; p = t.nodes[p].parent {
		if t.nodes[p].value == ancestor {
			return true
		}
	}
	return false
}

func (t *BoundedTree[E]) IsAncestor(node, child E) (bool, error) {
	if isZero(node) {
		return false, invalidArgument("zero value nodes are not allowed")
	}
	id, err := t.resolve(child)
	if err != nil {
		return false, err
	}
	return t.hasAncestor(id, node), nil
}

func (t *BoundedTree[E]) IsDescendant(parent, node E) (bool, error) {
	if isZero(parent) {
		return false, invalidArgument("zero value nodes are not allowed")
	}
	id, err := t.resolve(node)
	if err != nil {
		return false, err
	}
	return t.hasAncestor(id, parent), nil
}

// CommonAncestor lifts the deeper of a and b to the height of the other and
// then walks both up in lock-step until they meet.
func (t *BoundedTree[E]) CommonAncestor(a, b E) (E, bool, error) {
	var zero E
	first, err := t.resolve(a)
	if err != nil {
		return zero, false, err
	}
	second, err := t.resolve(b)
	if err != nil {
		return zero, false, err
	}

	h1, h2 := t.height(first), t.height(second)
	for ; h1 > h2; h1-- {
		first = t.nodes[first].parent
	}
	for ; h2 > h1; h2-- {
		second = t.nodes[second].parent
	}
	for first != noNode && first != second {
		first = t.nodes[first].parent
		second = t.nodes[second].parent
	}
	if first == noNode {
		return zero, false, nil
	}
	return t.nodes[first].value, true, nil
}

// Clone returns a deep copy that shares no storage with t.
func (t *BoundedTree[E]) Clone() *BoundedTree[E] {
	return &BoundedTree[E]{
		arena:       t.arena.clone(),
		maxChildren: t.maxChildren,
	}
}

func (t *BoundedTree[E]) String() string {
	return Render[E](t)
}
