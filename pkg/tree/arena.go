package tree

import (
	"iter"
	"log/slog"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// noNode marks "no parent" and an unassigned child slot.
const noNode = -1

// node is one record of the arena. A removed node keeps its id and is
// flagged as deleted; ids are never reused.
type node[E comparable] struct {
	value    E
	parent   int
	children []int
	deleted  bool
}

// arena is the node store shared by both tree shapes. Parents own the ids of
// their children, never the children themselves.
//
// slots is zero for insertion-ordered children. When it is positive every
// node carries exactly slots child entries, unassigned ones holding noNode.
type arena[E comparable] struct {
	nodes []node[E]
	index map[E]int
	slots int
	size  int
	depth int
	log   *slog.Logger
}

func newArena[E comparable](slots int, cfg *config) arena[E] {
	return arena[E]{
		index: make(map[E]int),
		slots: slots,
		log:   cfg.logger,
	}
}

func isZero[E comparable](v E) bool {
	var zero E
	return v == zero
}

// lookup resolves a live value to its id.
func (a *arena[E]) lookup(v E) (int, bool) {
	id, ok := a.index[v]
	return id, ok
}

// resolve is lookup with the error contract of the query operations.
func (a *arena[E]) resolve(v E) (int, error) {
	if isZero(v) {
		return noNode, invalidArgument("zero value nodes are not allowed")
	}
	id, ok := a.lookup(v)
	if !ok {
		return noNode, nodeNotFound(v)
	}
	return id, nil
}

func (a *arena[E]) hasRoot() bool {
	return len(a.nodes) > 0 && !a.nodes[0].deleted
}

func (a *arena[E]) newChildren() []int {
	if a.slots == 0 {
		return nil
	}
	children := make([]int, a.slots)
	for i := range children {
		children[i] = noNode
	}
	return children
}

// liveChildren returns the assigned child ids of id in storage order.
func (a *arena[E]) liveChildren(id int) []int {
	children := a.nodes[id].children
	if a.slots == 0 {
		return children
	}
	return lo.Filter(children, func(c int, _ int) bool {
		return c != noNode
	})
}

// insertRoot stores v as node 0. It fails if a live root exists; a tree
// whose root was removed starts over with a fresh arena, keeping depth.
func (a *arena[E]) insertRoot(v E) (bool, error) {
	if isZero(v) {
		return false, invalidArgument("zero value nodes are not allowed")
	}
	if a.size > 0 {
		return false, invalidArgument("root already exists, parent cannot be empty for %v", v)
	}
	if len(a.nodes) > 0 {
		a.nodes = a.nodes[:0]
		clear(a.index)
	}
	a.push(v, noNode)
	a.log.Debug("root added", "node", v)
	return true, nil
}

// push appends a node record, links it under parent and updates the counters.
// The caller has already validated the parent and reserved the slot.
func (a *arena[E]) push(v E, parent int) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, node[E]{
		value:    v,
		parent:   parent,
		children: a.newChildren(),
	})
	a.index[v] = id
	a.size++
	a.trackDepth(id)
	return id
}

// trackDepth raises the depth high-water mark to the length of the path from
// id to the root, counted in nodes.
func (a *arena[E]) trackDepth(id int) {
	length := 1
	for p := a.nodes[id].parent; p != noNode; p = a.nodes[p].parent {
		length++
	}
	a.depth = max(a.depth, length)
}

// detach clears the reference parent holds to child.
func (a *arena[E]) detach(parent, child int) {
	children := a.nodes[parent].children
	if a.slots == 0 {
		a.nodes[parent].children = slices.DeleteFunc(children, func(c int) bool {
			return c == child
		})
		return
	}
	for i, c := range children {
		if c == child {
			children[i] = noNode
		}
	}
}

// removeSubtree deletes id and everything below it, top-down, and returns
// the number of nodes removed.
func (a *arena[E]) removeSubtree(id int) int {
	if parent := a.nodes[id].parent; parent != noNode {
		a.detach(parent, id)
	}
	removed := 0
	stack := []int{id}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if a.nodes[current].deleted {
			continue
		}
		children := slices.Clone(a.liveChildren(current))

		n := &a.nodes[current]
		delete(a.index, n.value)
		var zero E
		n.value = zero
		n.parent = noNode
		n.deleted = true
		n.children = a.newChildren()
		a.size--
		removed++

		stack = append(stack, children...)
	}
	return removed
}

func (a *arena[E]) valuesOf(ids []int) []E {
	values := make([]E, 0, len(ids))
	for _, id := range ids {
		values = append(values, a.nodes[id].value)
	}
	return values
}

func (a *arena[E]) clone() arena[E] {
	nodes := make([]node[E], len(a.nodes))
	for i, n := range a.nodes {
		n.children = slices.Clone(n.children)
		nodes[i] = n
	}
	return arena[E]{
		nodes: nodes,
		index: maps.Clone(a.index),
		slots: a.slots,
		size:  a.size,
		depth: a.depth,
		log:   a.log,
	}
}

// Size returns the number of live nodes.
func (a *arena[E]) Size() int {
	return a.size
}

// Depth returns the largest number of nodes ever seen on a root-to-leaf path.
// Removals never lower it.
func (a *arena[E]) Depth() int {
	return a.depth
}

func (a *arena[E]) IsEmpty() bool {
	return a.size == 0
}

// Contains reports whether v is a live node. The zero value is never contained.
func (a *arena[E]) Contains(v E) bool {
	if isZero(v) {
		return false
	}
	_, ok := a.lookup(v)
	return ok
}

func (a *arena[E]) ContainsAll(values ...E) bool {
	return lo.EveryBy(values, a.Contains)
}

// Root returns the root value, or false when the tree is empty.
func (a *arena[E]) Root() (E, bool) {
	if !a.hasRoot() {
		var zero E
		return zero, false
	}
	return a.nodes[0].value, true
}

// Parent returns the parent of v. The root has no parent and reports false.
func (a *arena[E]) Parent(v E) (E, bool, error) {
	var zero E
	id, err := a.resolve(v)
	if err != nil {
		return zero, false, err
	}
	parent := a.nodes[id].parent
	if parent == noNode {
		return zero, false, nil
	}
	return a.nodes[parent].value, true, nil
}

// Children returns the live children of v in storage order.
func (a *arena[E]) Children(v E) ([]E, error) {
	id, err := a.resolve(v)
	if err != nil {
		return nil, err
	}
	return a.valuesOf(a.liveChildren(id)), nil
}

func (a *arena[E]) PreOrder() []E {
	return a.valuesOf(a.preOrder())
}

func (a *arena[E]) PostOrder() []E {
	return a.valuesOf(a.postOrder())
}

func (a *arena[E]) LevelOrder() []E {
	return a.valuesOf(a.levelOrder())
}

// Values returns every live value in node-id order.
func (a *arena[E]) Values() []E {
	return slices.Collect(a.All())
}

// All yields every live value in node-id order.
func (a *arena[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := range a.nodes {
			if a.nodes[i].deleted {
				continue
			}
			if !yield(a.nodes[i].value) {
				return
			}
		}
	}
}

// ForEach calls f for each live value in pre-order.
func (a *arena[E]) ForEach(f func(E)) {
	for _, id := range a.preOrder() {
		f(a.nodes[id].value)
	}
}

// Remove deletes v and its whole subtree. It reports false if v is not in the tree.
func (a *arena[E]) Remove(v E) bool {
	if isZero(v) {
		return false
	}
	id, ok := a.lookup(v)
	if !ok {
		return false
	}
	removed := a.removeSubtree(id)
	a.log.Debug("subtree removed", "node", v, "id", id, "removed", removed)
	return true
}

func (a *arena[E]) RemoveAll(values ...E) bool {
	changed := false
	for _, v := range values {
		changed = a.Remove(v) || changed
	}
	return changed
}

// RetainAll removes every node whose value is not in values, together with
// its subtree.
func (a *arena[E]) RetainAll(values ...E) bool {
	keep := lo.Keyify(values)
	changed := false
	for _, v := range a.Values() {
		if _, ok := keep[v]; ok {
			continue
		}
		changed = a.Remove(v) || changed
	}
	return changed
}

// Clear drops every node and resets depth.
func (a *arena[E]) Clear() {
	a.nodes = nil
	clear(a.index)
	a.size = 0
	a.depth = 0
	a.log.Debug("tree cleared")
}
