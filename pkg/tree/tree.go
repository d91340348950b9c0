package tree

import "iter"

// Tree is the capability set shared by UnboundedTree and BoundedTree.
//
// Nodes are identified by value: two equal values cannot coexist in one tree,
// and the zero value of E is never a valid node. Results that may be absent
// are returned as (value, ok) pairs.
type Tree[E comparable] interface {
	// Add attaches value under the root, or makes it the root of an empty tree.
	Add(value E) (bool, error)
	// AddRoot makes value the root. It fails with ErrInvalidArgument if the
	// tree already has one.
	AddRoot(value E) (bool, error)
	// AddChild attaches child under parent. It reports false if child is
	// already in the tree, and fails with ErrNodeNotFound if parent is not.
	AddChild(parent, child E) (bool, error)
	// AddAll adds each value with Add and reports whether any was added.
	AddAll(values ...E) bool
	// AddAllTo adds each value under parent. It stops at the first error and
	// reports false; rejected duplicates do not make it fail.
	AddAllTo(parent E, values ...E) bool

	Remove(value E) bool
	RemoveAll(values ...E) bool
	RetainAll(values ...E) bool
	Clear()

	Parent(value E) (E, bool, error)
	Children(value E) ([]E, error)
	Siblings(value E) ([]E, error)
	Leaves() []E
	Root() (E, bool)

	Size() int
	Depth() int
	IsEmpty() bool
	Contains(value E) bool
	ContainsAll(values ...E) bool

	PreOrder() []E
	InOrder() []E
	PostOrder() []E
	LevelOrder() []E

	Values() []E
	All() iter.Seq[E]
	ForEach(f func(E))
}

// NumberedTree is a Tree whose nodes have a fixed number of addressable
// child slots.
type NumberedTree[E comparable] interface {
	Tree[E]

	// AddAt attaches child under parent at slot index. It reports false if
	// the index is out of range, the slot is taken or child already exists.
	AddAt(parent, child E, index int) (bool, error)
	// Child returns the child in slot index of parent, or false for an empty slot.
	Child(parent E, index int) (E, bool, error)
	MaxChildren() int

	// IsAncestor reports whether node is a proper ancestor of child.
	IsAncestor(node, child E) (bool, error)
	// IsDescendant reports whether node is a proper descendant of parent.
	IsDescendant(parent, node E) (bool, error)
	// CommonAncestor returns the deepest node that is an ancestor of, or
	// equal to, both a and b.
	CommonAncestor(a, b E) (E, bool, error)
}

var (
	_ Tree[string]         = (*UnboundedTree[string])(nil)
	_ NumberedTree[string] = (*BoundedTree[string])(nil)
)
