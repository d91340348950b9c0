package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUnboundedAs builds an unbounded tree from parent/child pairs; an empty
// parent adds the root.
func newUnboundedAs(t *testing.T, edges [][2]string) *UnboundedTree[string] {
	t.Helper()
	tr := NewUnbounded[string]()
	for _, edge := range edges {
		ok, err := tr.AddChild(edge[0], edge[1])
		require.NoError(t, err)
		require.True(t, ok, "edge %v should be added", edge)
	}
	return tr
}

// TestUnboundedChildrenKeepInsertionOrder verifies children and siblings follow insertion order.
func TestUnboundedChildrenKeepInsertionOrder(t *testing.T) {
	tr := NewUnbounded[string]()
	ok, err := tr.Add("A")
	require.NoError(t, err)
	assert.True(t, ok)
	for _, v := range []string{"B", "C", "E"} {
		ok, err := tr.AddChild("A", v)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	children, err := tr.Children("A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "E"}, children)

	siblings, err := tr.Siblings("C")
	assert.NoError(t, err)
	assert.Equal(t, []string{"B", "E"}, siblings)

	assert.Equal(t, 4, tr.Size())
	assert.Equal(t, 2, tr.Depth())
}

// TestUnboundedSiblingsOfRootFails verifies the root has no parent to take siblings from.
func TestUnboundedSiblingsOfRootFails(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{{"", "A"}, {"A", "B"}})

	_, err := tr.Siblings("A")
	assert.ErrorIs(t, err, ErrNodeNotFound)

	_, err = tr.Siblings("missing")
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

// TestUnboundedInOrderInterleaves verifies the node is emitted before every child from len/2 on.
func TestUnboundedInOrderInterleaves(t *testing.T) {
	testCases := []struct {
		name     string
		edges    [][2]string
		expected []string
	}{
		{"single node", [][2]string{{"", "A"}}, []string{"A"}},
		{"one child", [][2]string{{"", "A"}, {"A", "B"}}, []string{"A", "B"}},
		{"two children", [][2]string{{"", "A"}, {"A", "B"}, {"A", "C"}}, []string{"B", "A", "C"}},
		{"three children", [][2]string{{"", "A"}, {"A", "B"}, {"A", "C"}, {"A", "E"}}, []string{"B", "A", "C", "A", "E"}},
		{"nested", [][2]string{{"", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}}, []string{"B", "D", "A", "C"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := newUnboundedAs(t, tc.edges)
			assert.Equal(t, tc.expected, tr.InOrder())
		})
	}
}

// TestUnboundedLeavesInLevelOrder verifies leaves are reported breadth first.
func TestUnboundedLeavesInLevelOrder(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{
		{"", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}, {"A", "F"},
	})
	assert.Equal(t, []string{"F", "D", "E"}, tr.Leaves())

	tr.Remove("C")
	assert.Equal(t, []string{"F", "D"}, tr.Leaves())
}

// TestUnboundedRemoveCascades verifies removing an inner node removes every descendant.
func TestUnboundedRemoveCascades(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{
		{"", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}, {"B", "F"}, {"F", "G"}, {"B", "H"},
	})
	require.Equal(t, 7, tr.Size())

	assert.True(t, tr.Remove("B"))
	assert.Equal(t, 2, tr.Size())
	assert.Equal(t, []string{"A", "C"}, tr.PreOrder())
	for _, gone := range []string{"B", "D", "F", "G", "H"} {
		assert.False(t, tr.Contains(gone), "%s should be removed with its ancestor", gone)
	}

	children, err := tr.Children("A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"C"}, children)
	assert.Equal(t, 4, tr.Depth(), "depth is a high-water mark")
}

// TestUnboundedAddAllTo verifies duplicates are folded into success and a missing parent aborts.
func TestUnboundedAddAllTo(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{{"", "A"}})

	assert.True(t, tr.AddAllTo("A", "B", "C", "B"))
	assert.Equal(t, 3, tr.Size())

	assert.False(t, tr.AddAllTo("missing", "X", "Y"))
	assert.Equal(t, 3, tr.Size())

	assert.False(t, tr.AddAllTo("A", "D", "", "E"), "a zero value aborts the bulk add")
	assert.True(t, tr.Contains("D"))
	assert.False(t, tr.Contains("E"))
}

// TestUnboundedClone verifies a clone is independent from the original.
func TestUnboundedClone(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{{"", "A"}, {"A", "B"}, {"A", "C"}, {"B", "D"}})
	tr.Remove("C")

	clone := tr.Clone()
	assert.Equal(t, tr.Values(), clone.Values())
	assert.Equal(t, tr.Size(), clone.Size())

	_, err := clone.AddChild("D", "X")
	require.NoError(t, err)
	clone.Remove("B")
	_, err = clone.AddChild("A", "C")
	require.NoError(t, err)

	children, err := tr.Children("A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"B"}, children)
	assert.Equal(t, []string{"A", "B", "D"}, tr.PreOrder())
	assert.Equal(t, 3, tr.Depth())
	assert.Equal(t, 4, clone.Depth())
	assert.Equal(t, []string{"A", "C"}, clone.PreOrder())
}
