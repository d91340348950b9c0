package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRender verifies nodes are drawn under their parents in storage order.
func TestRender(t *testing.T) {
	tr := newBinaryTree(t)
	out := Render[string](tr)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "A", lines[0])
	assert.Contains(t, lines[1], "── B")
	assert.Contains(t, lines[2], "── D")
	assert.Contains(t, lines[3], "── C")
	assert.Equal(t, out, tr.String())
}

// TestRenderSkipsRemoved verifies removed subtrees are not drawn.
func TestRenderSkipsRemoved(t *testing.T) {
	tr := newUnboundedAs(t, [][2]string{{"", "A"}, {"A", "B"}, {"B", "C"}, {"A", "D"}})
	tr.Remove("B")

	out := tr.String()
	assert.NotContains(t, out, "B")
	assert.NotContains(t, out, "C")
	assert.Contains(t, out, "D")

	assert.Empty(t, Render[string](NewUnbounded[string]()))
}
