// ## Overview
// Package tree implements generic in-memory trees with two interchangeable
// storage shapes behind one interface:
//
//   - UnboundedTree keeps each node's children in insertion order with no
//     limit on fan-out.
//   - BoundedTree gives each node a fixed number of numbered slots, so
//     children can be addressed by index (binary trees, B-ary trees). It also
//     implements NumberedTree, which adds ancestor and common-ancestor queries.
//
// Nodes are identified by value. Values must be comparable, unique within a
// tree and non-zero. Internally every node gets a dense integer id into an
// arena of records holding the value, the parent id and the child ids.
// Removing a node removes its whole subtree and leaves a tombstone; ids are
// never reused. Depth is a high-water mark and does not shrink on removal.
//
// Trees are not safe for concurrent use.
//
// ## Example usage:
//
//	bt, _ := tree.NewBounded[string](2)
//	bt.Add("A")             // root
//	bt.AddChild("A", "B")   // slot 0
//	bt.AddChild("A", "C")   // slot 1
//	bt.AddAt("B", "D", 0)
//
//	fmt.Println(bt.PreOrder())   // [A B D C]
//	fmt.Println(bt.LevelOrder()) // [A B C D]
//	lca, _, _ := bt.CommonAncestor("D", "C")
//	fmt.Println(lca)             // A
//
//	ut := tree.NewUnbounded[string]()
//	ut.AddAll("A", "B", "C", "E") // A is the root, the rest its children
//	siblings, _ := ut.Siblings("C")
//	fmt.Println(siblings)         // [B E]
package tree
