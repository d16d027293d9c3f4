// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"path/filepath"

	"github.com/tfctl/difftree/internal/difftree"
)

// Navigator is the cursor and viewport over a comparison tree. Rows are
// addressed by ordinal: the 1-based position of a node in the pre-order
// sequence of the tree, descending only into expanded directories and leaving
// out Root. The sequence is recomputed on every call, so ordinals are only
// stable until the next expand or collapse.
type Navigator struct {
	tree  *difftree.Tree
	rootA string
	rootB string

	scroll   int
	selected int
	width    int
	height   int
}

// New returns a Navigator at the top of tree. rootA and rootB are joined with
// node paths when handing a file pair to the external viewer.
func New(tree *difftree.Tree, rootA, rootB string) *Navigator {
	return &Navigator{
		tree:   tree,
		rootA:  rootA,
		rootB:  rootB,
		width:  80,
		height: 24,
	}
}

func (n *Navigator) Tree() *difftree.Tree { return n.tree }
func (n *Navigator) SelectedIndex() int   { return n.selected }
func (n *Navigator) ScrollOffset() int    { return n.scroll }
func (n *Navigator) Width() int           { return n.width }
func (n *Navigator) Height() int          { return n.height }

// visit calls fn for each visible node in order until fn returns false.
func (n *Navigator) visit(fn func(node *difftree.Node) bool) {
	if n.tree == nil || n.tree.Root == nil {
		return
	}
	var walk func(node *difftree.Node) bool
	walk = func(node *difftree.Node) bool {
		for _, c := range node.Children {
			if !fn(c) {
				return false
			}
			if c.Expanded && !walk(c) {
				return false
			}
		}
		return true
	}
	walk(n.tree.Root)
}

// VisibleCount is the length of the visible sequence.
func (n *Navigator) VisibleCount() int {
	count := 0
	n.visit(func(*difftree.Node) bool {
		count++
		return true
	})
	return count
}

// NodeAtOrdinal returns the ordinal-th visible node (1-based).
func (n *Navigator) NodeAtOrdinal(ordinal int) (*difftree.Node, bool) {
	if ordinal < 1 {
		return nil, false
	}
	var found *difftree.Node
	i := 0
	n.visit(func(node *difftree.Node) bool {
		i++
		if i == ordinal {
			found = node
			return false
		}
		return true
	})
	return found, found != nil
}

// Visible returns up to limit visible nodes starting at the 0-based index
// offset.
func (n *Navigator) Visible(offset, limit int) []*difftree.Node {
	var out []*difftree.Node
	if limit <= 0 {
		return out
	}
	i := 0
	n.visit(func(node *difftree.Node) bool {
		if i >= offset {
			out = append(out, node)
		}
		i++
		return len(out) < limit
	})
	return out
}

// Selected returns the node under the cursor.
func (n *Navigator) Selected() (*difftree.Node, bool) {
	return n.NodeAtOrdinal(n.selected + 1)
}

// MoveUp moves the selection one row up.
func (n *Navigator) MoveUp() {
	n.selected--
	n.clamp()
}

// MoveDown moves the selection one row down.
func (n *Navigator) MoveDown() {
	n.selected++
	n.clamp()
}

// PageUp moves the viewport and the selection up by half a viewport.
func (n *Navigator) PageUp() {
	half := n.halfPage()
	n.scroll -= half
	n.selected -= half
	n.clamp()
}

// PageDown moves the viewport and the selection down by half a viewport.
func (n *Navigator) PageDown() {
	half := n.halfPage()
	n.scroll += half
	n.selected += half
	n.clamp()
}

func (n *Navigator) halfPage() int {
	return max(1, n.viewport()/2)
}

// SetExpanded sets the expanded flag of the ordinal-th visible node. Files,
// directories without children and unknown ordinals are left alone.
func (n *Navigator) SetExpanded(ordinal int, value bool) {
	node, ok := n.NodeAtOrdinal(ordinal)
	if !ok || !node.Expandable() {
		return
	}
	node.Expanded = value
	n.clamp()
}

// Activate acts on the selection: a directory is expanded; a differing file
// yields its absolute paths under both roots with ok set. Anything else is a
// no-op.
func (n *Navigator) Activate() (pathA, pathB string, ok bool) {
	node, found := n.Selected()
	if !found {
		return "", "", false
	}
	switch {
	case node.Kind.IsDir():
		n.SetExpanded(n.selected+1, true)
	case node.Kind == difftree.FileDiffers:
		return n.Paths(node)
	}
	return "", "", false
}

// Paths returns node's location under each root.
func (n *Navigator) Paths(node *difftree.Node) (pathA, pathB string, ok bool) {
	if n.tree == nil || node == nil {
		return "", "", false
	}
	rel := filepath.FromSlash(n.tree.Path(node))
	return filepath.Join(n.rootA, rel), filepath.Join(n.rootB, rel), true
}

// Resize records new geometry; height is the number of list rows.
func (n *Navigator) Resize(width, height int) {
	n.width = width
	n.height = height
	n.clamp()
}

// Scrollbar returns the thumb size and position in rows. The thumb spans the
// whole viewport while everything fits.
func (n *Navigator) Scrollbar() (size, pos int) {
	h := n.viewport()
	count := n.VisibleCount()
	if count <= h {
		return h, 0
	}
	size = int(float64(h) / (float64(count) / float64(h)))
	if size < 1 {
		size = 1
	}
	pos = int(float64(n.selected) / float64(count) * float64(h-size))
	return size, pos
}

func (n *Navigator) viewport() int {
	return max(1, n.height)
}

// clamp restores the viewport invariants:
//
//	0 <= selected < VisibleCount()
//	scroll <= selected <= scroll+viewport-1
//	scroll <= max(0, VisibleCount()-viewport)
func (n *Navigator) clamp() {
	count := n.VisibleCount()
	h := n.viewport()

	if n.selected > count-1 {
		n.selected = count - 1
	}
	if n.selected < 0 {
		n.selected = 0
	}

	maxScroll := max(0, count-h)
	if n.scroll > maxScroll {
		n.scroll = maxScroll
	}
	if n.scroll < 0 {
		n.scroll = 0
	}

	if n.selected < n.scroll {
		n.scroll = n.selected
	}
	if n.selected > n.scroll+h-1 {
		n.scroll = n.selected - h + 1
	}
}
