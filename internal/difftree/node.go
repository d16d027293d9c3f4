// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package difftree

import "strings"

// Kind classifies a node in the comparison tree.
type Kind int

const (
	Root Kind = iota
	FileEqual
	FileDiffers
	FileAdded
	FileMissing
	DirEqual
	DirDiffers
	DirAdded
	DirMissing
)

// Status is the kind with the file/directory distinction dropped.
type Status int

const (
	StatusNone Status = iota
	StatusEqual
	StatusDiffers
	StatusAdded
	StatusMissing
)

var kindNames = [...]string{
	Root:        "root",
	FileEqual:   "file-equal",
	FileDiffers: "file-differs",
	FileAdded:   "file-added",
	FileMissing: "file-missing",
	DirEqual:    "dir-equal",
	DirDiffers:  "dir-differs",
	DirAdded:    "dir-added",
	DirMissing:  "dir-missing",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsDir reports whether k is one of the directory kinds.
func (k Kind) IsDir() bool {
	switch k {
	case DirEqual, DirDiffers, DirAdded, DirMissing:
		return true
	}
	return false
}

// IsFile reports whether k is one of the file kinds.
func (k Kind) IsFile() bool {
	switch k {
	case FileEqual, FileDiffers, FileAdded, FileMissing:
		return true
	}
	return false
}

// Status folds k onto its classification.
func (k Kind) Status() Status {
	switch k {
	case FileEqual, DirEqual:
		return StatusEqual
	case FileDiffers, DirDiffers:
		return StatusDiffers
	case FileAdded, DirAdded:
		return StatusAdded
	case FileMissing, DirMissing:
		return StatusMissing
	}
	return StatusNone
}

// Marker is the one-character classification used by the dump and the
// navigator rows.
func (k Kind) Marker() string {
	switch k.Status() {
	case StatusEqual:
		return "="
	case StatusDiffers:
		return "*"
	case StatusAdded:
		return "+"
	case StatusMissing:
		return "-"
	}
	return ""
}

// NodeID indexes a node in its tree's node table. Parent links are NodeIDs so
// the downward Children slices are the only owning references.
type NodeID int

const noParent NodeID = -1

// Node is a classified file or directory entry.
type Node struct {
	Kind     Kind
	Name     string
	Children []*Node
	// Expanded only matters to the navigator and only for directories with
	// children.
	Expanded bool

	id     NodeID
	parent NodeID
}

// ID returns the node's index in its tree.
func (n *Node) ID() NodeID { return n.id }

// Expandable reports whether toggling Expanded has any visible effect.
func (n *Node) Expandable() bool {
	return n.Kind.IsDir() && len(n.Children) > 0
}

// Tree owns a comparison tree: the Root and a flat table used to resolve
// parent links.
type Tree struct {
	Root  *Node
	nodes []*Node
}

// NewTree returns a tree holding only its Root.
func NewTree() *Tree {
	t := &Tree{}
	t.Root = t.newNode(noParent, "", Root)
	return t
}

func (t *Tree) newNode(parent NodeID, name string, kind Kind) *Node {
	n := &Node{
		Kind:     kind,
		Name:     name,
		Expanded: true,
		id:       NodeID(len(t.nodes)),
		parent:   parent,
	}
	t.nodes = append(t.nodes, n)
	return n
}

// Add appends a new child of the given kind under parent and returns it.
func (t *Tree) Add(parent *Node, name string, kind Kind) *Node {
	n := t.newNode(parent.id, name, kind)
	parent.Children = append(parent.Children, n)
	return n
}

// Len is the number of nodes including Root.
func (t *Tree) Len() int { return len(t.nodes) }

// Node resolves an id, returning nil for ids outside the table.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Parent returns n's parent, or nil for Root.
func (t *Tree) Parent(n *Node) *Node {
	return t.Node(n.parent)
}

// Depth is 0 for Root and 1 for its immediate children.
func (t *Tree) Depth(n *Node) int {
	depth := 0
	for n != nil && n.Kind != Root {
		depth++
		n = t.Parent(n)
	}
	return depth
}

// Path joins the names from below Root down to n with "/".
func (t *Tree) Path(n *Node) string {
	var parts []string
	for n != nil && n.Kind != Root {
		parts = append(parts, n.Name)
		n = t.Parent(n)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// MarkAncestorsDiffer walks from n up to, but not including, Root and flips
// every DirEqual it meets to DirDiffers. The walk does not stop early at
// nodes that are already non-equal.
func (t *Tree) MarkAncestorsDiffer(n *Node) {
	for n != nil && n.Kind != Root {
		if n.Kind == DirEqual {
			n.Kind = DirDiffers
		}
		n = t.Parent(n)
	}
}

// CollapseAll collapses every directory that has children. Root is left
// alone; the navigator always treats the top level as expanded.
func (t *Tree) CollapseAll() {
	t.Walk(func(n *Node) bool {
		if n.Expandable() {
			n.Expanded = false
		}
		return true
	})
}

// Walk visits the tree in pre-order, excluding Root. Returning false from fn
// skips that node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	if t.Root == nil {
		return
	}
	var visit func(n *Node)
	visit = func(n *Node) {
		for _, c := range n.Children {
			if fn(c) {
				visit(c)
			}
		}
	}
	visit(t.Root)
}

// Release tears the tree down from Root. It is safe to call more than once.
func (t *Tree) Release() {
	if t.Root == nil {
		return
	}
	var release func(n *Node)
	release = func(n *Node) {
		for _, c := range n.Children {
			release(c)
		}
		n.Children = nil
	}
	release(t.Root)
	t.Root = nil
	t.nodes = nil
}

// Tally counts nodes by status.
type Tally struct {
	Equal   int
	Differs int
	Added   int
	Missing int
}

// Total is the number of classified entries.
func (c Tally) Total() int {
	return c.Equal + c.Differs + c.Added + c.Missing
}

// Count tallies every node below Root.
func (t *Tree) Count() Tally {
	var c Tally
	t.Walk(func(n *Node) bool {
		switch n.Kind.Status() {
		case StatusEqual:
			c.Equal++
		case StatusDiffers:
			c.Differs++
		case StatusAdded:
			c.Added++
		case StatusMissing:
			c.Missing++
		}
		return true
	})
	return c
}
