// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package difftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Helpers(t *testing.T) {
	tests := []struct {
		kind   Kind
		isDir  bool
		isFile bool
		marker string
		name   string
	}{
		{Root, false, false, "", "root"},
		{FileEqual, false, true, "=", "file-equal"},
		{FileDiffers, false, true, "*", "file-differs"},
		{FileAdded, false, true, "+", "file-added"},
		{FileMissing, false, true, "-", "file-missing"},
		{DirEqual, true, false, "=", "dir-equal"},
		{DirDiffers, true, false, "*", "dir-differs"},
		{DirAdded, true, false, "+", "dir-added"},
		{DirMissing, true, false, "-", "dir-missing"},
		{Kind(42), false, false, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isDir, tt.kind.IsDir())
			assert.Equal(t, tt.isFile, tt.kind.IsFile())
			assert.Equal(t, tt.marker, tt.kind.Marker())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestNewTree(t *testing.T) {
	tree := NewTree()

	require.NotNil(t, tree.Root)
	assert.Equal(t, Root, tree.Root.Kind)
	assert.Empty(t, tree.Root.Name)
	assert.Nil(t, tree.Parent(tree.Root))
	assert.Equal(t, 0, tree.Depth(tree.Root))
	assert.Equal(t, 1, tree.Len())
}

func TestTree_AddParentDepthPath(t *testing.T) {
	tree := NewTree()
	a := tree.Add(tree.Root, "a", DirEqual)
	b := tree.Add(a, "b", DirEqual)
	c := tree.Add(b, "c.txt", FileEqual)

	assert.True(t, c.Expanded, "nodes start expanded")
	assert.Same(t, b, tree.Parent(c))
	assert.Same(t, a, tree.Parent(b))
	assert.Same(t, tree.Root, tree.Parent(a))
	assert.Same(t, c, tree.Node(c.ID()))
	assert.Nil(t, tree.Node(NodeID(99)))

	assert.Equal(t, 1, tree.Depth(a))
	assert.Equal(t, 3, tree.Depth(c))
	assert.Equal(t, "a/b/c.txt", tree.Path(c))
	assert.Equal(t, "a", tree.Path(a))
	assert.Equal(t, "", tree.Path(tree.Root))
}

func TestTree_MarkAncestorsDiffer(t *testing.T) {
	tree := NewTree()
	top := tree.Add(tree.Root, "top", DirEqual)
	added := tree.Add(top, "added", DirAdded)
	inner := tree.Add(added, "inner", DirEqual)
	leaf := tree.Add(inner, "leaf", FileDiffers)
	sibling := tree.Add(tree.Root, "sibling", DirEqual)

	tree.MarkAncestorsDiffer(leaf)

	assert.Equal(t, FileDiffers, leaf.Kind)
	assert.Equal(t, DirDiffers, inner.Kind)
	assert.Equal(t, DirAdded, added.Kind, "added directories never change")
	assert.Equal(t, DirDiffers, top.Kind, "walk continues past non-equal nodes")
	assert.Equal(t, DirEqual, sibling.Kind)
	assert.Equal(t, Root, tree.Root.Kind)
}

func TestTree_CollapseAll(t *testing.T) {
	tree := NewTree()
	full := tree.Add(tree.Root, "full", DirEqual)
	tree.Add(full, "x", FileEqual)
	empty := tree.Add(tree.Root, "empty", DirAdded)
	file := tree.Add(tree.Root, "f", FileEqual)

	tree.CollapseAll()

	assert.False(t, full.Expanded)
	assert.True(t, empty.Expanded, "childless directories keep their flag")
	assert.True(t, file.Expanded, "files keep their flag")
	assert.True(t, tree.Root.Expanded)
}

func TestTree_WalkAndCount(t *testing.T) {
	tree := NewTree()
	d := tree.Add(tree.Root, "d", DirDiffers)
	tree.Add(d, "a", FileDiffers)
	tree.Add(d, "b", FileEqual)
	tree.Add(tree.Root, "e", DirAdded)
	tree.Add(tree.Root, "m", FileMissing)

	var names []string
	tree.Walk(func(n *Node) bool {
		names = append(names, n.Name)
		return n.Name != "d"
	})
	assert.Equal(t, []string{"d", "e", "m"}, names, "returning false prunes children")

	c := tree.Count()
	assert.Equal(t, Tally{Equal: 1, Differs: 2, Added: 1, Missing: 1}, c)
	assert.Equal(t, 5, c.Total())
}

func TestTree_Release(t *testing.T) {
	tree := NewTree()
	d := tree.Add(tree.Root, "d", DirEqual)
	tree.Add(d, "x", FileEqual)

	tree.Release()
	assert.Nil(t, tree.Root)
	assert.Empty(t, d.Children)
	assert.Equal(t, 0, tree.Len())

	assert.NotPanics(t, tree.Release)
	assert.NotPanics(t, func() { tree.Walk(func(*Node) bool { return true }) })
}
