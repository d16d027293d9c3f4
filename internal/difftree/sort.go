// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package difftree

import "sort"

// Sort orders the children of every node by byte-wise name, top-down. The sort
// is stable: when a name is both Added and Missing because its type differs
// between the roots, the Added node stays first.
func Sort(t *Tree) {
	if t.Root != nil {
		SortChildren(t.Root)
	}
}

// SortChildren sorts n's children and then recurses into each of them.
func SortChildren(n *Node) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		return n.Children[i].Name < n.Children[j].Name
	})
	for _, c := range n.Children {
		SortChildren(c)
	}
}
