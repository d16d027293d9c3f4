// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package difftree

import (
	"bufio"
	"io"
	"strings"
)

// Dump writes every node below Root in pre-order, one per line, regardless of
// Expanded:
//
//	<(depth-1)*2 spaces><marker><name>[/]
func Dump(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Walk(func(n *Node) bool {
		if err != nil {
			return false
		}
		_, err = bw.WriteString(Line(t, n) + "\n")
		return true
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Line renders a node without trailing newline. The navigator uses the same
// layout for its rows.
func Line(t *Tree, n *Node) string {
	var sb strings.Builder
	if depth := t.Depth(n); depth > 1 {
		sb.WriteString(strings.Repeat("  ", depth-1))
	}
	sb.WriteString(n.Kind.Marker())
	sb.WriteString(n.Name)
	if n.Kind.IsDir() {
		sb.WriteByte('/')
	}
	return sb.String()
}
