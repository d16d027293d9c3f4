// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package difftree

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/tfctl/difftree/internal/log"
)

// bufferSize is the read buffer used for each side of a byte comparison.
const bufferSize = 32 * 1024

// Builder walks two directory roots and classifies every entry under either.
type Builder struct {
	exclude []string
}

// Option configures a Builder.
type Option func(*Builder)

// WithExclude skips entries matching any of the glob patterns. A pattern
// ending in "/" matches directory names only; a pattern containing "/" is
// also matched against the path relative to the roots.
func WithExclude(patterns []string) Option {
	return func(b *Builder) {
		b.exclude = append(b.exclude, patterns...)
	}
}

// NewBuilder returns a Builder with the given options applied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Compare builds a fully classified tree for pathA against pathB using the
// default Builder. Children are in directory-listing order; call Sort before
// presenting the tree.
func Compare(pathA, pathB string) *Tree {
	return NewBuilder().Compare(pathA, pathB)
}

// Compare builds a fully classified tree for pathA against pathB. Entries only
// under pathA are Added, entries only under pathB are Missing. Filesystem
// errors are logged and the affected entry or subtree skipped.
func (b *Builder) Compare(pathA, pathB string) *Tree {
	t := NewTree()
	log.Debugf("comparing %s against %s", pathA, pathB)
	b.compareDir(t, t.Root, pathA, pathB, "")
	return t
}

// compareDir classifies the entries of one pair of corresponding directories
// under current. A's listing pairs entries and finds the Added ones; B's
// listing then only looks for entries A does not have.
func (b *Builder) compareDir(t *Tree, current *Node, dirA, dirB, rel string) {
	log.Tracef("compare dir: %s", rel)

	namesA, err := listDir(dirA)
	if err != nil {
		log.Warnf("unable to open directory: %s: %v", dirA, err)
		return
	}

	for _, name := range namesA {
		pathA := filepath.Join(dirA, name)
		pathB := filepath.Join(dirB, name)
		relPath := joinRel(rel, name)

		stA, err := os.Stat(pathA)
		if err != nil {
			log.Warnf("unable to stat path: %s: %v", pathA, err)
			continue
		}
		if b.excluded(relPath, stA.IsDir()) {
			log.Tracef("excluded: %s", relPath)
			continue
		}
		stB, errB := os.Stat(pathB)

		switch {
		case stA.IsDir():
			if errB != nil || !stB.IsDir() {
				n := t.Add(current, name, DirAdded)
				t.MarkAncestorsDiffer(n)
				b.mirror(t, n, pathA, relPath, DirAdded, FileAdded)
				continue
			}
			n := t.Add(current, name, DirEqual)
			b.compareDir(t, n, pathA, pathB, relPath)

		case stA.Mode().IsRegular():
			if errB != nil || !stB.Mode().IsRegular() {
				t.MarkAncestorsDiffer(t.Add(current, name, FileAdded))
				continue
			}
			if stA.Size() != stB.Size() || filesDiffer(pathA, pathB) {
				t.MarkAncestorsDiffer(t.Add(current, name, FileDiffers))
				continue
			}
			t.Add(current, name, FileEqual)
		}
	}

	namesB, err := listDir(dirB)
	if err != nil {
		log.Warnf("unable to open directory: %s: %v", dirB, err)
		return
	}

	for _, name := range namesB {
		pathA := filepath.Join(dirA, name)
		pathB := filepath.Join(dirB, name)
		relPath := joinRel(rel, name)

		stB, err := os.Stat(pathB)
		if err != nil {
			log.Warnf("unable to stat path: %s: %v", pathB, err)
			continue
		}
		if b.excluded(relPath, stB.IsDir()) {
			continue
		}
		stA, errA := os.Stat(pathA)

		switch {
		case stB.IsDir():
			if errA != nil || !stA.IsDir() {
				n := t.Add(current, name, DirMissing)
				t.MarkAncestorsDiffer(n)
				b.mirror(t, n, pathB, relPath, DirMissing, FileMissing)
			}

		case stB.Mode().IsRegular():
			if errA != nil || !stA.Mode().IsRegular() {
				t.MarkAncestorsDiffer(t.Add(current, name, FileMissing))
			}
		}
	}
}

// mirror copies the real subtree at dir under current, classifying every
// directory as dirKind and every regular file as fileKind.
func (b *Builder) mirror(t *Tree, current *Node, dir, rel string, dirKind, fileKind Kind) {
	names, err := listDir(dir)
	if err != nil {
		log.Warnf("unable to open directory: %s: %v", dir, err)
		return
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		relPath := joinRel(rel, name)

		st, err := os.Stat(path)
		if err != nil {
			log.Warnf("unable to stat path: %s: %v", path, err)
			continue
		}
		if b.excluded(relPath, st.IsDir()) {
			continue
		}

		switch {
		case st.IsDir():
			n := t.Add(current, name, dirKind)
			b.mirror(t, n, path, relPath, dirKind, fileKind)
		case st.Mode().IsRegular():
			t.Add(current, name, fileKind)
		}
	}
}

// excluded applies the configured patterns to one entry.
func (b *Builder) excluded(relPath string, isDir bool) bool {
	base := filepath.Base(relPath)
	for _, pattern := range b.exclude {
		if dirPattern, ok := strings.CutSuffix(pattern, "/"); ok {
			if !isDir {
				continue
			}
			if matched, _ := filepath.Match(dirPattern, base); matched || base == dirPattern {
				return true
			}
			continue
		}

		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return true
		}
		if strings.Contains(pattern, "/") {
			if matched, err := filepath.Match(pattern, relPath); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// listDir returns the entry names of dir, leaving out dot-files.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !strings.HasPrefix(e.Name(), ".")
	}), nil
}

func joinRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

// filesDiffer compares two files of equal size byte by byte and stops at the
// first mismatch. If either file cannot be opened or read, the bytes not yet
// compared count as equal.
// TODO: report unverifiable pairs with their own status once the navigator
// has a color for it.
func filesDiffer(pathA, pathB string) bool {
	fa, err := os.Open(pathA)
	if err != nil {
		log.Warnf("unable to open file: %s: %v", pathA, err)
		return false
	}
	defer fa.Close()

	fb, err := os.Open(pathB)
	if err != nil {
		log.Warnf("unable to open file: %s: %v", pathB, err)
		return false
	}
	defer fb.Close()

	ra := bufio.NewReaderSize(fa, bufferSize)
	rb := bufio.NewReaderSize(fb, bufferSize)

	for {
		ca, err := ra.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warnf("unable to read file: %s: %v", pathA, err)
			}
			return false
		}

		cb, err := rb.ReadByte()
		if errors.Is(err, io.EOF) {
			// B is shorter than its stat size said; that is a real difference.
			return true
		}
		if err != nil {
			log.Warnf("unable to read file: %s: %v", pathB, err)
			return false
		}

		if ca != cb {
			return true
		}
	}
}
