// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot turns a comparison root given on the command line into a clean
// absolute directory path. The external diff viewer is launched with paths
// derived from these roots, so relative roots are anchored to the CWD here. It
// returns an error if the fs entry does not exist, is empty or is not a
// directory.
func ResolveRoot(root string) (string, error) {
	if root == "" {
		return "", os.ErrInvalid
	}

	dir, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}

	if r, err := os.Stat(dir); err != nil {
		return "", err
	} else if !r.IsDir() {
		return "", fmt.Errorf("%s: %w", dir, os.ErrInvalid)
	}

	return dir, nil
}

// ResolveRoots resolves both comparison roots, reporting which one failed.
func ResolveRoots(rootA, rootB string) (string, string, error) {
	a, err := ResolveRoot(rootA)
	if err != nil {
		return "", "", fmt.Errorf("invalid root1 (%s): %w", rootA, err)
	}
	b, err := ResolveRoot(rootB)
	if err != nil {
		return "", "", fmt.Errorf("invalid root2 (%s): %w", rootB, err)
	}
	return a, b, nil
}
