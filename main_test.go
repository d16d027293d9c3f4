// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tfctl/difftree/internal/command"
	"github.com/tfctl/difftree/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program",
			args:     []string{"difftree"},
			expected: []string{"difftree"},
		},
		{
			name:     "no duplicates",
			args:     []string{"difftree", "--pager", "less", "--dump", "a", "b"},
			expected: []string{"difftree", "--pager", "less", "--dump", "a", "b"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"difftree", "--pager", "most", "--dump", "--pager", "less", "a", "b"},
			expected: []string{"difftree", "--dump", "--pager", "less", "a", "b"},
		},
		{
			name:     "duplicate boolean flag and alias",
			args:     []string{"difftree", "--dump", "-s", "-d", "a", "b"},
			expected: []string{"difftree", "-s", "-d", "a", "b"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"difftree", "--diff=colordiff", "--diff", "diff", "a", "b"},
			expected: []string{"difftree", "--diff", "diff", "a", "b"},
		},
		{
			name:     "value starting with a dash",
			args:     []string{"difftree", "--diff-args", "-u", "--diff-args", "-up", "a", "b"},
			expected: []string{"difftree", "--diff-args", "-up", "a", "b"},
		},
		{
			name:     "exclude accumulates",
			args:     []string{"difftree", "-x", "*.o", "--exclude", "build/", "a", "b"},
			expected: []string{"difftree", "-x", "*.o", "--exclude", "build/", "a", "b"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"difftree", "a", "--pager", "most", "b", "--pager", "less"},
			expected: []string{"difftree", "a", "b", "--pager", "less"},
		},
		{
			name:     "nothing after double dash is touched",
			args:     []string{"difftree", "--dump", "--", "--dump", "-d"},
			expected: []string{"difftree", "--dump", "--", "--dump", "-d"},
		},
		{
			name:     "value flag at end",
			args:     []string{"difftree", "a", "b", "--pager"},
			expected: []string{"difftree", "a", "b", "--pager"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProcessSets(t *testing.T) {
	cfg, err := filepath.Abs(filepath.Join("testdata", "sets.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvFile, cfg)
	config.Config = config.Type{}
	if _, err := config.Load(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { config.Config = config.Type{} })

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no sets",
			args:     []string{"difftree", "a", "b"},
			expected: []string{"difftree", "a", "b"},
		},
		{
			name:     "set expanded in place",
			args:     []string{"difftree", "@quiet", "a", "b"},
			expected: []string{"difftree", "--pager", "cat", "a", "b"},
		},
		{
			name:     "multi-word entries split",
			args:     []string{"difftree", "a", "b", "@fast"},
			expected: []string{"difftree", "a", "b", "--dump", "--exclude", "build/", "--exclude", "*.o"},
		},
		{
			name:     "unknown set kept as argument",
			args:     []string{"difftree", "@nope", "b"},
			expected: []string{"difftree", "@nope", "b"},
		},
		{
			name:     "nothing after double dash is expanded",
			args:     []string{"difftree", "@quiet", "--", "@left", "@quiet"},
			expected: []string{"difftree", "--pager", "cat", "--", "@left", "@quiet"},
		},
		{
			name:     "bare at sign kept",
			args:     []string{"difftree", "@", "b"},
			expected: []string{"difftree", "@", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := processSets(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("processSets() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProcessSets_RootAfterDoubleDash(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "none.yaml"))
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	args := []string{"difftree", "--dump", "--", "@left", "right"}
	expected := []string{"difftree", "--dump", "--", "@left", "right"}

	if result := deduplicateFlags(processSets(args)); !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestSetsThenDeduplicate(t *testing.T) {
	// An explicit flag after the set overrides the set's value.
	args := []string{"difftree", "--pager", "cat", "a", "b", "--pager", "less"}
	expected := []string{"difftree", "a", "b", "--pager", "less"}

	if result := deduplicateFlags(args); !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestHandleVersion(t *testing.T) {
	if !handleVersion([]string{"difftree", "-v"}) {
		t.Error("-v should be handled")
	}
	if !handleVersion([]string{"difftree", "a", "--version"}) {
		t.Error("--version should be handled")
	}
	if handleVersion([]string{"difftree", "a", "b"}) {
		t.Error("no version flag should not be handled")
	}
	if handleVersion([]string{"difftree", "--", "-v"}) {
		t.Error("-v after -- is a positional argument")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{command.ErrUsage, 1},
		{fmt.Errorf("%w: %w", command.ErrInvalidRoot, errors.New("stat")), 1},
		{errors.New("navigator failed"), 2},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
