// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package navigator

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Command(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *Pipeline
		want     string
	}{
		{
			name:     "defaults",
			pipeline: NewPipeline("diff", []string{"-up"}, "less"),
			want:     "diff -up /a/f /b/f | less",
		},
		{
			name:     "commands with arguments",
			pipeline: NewPipeline("colordiff -w", []string{"-u"}, "less -R"),
			want:     "colordiff -w -u /a/f /b/f | less -R",
		},
		{
			name:     "no diff args",
			pipeline: NewPipeline("diff", nil, "more"),
			want:     "diff /a/f /b/f | more",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := tt.pipeline.Command("/a/f", "/b/f").(*pipelineCmd)
			require.True(t, ok)
			assert.Equal(t, tt.want, cmd.String())
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	for _, bin := range []string{"diff", "cat"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not available", bin)
		}
	}

	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("hello\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("goodbye\n"), 0o644))

	var out bytes.Buffer
	cmd := NewPipeline("diff", []string{"-u"}, "cat").Command(a, b)
	cmd.SetStdin(nil)
	cmd.SetStdout(&out)
	cmd.SetStderr(io.Discard)

	require.NoError(t, cmd.Run(), "a differing exit status from diff is not an error")
	assert.Contains(t, out.String(), "-hello")
	assert.Contains(t, out.String(), "+goodbye")
}

func TestPipeline_RunErrors(t *testing.T) {
	t.Run("empty pager", func(t *testing.T) {
		err := NewPipeline("diff", nil, "").Command("a", "b").Run()
		assert.Error(t, err)
	})

	t.Run("pager not found", func(t *testing.T) {
		err := NewPipeline("diff", nil, "/nonexistent/pager").Command("a", "b").Run()
		assert.ErrorContains(t, err, "failed to start pager")
	})

	t.Run("diff not found", func(t *testing.T) {
		if _, err := exec.LookPath("cat"); err != nil {
			t.Skip("cat not available")
		}
		cmd := NewPipeline("/nonexistent/diff", nil, "cat").Command("a", "b")
		cmd.SetStdout(io.Discard)
		assert.ErrorContains(t, cmd.Run(), "failed to start diff")
	})
}
