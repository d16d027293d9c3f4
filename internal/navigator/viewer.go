// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tfctl/difftree/internal/log"
)

// Viewer produces the external command that shows the differences between
// two files. The program suspends the UI while it runs.
type Viewer interface {
	Command(pathA, pathB string) tea.ExecCommand
}

// Pipeline is a Viewer that runs `<diff> <args> a b | <pager>`. Diff and
// Pager may carry their own arguments, split on whitespace.
type Pipeline struct {
	Diff     string
	DiffArgs []string
	Pager    string
}

// NewPipeline returns a Pipeline viewer.
func NewPipeline(diff string, diffArgs []string, pager string) *Pipeline {
	return &Pipeline{Diff: diff, DiffArgs: diffArgs, Pager: pager}
}

// Command builds the pipeline for one file pair.
func (p *Pipeline) Command(pathA, pathB string) tea.ExecCommand {
	diffArgv := append(strings.Fields(p.Diff), p.DiffArgs...)
	diffArgv = append(diffArgv, pathA, pathB)
	return &pipelineCmd{
		diffArgv:  diffArgv,
		pagerArgv: strings.Fields(p.Pager),
	}
}

// pipelineCmd connects the diff's stdout to the pager's stdin through an OS
// pipe. The pager owns the terminal.
type pipelineCmd struct {
	diffArgv  []string
	pagerArgv []string

	stdout io.Writer
	stderr io.Writer
}

// SetStdin is a no-op: the pager's stdin is the diff output, and pagers read
// keys from /dev/tty.
func (c *pipelineCmd) SetStdin(io.Reader)    {}
func (c *pipelineCmd) SetStdout(w io.Writer) { c.stdout = w }
func (c *pipelineCmd) SetStderr(w io.Writer) { c.stderr = w }

func (c *pipelineCmd) String() string {
	return strings.Join(c.diffArgv, " ") + " | " + strings.Join(c.pagerArgv, " ")
}

// Run starts both processes and waits for them. The diff's exit status is
// only logged: 1 means the files differ, and a pager quitting early leaves
// the diff with a broken pipe.
func (c *pipelineCmd) Run() error {
	if len(c.diffArgv) == 0 || len(c.pagerArgv) == 0 {
		return errors.New("viewer: diff and pager commands must not be empty")
	}
	log.Debugf("viewer: %s", c)

	diff := exec.Command(c.diffArgv[0], c.diffArgv[1:]...)
	pager := exec.Command(c.pagerArgv[0], c.pagerArgv[1:]...)

	r, w, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("viewer: failed to create pipe: %w", err)
	}

	diff.Stdout = w
	diff.Stderr = c.stderr
	pager.Stdin = r
	pager.Stdout = c.stdout
	pager.Stderr = c.stderr

	if err := pager.Start(); err != nil {
		r.Close()
		w.Close()
		return fmt.Errorf("viewer: failed to start pager %q: %w", c.pagerArgv[0], err)
	}
	if err := diff.Start(); err != nil {
		r.Close()
		w.Close()
		_ = pager.Wait()
		return fmt.Errorf("viewer: failed to start diff %q: %w", c.diffArgv[0], err)
	}

	// Both children hold their own copies now.
	r.Close()
	w.Close()

	pagerErr := pager.Wait()
	if err := diff.Wait(); err != nil {
		log.Debugf("viewer: diff exited: %v", err)
	}
	if pagerErr != nil {
		return fmt.Errorf("viewer: pager failed: %w", pagerErr)
	}
	return nil
}
