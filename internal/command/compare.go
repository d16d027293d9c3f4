// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/difftree/internal/config"
	"github.com/tfctl/difftree/internal/difftree"
	"github.com/tfctl/difftree/internal/log"
	"github.com/tfctl/difftree/internal/meta"
	"github.com/tfctl/difftree/internal/navigator"
	"github.com/tfctl/difftree/internal/util"
	"github.com/tfctl/difftree/internal/version"
)

var (
	// ErrUsage reports a command line that does not name two roots.
	ErrUsage = errors.New("expected two root directories")
	// ErrInvalidRoot reports a root that is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root")
)

// runNavigator is swapped out in tests.
var runNavigator = navigator.Run

func compareAction(ctx context.Context, cmd *cli.Command) error {
	m, _ := cmd.Metadata["meta"].(meta.Meta)

	if cmd.Args().Len() != 2 {
		fmt.Fprintf(cmd.Root().ErrWriter, "usage: %s [options] <root1> <root2>\n", version.Name)
		return ErrUsage
	}

	rootA, rootB, err := util.ResolveRoots(cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	settings := config.Resolve()
	exclude := append(settings.Exclude, cmd.StringSlice("exclude")...)
	diffArgs := settings.DiffArgs
	if cmd.IsSet("diff-args") {
		diffArgs = strings.Fields(cmd.String("diff-args"))
	}
	log.Debugf("exclude: %v, diff args: %v", exclude, diffArgs)

	tree := difftree.NewBuilder(difftree.WithExclude(exclude)).Compare(rootA, rootB)
	defer tree.Release()
	difftree.Sort(tree)

	if m.Interactive() && !cmd.Bool("dump") {
		tree.CollapseAll()
		viewer := navigator.NewPipeline(cmd.String("diff"), diffArgs, cmd.String("pager"))
		if err := runNavigator(tree, rootA, rootB, viewer); err != nil {
			return fmt.Errorf("navigator failed: %w", err)
		}
		return nil
	}

	w := cmd.Root().Writer
	if err := difftree.Dump(w, tree); err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	if cmd.Bool("summary") {
		if _, err := fmt.Fprintln(w, Summary(tree.Count())); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return nil
}

// Summary renders a tally as one line.
func Summary(c difftree.Tally) string {
	return fmt.Sprintf("%s entries: %s equal, %s differ, %s added, %s missing",
		humanize.Comma(int64(c.Total())),
		humanize.Comma(int64(c.Equal)),
		humanize.Comma(int64(c.Differs)),
		humanize.Comma(int64(c.Added)),
		humanize.Comma(int64(c.Missing)),
	)
}
