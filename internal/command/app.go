// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/difftree/internal/config"
	"github.com/tfctl/difftree/internal/log"
	"github.com/tfctl/difftree/internal/meta"
	"github.com/tfctl/difftree/internal/version"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The mode is known before parsing so it can serve as the config namespace
	// for flag sources. --dump or a non-terminal stdout means a plain dump.
	mode := meta.ModeDump
	if term.IsTerminal(int(os.Stdout.Fd())) && !hasArg(args, "--dump", "-d") {
		mode = meta.ModeNavigator
	}
	config.Config.Namespace = string(mode)
	log.Debugf("mode: %s, config: %s", mode, config.Config.Source)

	meta := meta.Meta{
		Config: config.Config,
		Mode:   mode,
	}

	app := &cli.Command{
		Name:      version.Name,
		Usage:     "compare two directory trees",
		ArgsUsage: "<root1> <root2>",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "difftree version info",
				HideDefault: true,
			},
		}, NewCompareFlags(meta)...),
		Action:   compareAction,
		Metadata: map[string]any{"meta": meta},
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}

// hasArg reports whether any of names appears in args before a "--".
func hasArg(args []string, names ...string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		for _, n := range names {
			if a == n {
				return true
			}
		}
	}
	return false
}
