// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/difftree/internal/config"
	"github.com/tfctl/difftree/internal/meta"
)

// NewCompareFlags builds the root command's flags. pager and diff also take
// their values from the config file, namespaced by mode first.
func NewCompareFlags(m meta.Meta) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "dump",
			Aliases: []string{"d"},
			Usage:   "print the tree as text instead of browsing it",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "summary",
			Aliases: []string{"s"},
			Usage:   "print a tally line after the dump",
			Value:   false,
		},
		NewPagerFlag(string(m.Mode), m.Config.Source),
		NewDiffFlag(string(m.Mode), m.Config.Source),
		&cli.StringFlag{
			Name:  "diff-args",
			Usage: "arguments passed to the diff program, space separated",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("DIFFTREE_DIFF_ARGS"),
			),
		},
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"x"},
			Usage:   "skip entries matching a glob; a trailing / matches directories only",
			Validator: func(patterns []string) error {
				return FlagValidators(patterns, PatternValidator)
			},
		},
	}
}

// NewPagerFlag constructs the "pager" flag. params[1] is the config file.
func NewPagerFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "pager",
		Usage: "program the diff output is piped into",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIFFTREE_PAGER"),
			cli.EnvVar("PAGER"),
		),
		Value: config.DefaultPager,
		Validator: func(value string) error {
			return FlagValidators(value, ProgramValidator)
		},
	}

	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewDiffFlag constructs the "diff" flag. params[1] is the config file.
func NewDiffFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "diff",
		Usage: "program that compares a pair of differing files",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("DIFFTREE_DIFF"),
		),
		Value: config.DefaultDiff,
		Validator: func(value string) error {
			return FlagValidators(value, ProgramValidator)
		},
	}

	if len(params) == 2 && params[1] != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
