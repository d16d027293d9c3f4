// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/tfctl/difftree/internal/command"
	"github.com/tfctl/difftree/internal/config"
	"github.com/tfctl/difftree/internal/log"
	"github.com/tfctl/difftree/internal/version"
)

var ctx = context.Background()

// valueFlags take the following argument as their value. Everything else
// that looks like a flag is boolean.
var valueFlags = map[string]string{
	"--pager":     "pager",
	"--diff":      "diff",
	"--diff-args": "diff-args",
	"--exclude":   "exclude",
	"-x":          "exclude",
}

// boolFlags maps aliases onto a canonical name for deduplication.
var boolFlags = map[string]string{
	"--dump":    "dump",
	"-d":        "dump",
	"--summary": "summary",
	"-s":        "summary",
}

// repeatable flags accumulate instead of being deduplicated.
var repeatable = map[string]bool{
	"exclude": true,
}

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return true
		}
	}
	return false
}

// processSets expands every @name argument into the whitespace-split entries
// of the config list sets.name. An @name with no such set is kept as a plain
// argument, and nothing after "--" is expanded.
func processSets(args []string) []string {
	if len(args) < 2 {
		return args
	}
	out := []string{args[0]}
	for i, a := range args[1:] {
		if a == "--" {
			return append(out, args[i+1:]...)
		}
		name, ok := strings.CutPrefix(a, "@")
		if !ok || name == "" {
			out = append(out, a)
			continue
		}
		entries, err := config.GetStringSlice("sets." + name)
		if err != nil {
			log.Debugf("no argument set %s, keeping %s", name, a)
			out = append(out, a)
			continue
		}
		out = append(out, expandEntries(entries)...)
	}
	return out
}

func expandEntries(entries []string) []string {
	return lo.FlatMap(entries, func(entry string, _ int) []string {
		return strings.Fields(entry)
	})
}

// deduplicateFlags removes earlier occurrences of a flag repeated later on
// the command line, keeping positional arguments and repeatable flags.
// Nothing after "--" is touched.
func deduplicateFlags(args []string) []string {
	if len(args) < 2 {
		return args
	}

	type token struct {
		key  string
		args []string
	}

	var tokens []token
	var rest []string
	for i := 1; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			rest = args[i:]
			break
		}

		name, _, hasValue := strings.Cut(a, "=")
		if key, ok := valueFlags[name]; ok {
			if !hasValue && i+1 < len(args) {
				tokens = append(tokens, token{key, []string{a, args[i+1]}})
				i++
				continue
			}
			tokens = append(tokens, token{key, []string{a}})
			continue
		}
		if key, ok := boolFlags[name]; ok {
			tokens = append(tokens, token{key, []string{a}})
			continue
		}
		tokens = append(tokens, token{"", []string{a}})
	}

	last := map[string]int{}
	for i, tok := range tokens {
		if tok.key != "" {
			last[tok.key] = i
		}
	}

	out := []string{args[0]}
	for i, tok := range tokens {
		if tok.key != "" && !repeatable[tok.key] && last[tok.key] != i {
			continue
		}
		out = append(out, tok.args...)
	}
	return append(out, rest...)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return exitCode(err)
	}

	return 0
}

// exitCode maps startup failures to 1 and everything else to 2.
func exitCode(err error) int {
	if errors.Is(err, command.ErrUsage) || errors.Is(err, command.ErrInvalidRoot) {
		return 1
	}
	return 2
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = deduplicateFlags(processSets(args))
	log.Debugf("args after set processing: args=%v", args)

	return initAndRunApp(args)
}
