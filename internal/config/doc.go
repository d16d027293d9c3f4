// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for difftree's user
// configuration. The configuration is an optional YAML document located via
// $DIFFTREE_CFG_FILE or in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/difftree.yaml or $HOME/.config/difftree.yaml
//   - macOS: $HOME/Library/Application Support/difftree.yaml
//
// Recognised keys are pager, diff, diff-args and exclude, each optionally
// nested under a command namespace.
package config
