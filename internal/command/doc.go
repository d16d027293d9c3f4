// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the difftree CLI. It wires flags, validators and
// the compare action that builds the tree and either browses or dumps it.
package command
