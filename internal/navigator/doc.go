// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package navigator browses a comparison tree on the terminal. A Navigator
// holds the cursor and viewport; Model drives it from key events and hands
// differing file pairs to a Viewer, suspending the UI while it runs.
package navigator
