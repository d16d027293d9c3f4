// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import "github.com/tfctl/difftree/internal/config"

// Mode selects how a comparison is presented. It doubles as the config
// namespace, so "navigator.pager" applies only to interactive runs.
type Mode string

const (
	ModeNavigator Mode = "navigator"
	ModeDump      Mode = "dump"
)

// Meta contains runtime metadata shared by the command: the loaded
// configuration and the presentation mode.
type Meta struct {
	Config config.Type
	Mode   Mode
}

// Interactive reports whether the comparison is browsed in the navigator.
func (m Meta) Interactive() bool {
	return m.Mode == ModeNavigator
}
