// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other difftree packages to avoid import cycles.

package version

import "runtime/debug"

// Name is the program name used in usage text and log output.
const Name = "difftree"

// Version is the module version stamped by the Go toolchain, or "dev" for
// local builds.
var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// String renders "name version" for --version output.
func String() string {
	return Name + " " + Version
}
