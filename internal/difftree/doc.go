// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package difftree compares two directory roots and builds a single tree in
// which every file and directory reachable under either root is classified as
// equal, differing, added (only under the first root) or missing (only under
// the second root). A differing or one-sided entry marks every equal ancestor
// directory as differing.
package difftree
