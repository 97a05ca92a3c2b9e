// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"

	"github.com/mattn/go-isatty"
)

// interactive reports whether prompts can be shown. Tests replace it.
var interactive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
