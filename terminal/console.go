// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package terminal

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
)

// ConsoleUI returns a UI which will write to the current processes stdout/stderr.
// If stdout is a TTY the live glint based UI is used, otherwise the plain
// UI is returned.
func ConsoleUI(ctx context.Context) UI {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return GlintUI(ctx)
	}

	return NonInteractiveUI(ctx)
}
