// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/posener/complete"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/version"
	"github.com/ibm-security/iag-config/terminal"
)

type VersionCommand struct {
	*baseCommand

	Version *version.VersionInfo
}

func (c *VersionCommand) Run(args []string) int {
	flagSet := c.Flags()
	c.cmdKey = "version"

	// Initialize. If we fail, we just exit since Init handles the UI.
	if err := c.Init(WithNoArgs(args), WithFlags(flagSet)); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())
		return 1
	}

	c.ui.Output(c.Version.FullVersionNumber(true), terminal.WithStyle(terminal.BoldStyle))
	c.ui.Output("Latest supported gateway release: " + gateway.Latest().String())

	// Exit zero since we have completed successfully.
	return 0
}

func (c *VersionCommand) Flags() *flag.Sets {
	return c.flagSet(0, nil)
}

func (c *VersionCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *VersionCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *VersionCommand) Synopsis() string {
	return helpText["version"][0]
}

func (c *VersionCommand) Help() string {
	return formatHelp(`
Usage: iag-config version

  Prints the version information for iag-config and the latest gateway
  release it can produce documents for.
`)
}
