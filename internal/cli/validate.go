// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/posener/complete"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
)

// ValidateCommand builds and assembles a description without writing the
// document.
type ValidateCommand struct {
	*baseCommand
}

func (c *ValidateCommand) Run(args []string) int {
	c.cmdKey = "validate" // Add cmdKey here to print out helpUsageMessage on Init error

	if err := c.Init(
		WithExactArgs(1, args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())

		return 1
	}

	res, err := processDescription(c.baseCommand, c.args[0])
	if err != nil {
		return 1
	}

	c.ui.Success(c.args[0] + " is valid")
	c.ui.Info("Minimum gateway release: " + res.Rendered.Version.String())
	return 0
}

func (c *ValidateCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetOperation, nil)
}

func (c *ValidateCommand) AutocompleteArgs() complete.Predictor {
	return descriptionPredictor
}

func (c *ValidateCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *ValidateCommand) Help() string {
	c.Example = `
	# Validate a description
	iag-config validate gateway.hcl

	# Validate a description against the image it will be deployed with
	iag-config validate gateway.yaml \
		--image=icr.io/ibmappgateway/ibm-application-gateway:20.01
	`

	return formatHelp(`
	Usage: iag-config validate <description> [options]

	Checks the given description and reports the minimum gateway release able
	to consume the document.

` + c.GetExample() + c.Flags().Help())
}

func (c *ValidateCommand) Synopsis() string {
	return helpText["validate"][0]
}
