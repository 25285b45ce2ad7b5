// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"strconv"

	"github.com/posener/complete"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
)

// DecodeCommand prints the contents held by B64: file values.
type DecodeCommand struct {
	*baseCommand
}

func (c *DecodeCommand) Run(args []string) int {
	c.cmdKey = "decode" // Add cmdKey here to print out helpUsageMessage on Init error

	if err := c.Init(
		WithMinimumNArgs(1, args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())

		return 1
	}

	// Decode everything before printing anything.
	out := make([]string, 0, len(c.args))
	for i, arg := range c.args {
		b, err := document.DecodeFileValue(arg)
		if err != nil {
			c.ui.ErrorWithContext(err, "failed to decode value", "Argument: "+strconv.Itoa(i+1))
			return 1
		}
		out = append(out, string(b))
	}

	for _, s := range out {
		c.ui.Output(s)
	}
	return 0
}

func (c *DecodeCommand) Flags() *flag.Sets {
	return c.flagSet(0, nil)
}

func (c *DecodeCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *DecodeCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *DecodeCommand) Help() string {
	c.Example = `
	# Decode a file value from a rendered document
	iag-config decode "B64:aGVsbG8="
	`

	return formatHelp(`
	Usage: iag-config decode <value> [<value>...]

	Decodes one or more "B64:" file values and prints their contents.

` + c.GetExample() + c.Flags().Help())
}

func (c *DecodeCommand) Synopsis() string {
	return helpText["decode"][0]
}
