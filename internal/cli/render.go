// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"

	"github.com/posener/complete"

	"github.com/ibm-security/iag-config/internal/pkg/errors"
	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
)

// RenderCommand is a command that allows users to render a description file
// into the gateway configuration document and display it on the console or
// write it to a file.
type RenderCommand struct {
	*baseCommand

	// toFile is the path to write the rendered document to instead of
	// standard output.
	toFile string

	// quiet suppresses the document on standard output when it is written
	// to a file.
	quiet bool
}

// Run satisfies the Run function of the cli.Command interface.
func (c *RenderCommand) Run(args []string) int {
	c.cmdKey = "render" // Add cmdKey here to print out helpUsageMessage on Init error

	if err := c.Init(
		WithExactArgs(1, args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())

		return 1
	}

	path := c.args[0]
	res, err := processDescription(c.baseCommand, path)
	if err != nil {
		return 1
	}

	out := c.toFile
	if out == "" {
		out = c.settings.Output
	}

	// Write the file first so that anything displayed has also been written
	// to disk.
	if out != "" {
		if err := writeOutput(c.baseCommand, res.Rendered, out); err != nil {
			if errors.Is(err, context.Canceled) {
				return 1
			}
			c.ui.ErrorWithContext(err, "failed to write document",
				errors.UIContextPrefixInputPath+path,
				errors.UIContextPrefixOutputPath+out,
			)
			return 1
		}
		c.ui.Success("Document written to " + out)
		if c.quiet {
			return 0
		}
	}

	c.ui.Output(res.Rendered.String())
	return 0
}

func (c *RenderCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetOperation|flagSetNeedsApproval, func(set *flag.Sets) {
		f := set.NewSet("Render Options")

		f.StringVarP(&flag.StringVarP{
			StringVar: &flag.StringVar{
				Name:   "to-file",
				Target: &c.toFile,
				Usage: `Path to write the rendered document to in addition to
						standard output. Overrides the output setting.`,
				Completion: complete.PredictFiles("*.yaml"),
			},
			Shorthand: "o",
		})

		f.BoolVarP(&flag.BoolVarP{
			BoolVar: &flag.BoolVar{
				Name:    "quiet",
				Target:  &c.quiet,
				Default: false,
				Usage: `Do not print the document when it is written to a
						file.`,
			},
			Shorthand: "q",
		})
	})
}

func (c *RenderCommand) AutocompleteArgs() complete.Predictor {
	return descriptionPredictor
}

func (c *RenderCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

// Help satisfies the Help function of the cli.Command interface.
func (c *RenderCommand) Help() string {

	c.Example = `
	# Render a description and print the document.
	iag-config render gateway.hcl

	# Render a description with override variables in a variable file.
	iag-config render gateway.hcl --var-file="./prod.hcl"

	# Render a description with cli variable overrides.
	iag-config render gateway.yaml --var="hostname=www.example.com"

	# Render to a file, checking the document against the target image.
	# Setting auto-approve allows the command to overwrite an existing file.
	iag-config render gateway.hcl -o config.yaml \
		--image=icr.io/ibmappgateway/ibm-application-gateway:20.04 -y
	`

	return formatHelp(`
	Usage: iag-config render <description> [options]

	Render the specified description file and view the resulting document.

` + c.GetExample() + c.Flags().Help())
}

// Synopsis satisfies the Synopsis function of the cli.Command interface.
func (c *RenderCommand) Synopsis() string {
	return helpText["render"][0]
}
