// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strconv"

	"github.com/posener/complete"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/variable"
	"github.com/ibm-security/iag-config/terminal"
)

type InfoCommand struct {
	*baseCommand
}

func (c *InfoCommand) Run(args []string) int {
	c.cmdKey = "info" // Add cmdKey here to print out helpUsageMessage on Init error
	// Initialize. If we fail, we just exit since Init handles the UI.
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

	c.ui.Header("Description")
	c.ui.NamedValues([]terminal.NamedValue{
		{Name: "Path", Value: res.Description.Path},
		{Name: "Document Version", Value: res.Rendered.Version.String()},
		{Name: "Image", Value: c.image},
	})

	c.ui.Header("Sections")
	tbl := terminal.NewTable("SECTION", "PRESENT", "COUNT", "MINIMUM VERSION")
	for _, s := range res.Config.Summary() {
		version := ""
		if s.Present {
			version = s.Version.String()
		}
		tbl.AddRow(s.Name, strconv.FormatBool(s.Present), strconv.Itoa(s.Count), version)
	}
	c.ui.Table(tbl)

	if names := res.Variables.Names(); len(names) > 0 {
		c.ui.Header("Variables")
		rows := []string{"Name|Value|Source"}
		for _, name := range names {
			v := res.Variables.Vars[name]
			rows = append(rows, fmt.Sprintf("%s|%s|%s", name, variableValue(v), v.DeclRange.Filename))
		}
		c.ui.Output(formatList(rows))
	}

	return 0
}

// variableValue formats the value of v for display.
func variableValue(v *variable.Variable) string {
	val, err := variable.ConvertCtyToInterface(v.Value)
	if err != nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%v", val)
}

func (c *InfoCommand) Flags() *flag.Sets {
	return c.flagSet(flagSetOperation, nil)
}

func (c *InfoCommand) AutocompleteArgs() complete.Predictor {
	return descriptionPredictor
}

func (c *InfoCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *InfoCommand) Help() string {
	c.Example = `
	# Show the sections of a description
	iag-config info gateway.hcl

	# Show the sections and the variables set from a file
	iag-config info gateway.hcl -f prod.hcl
	`

	return formatHelp(`
	Usage: iag-config info <description> [options]

	Returns information on the given description including the document
	version, the sections it sets and the input variables in effect.

` + c.GetExample() + c.Flags().Help())
}

func (c *InfoCommand) Synopsis() string {
	return helpText["info"][0]
}
