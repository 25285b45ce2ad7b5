// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/posener/complete"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/errors"
	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/schema"
	"github.com/ibm-security/iag-config/terminal"
)

// errUnknownSection is returned for a section name with no schema.
var errUnknownSection = errors.New("unknown section")

// SchemaCommand prints the fields a document section accepts.
type SchemaCommand struct {
	*baseCommand
}

func (c *SchemaCommand) Run(args []string) int {
	c.cmdKey = "schema" // Add cmdKey here to print out helpUsageMessage on Init error

	if err := c.Init(
		WithMaximumNArgs(1, args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())

		return 1
	}

	if len(c.args) == 0 {
		tbl := terminal.NewTable("SECTION", "LIST", "MINIMUM VERSION")
		for _, s := range gateway.Sections {
			tbl.AddRow(s.Name, fmt.Sprintf("%t", s.List), s.Schema.Since.String())
		}
		c.ui.Table(tbl)
		return 0
	}

	section, ok := gateway.LookupSection(c.args[0])
	if !ok {
		names := make([]string, len(gateway.Sections))
		for i, s := range gateway.Sections {
			names[i] = s.Name
		}
		c.ui.ErrorWithContext(errUnknownSection, "failed to describe section",
			errors.UIContextPrefixSection+c.args[0],
			"Known Sections: "+strings.Join(names, ", "),
		)
		return 1
	}

	rows := []string{"Field|Type|Required|Since"}
	rows = append(rows, schemaRows(section.Schema, "")...)
	c.ui.Header(section.Name + " (" + section.Schema.Since.String() + ")")
	c.ui.Output(formatList(rows))
	return 0
}

// schemaRows lists the fields of s depth first, each named by its dotted
// path below prefix.
func schemaRows(s *schema.Schema, prefix string) []string {
	var rows []string
	for _, f := range s.Fields {
		if f.Type == schema.TypeUnion {
			for _, v := range f.Variants {
				path := prefix + v.Name
				rows = append(rows, schemaRow(path, "object", f.IsRequired, v.Since))
				rows = append(rows, schemaRows(v, path+".")...)
			}
			continue
		}

		path := prefix + f.Name
		rows = append(rows, schemaRow(path, fieldType(f), f.IsRequired, sinceOf(f)))
		if f.Object != nil {
			rows = append(rows, schemaRows(f.Object, path+".")...)
		}
	}
	return rows
}

func schemaRow(path, typ string, required bool, since document.Version) string {
	return fmt.Sprintf("%s|%s|%t|%s", path, typ, required, since)
}

// fieldType describes the values f accepts.
func fieldType(f schema.Field) string {
	switch f.Type {
	case schema.TypeScalar, schema.TypeOneOfScalar, schema.TypeList:
		kinds := make([]string, len(f.Kinds))
		for i, k := range f.Kinds {
			kinds[i] = k.String()
		}
		t := strings.Join(kinds, " or ")
		if f.Type == schema.TypeList {
			t = "list of " + t
		}
		return t
	case schema.TypeChoice, schema.TypeChoiceList:
		variants := f.Enum.Variants()
		names := make([]string, len(variants))
		for i, v := range variants {
			names[i] = v.DocumentName()
		}
		return fmt.Sprintf("%s (%s)", f.Type, strings.Join(names, ", "))
	default:
		return f.Type.String()
	}
}

func sinceOf(f schema.Field) document.Version {
	if f.Object != nil {
		return f.Object.Since
	}
	return document.Zero
}

func (c *SchemaCommand) Flags() *flag.Sets {
	return c.flagSet(0, nil)
}

func (c *SchemaCommand) AutocompleteArgs() complete.Predictor {
	names := make([]string, len(gateway.Sections))
	for i, s := range gateway.Sections {
		names[i] = s.Name
	}
	return complete.PredictSet(names...)
}

func (c *SchemaCommand) AutocompleteFlags() complete.Flags {
	return c.Flags().Completions()
}

func (c *SchemaCommand) Help() string {
	c.Example = `
	# List the document sections
	iag-config schema

	# Show the fields of the server section
	iag-config schema server
	`

	return formatHelp(`
	Usage: iag-config schema [<section>]

	Shows the fields accepted by a document section.

` + c.GetExample() + c.Flags().Help())
}

func (c *SchemaCommand) Synopsis() string {
	return helpText["schema"][0]
}
