// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/helper"
	"github.com/ibm-security/iag-config/internal/pkg/helper/filesystem"
)

const docsCommandName = "gen-cli-docs"

// DocGenerateCommand writes a Markdown reference page for every command.
type DocGenerateCommand struct {
	*baseCommand

	commands map[string]cli.CommandFactory
	mode     string
	outDir   string
}

func (c *DocGenerateCommand) Run(args []string) int {
	c.cmdKey = docsCommandName

	// Initialize. If we fail, we just exit since Init handles the UI.
	if err := c.Init(
		WithExactArgs(1, args),
		WithFlags(c.Flags()),
	); err != nil {
		c.ui.ErrorWithContext(err, ErrParsingArgsOrFlags)
		c.ui.Info(c.helpUsageMessage())
		return 1
	}

	c.mode = c.args[0]
	if c.mode != "md" && c.mode != "mdx" {
		c.ui.Error(`type parameter must be one of [md, mdx]`)
		return 1
	}

	var mErr *multierror.Error
	mErr = multierror.Append(mErr, filesystem.MaybeCreateDestinationDir(c.fs, c.commandsDir()))
	mErr = multierror.Append(mErr, filesystem.MaybeCreateDestinationDir(c.fs, filepath.Join(c.outDir, "data")))
	if c.mode == "mdx" {
		mErr = multierror.Append(mErr, filesystem.MaybeCreateDestinationDir(c.fs, c.partialsDir()))
	}
	if err := mErr.ErrorOrNil(); err != nil {
		c.ui.ErrorWithContext(err, "error making dirs", "Output Dir: "+c.outDir)
		return 1
	}

	var keys []string
	for k, fact := range c.commands {
		if k == docsCommandName {
			continue
		}
		cmd, err := fact()
		if err != nil {
			c.Log.Error("error creating command", "error", err, "command", k)
			return 1
		}

		if err := c.genDocs(k, cmd); err != nil {
			c.ui.ErrorWithContext(err, "error generating docs", "Command: "+k)
			return 1
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	type navEntry struct {
		Title string `json:"title"`
		Path  string `json:"path"`
	}
	nav := make([]navEntry, len(keys))
	for i, k := range keys {
		nav[i] = navEntry{Title: k, Path: cleanName(k)}
	}
	b, err := json.MarshalIndent(nav, "", "  ")
	if err != nil {
		c.ui.ErrorWithContext(err, "error creating nav-data page")
		return 1
	}
	navPath := filepath.Join(c.outDir, "data", "commands-nav-data.json")
	if err := afero.WriteFile(c.fs, navPath, append(b, '\n'), 0o644); err != nil {
		c.ui.ErrorWithContext(err, "error creating nav-data page", "Output Path: "+navPath)
		return 1
	}

	c.ui.Success(fmt.Sprintf("Generated docs for %d commands in %s", len(keys), c.outDir))
	return 0
}

func (c *DocGenerateCommand) commandsDir() string {
	return filepath.Join(c.outDir, "content", "commands")
}

func (c *DocGenerateCommand) partialsDir() string {
	return filepath.Join(c.outDir, "content", "partials", "commands")
}

type HasFlags interface {
	Flags() *flag.Sets
}

func cleanName(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

var (
	reUsage    = regexp.MustCompile(`iag-config (?P<cmd>.*)$`)
	reOptions  = regexp.MustCompile(` Options:`)
	reAsciiEsc = regexp.MustCompile(ansi)
)

func (c *DocGenerateCommand) genDocs(name string, cmd cli.Command) error {
	c.ui.Info("=> " + name)
	goodName := cleanName(name)
	path := filepath.Join(c.commandsDir(), goodName+"."+c.mode)

	w, err := c.fs.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()

	capital := helper.FirstRuneToUpper(name)

	fmt.Fprintf(w, `---
layout: commands
page_title: "Commands: %s"
sidebar_title: "%s"
description: "%s"
---

`, capital, name, cmd.Synopsis())

	fmt.Fprintf(w, "# iag-config %s\n\nCommand: `iag-config %s`\n\n%s\n\n", name, name, cmd.Synopsis())

	if c.mode == "mdx" {
		descFile := goodName + "_desc.mdx"
		fmt.Fprintf(w, "@include \"commands/%s\"\n\n", descFile)
		if err := c.touch(filepath.Join(c.partialsDir(), descFile)); err != nil {
			return err
		}
	}

	if hf, ok := cmd.(HasFlags); ok {
		writeUsage(w, name, reAsciiEsc.ReplaceAllString(cmd.Help(), ""))
		writeFlags(w, hf.Flags())
	} else {
		c.ui.Warning(name + " has no flags")
	}

	if c.mode == "mdx" {
		moreFile := goodName + "_more.mdx"
		fmt.Fprintf(w, "\n@include \"commands/%s\"\n", moreFile)
		if err := c.touch(filepath.Join(c.partialsDir(), moreFile)); err != nil {
			return err
		}
	}

	return nil
}

// writeUsage writes the usage line and the description found in the help
// text, leaving out the options which writeFlags documents.
func writeUsage(w io.Writer, name, help string) {
	helpText := strings.Split(strings.TrimSpace(help), "\n")
	matches := reUsage.FindStringSubmatch(helpText[0])
	if len(matches) == 0 {
		fmt.Fprintf(w, "## Usage\n\nUsage: `iag-config %s [options]`\n", name)
		return
	}
	fmt.Fprintf(w, "## Usage\n\nUsage: `iag-config %s`\n", matches[1])

	end := len(helpText)
	for i, line := range helpText {
		if reOptions.MatchString(line) {
			end = i
			break
		}
	}
	if end <= 1 {
		return
	}

	// Trim any left leading whitespace, if any. Indented text is rendered
	// as a code block rather than a paragraph.
	lines := make([]string, 0, end-1)
	for _, line := range helpText[1:end] {
		lines = append(lines, strings.TrimLeft(line, " \t"))
	}
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(strings.Join(lines, "\n")))
}

// writeFlags documents every visible flag, grouped by flag set.
func writeFlags(w io.Writer, flags *flag.Sets) {
	flags.VisitSets(func(name string, set *flag.Set) {
		// Only print a set if it contains vars
		numVars := 0
		set.VisitVars(func(f *flag.VarFlagP) { numVars++ })
		if numVars == 0 {
			return
		}

		fmt.Fprintf(w, "\n#### %s\n\n", name)

		set.VisitVars(func(f *flag.VarFlagP) {
			if h, ok := f.Value.(flag.FlagVisibility); ok && h.Hidden() {
				return
			}

			name := f.Name
			if t, ok := f.Value.(flag.FlagExample); ok {
				if example := t.Example(); example != "" {
					name += "=<" + example + ">"
				}
			}
			usage := strings.Join(strings.Fields(f.Usage), " ")

			if f.Shorthand != "" {
				fmt.Fprintf(w, "- `--%s` (`-%s`) - %s\n", name, f.Shorthand, usage)
			} else {
				fmt.Fprintf(w, "- `--%s` - %s\n", name, usage)
			}
		})
	})
}

func (c *DocGenerateCommand) touch(name string) error {
	f, err := c.fs.OpenFile(name, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}

func (c *DocGenerateCommand) Flags() *flag.Sets {
	return c.flagSet(0, func(set *flag.Sets) {
		f := set.NewSet("Docs Options")
		f.StringVar(&flag.StringVar{
			Name:    "out-dir",
			Target:  &c.outDir,
			Default: "./website",
			Usage:   `Directory the content and data trees are written to.`,
		})
	})
}

func (c *DocGenerateCommand) Help() string {
	return formatHelp(`
Usage: iag-config gen-cli-docs <md|mdx> [options]

  Generates the Markdown command reference.

` + c.Flags().Help())
}

func (c *DocGenerateCommand) Synopsis() string {
	return "Generates the Markdown command reference"
}

const (
	// NOTE: adapted from https://github.com/acarl005/stripansi
	ansi = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))"
)
