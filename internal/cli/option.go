// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"github.com/spf13/afero"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/settings"
	"github.com/ibm-security/iag-config/terminal"
)

// Option is used to configure Init on baseCommand.
type Option func(c *baseConfig)

// WithArgs sets the arguments to the command that are used for parsing.
// Remaining arguments can be accessed using your flag set and asking for Args.
// Example: c.Flags().Args().
func WithArgs(args []string) Option {
	return func(c *baseConfig) { c.Args = args }
}

// The same as WithArgs, but also assigns the validation function NoArgs
// which returns an error if any args are provided. Only the function is
// assigned; actual validation happens after the flags have been parsed.
func WithNoArgs(args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = NoArgs
	}
}

// The same as WithArgs, but also assigns the validation function MinimumNArgs
// which returns an error if fewer than N args are provided. Only the function
// is assigned; actual validation happens after the flags have been parsed.
func WithMinimumNArgs(n int, args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = MinimumNArgs(n)
	}
}

// The same as WithArgs, but also assigns the validation function MaximumNArgs
// which returns an error if more than N args are provided. Only the function
// is assigned; actual validation happens after the flags have been parsed.
func WithMaximumNArgs(n int, args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = MaximumNArgs(n)
	}
}

// The same as WithArgs, but also assigns the validation function ExactArgs
// which returns an error if exactly N args aren't provided. Only the function
// is assigned; actual validation happens after the flags have been parsed.
func WithExactArgs(n int, args []string) Option {
	return func(c *baseConfig) {
		c.Args = args
		c.Validation = ExactArgs(n)
	}
}

// WithFlags sets the flags that are supported by this command. This MUST
// be set otherwise a panic will happen. This is usually set by just calling
// the Flags function on your command implementation.
func WithFlags(f *flag.Sets) Option {
	return func(c *baseConfig) { c.Flags = f }
}

// WithUI configures the CLI to use a specific UI implementation
func WithUI(ui terminal.UI) Option {
	return func(c *baseConfig) {
		c.UI = ui
	}
}

// WithFs configures the file system descriptions are read from and outputs
// are written to.
func WithFs(fsys afero.Fs) Option {
	return func(c *baseConfig) {
		c.Fs = fsys
	}
}

// WithSettings configures where user settings are read from.
func WithSettings(src *settings.Source) Option {
	return func(c *baseConfig) {
		c.Settings = src
	}
}
