// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/posener/complete"
	"github.com/spf13/afero"

	"github.com/ibm-security/iag-config/internal/pkg/errors"
	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/logging"
	"github.com/ibm-security/iag-config/internal/pkg/settings"
	"github.com/ibm-security/iag-config/internal/pkg/variable/envloader"
	"github.com/ibm-security/iag-config/terminal"
)

const (
	// EnvImage is the env var holding the default gateway image used for
	// version checks.
	EnvImage = "IAG_CONFIG_IMAGE"
)

// baseCommand is embedded in all commands to provide common logic and data.
//
// The unexported values are not available until after Init is called. Some
// values are only available in certain circumstances, read the documentation
// for the field to determine if that is the case.
type baseCommand struct {
	cmdKey string

	// Ctx is the base context for the command. It is up to commands to
	// utilize this context so that cancellation works in a timely manner.
	Ctx context.Context

	// Log is the logger to use.
	Log hclog.Logger

	// Example usage
	Example string

	//---------------------------------------------------------------
	// The fields below are only available after calling Init.

	// UI is used to write to the CLI.
	ui terminal.UI

	// fs is the file system descriptions and outputs are read from and
	// written to.
	fs afero.Fs

	// settings are the resolved user settings.
	settings settings.Settings

	//---------------------------------------------------------------
	// Internal fields that should not be accessed directly

	// flagPlain is whether the output should be in plain mode.
	flagPlain bool

	// flagLogLevel overrides the log level from settings and environment.
	flagLogLevel string

	// vars sets values for input variables
	vars map[string]string

	// envVars sets values for input variables from the environment
	envVars map[string]string

	// varFiles is an HCL file(s) setting one or more values
	// for input variables
	varFiles []string

	// image is the gateway image the document is checked against
	image string

	// autoApproved is true when the user supplies the --auto-approve or -y flag
	autoApproved bool

	// args that were present after parsing flags
	args []string

	// options passed in at the global level
	globalOptions []Option
}

func (c *baseCommand) Help() string {
	return helpText[c.cmdKey][1]
}

func (c *baseCommand) Synopsis() string {
	return helpText[c.cmdKey][0]
}

// Close cleans up any resources that the command created. This should be
// defered by any CLI command that embeds baseCommand in the Run command.
func (c *baseCommand) Close() error {
	// Close our UI if it implements it. The glint-based UI does for example
	// to finish up all the CLI output.
	if closer, ok := c.ui.(io.Closer); ok && closer != nil {
		closer.Close()
	}

	return nil
}

func (c *baseCommand) GetExample() string {
	if len(c.Example) > 0 {
		return "Examples:" + c.Example + "\n"
	}
	return ""
}

type baseConfig struct {
	Args       []string
	Flags      *flag.Sets
	UI         terminal.UI
	Fs         afero.Fs
	Settings   *settings.Source
	Validation ValidationFn
}

// Init initializes the command by parsing flags, reading the settings and
// setting up the logger. You can control what is done by using the options.
//
// Init should be called FIRST within the Run function implementation. Many
// options will affect behavior of other functions that can be called later.
func (c *baseCommand) Init(opts ...Option) error {
	var baseCfg baseConfig

	for _, opt := range c.globalOptions {
		opt(&baseCfg)
	}

	for _, opt := range opts {
		opt(&baseCfg)
	}

	// Init our UI first so we can write output to the user immediately.
	ui := baseCfg.UI
	if ui == nil {
		ui = terminal.ConsoleUI(c.Ctx)
	}
	c.ui = ui

	c.fs = baseCfg.Fs
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}

	src := baseCfg.Settings
	if src == nil {
		src = settings.DefaultSource()
	}
	s, err := src.Read()
	if err != nil {
		c.ui.ErrorWithContext(err, "failed to read settings", errors.UIContextPrefixSettings+src.Path)
		return ErrSentinel
	}
	c.settings = s
	c.image = s.Image
	if v, ok := os.LookupEnv(EnvImage); ok {
		c.image = v
	}

	// Parse flags
	if err := baseCfg.Flags.Parse(baseCfg.Args); err != nil {
		return err
	}
	c.args = baseCfg.Flags.Args()

	c.envVars = envloader.New().GetVarsFromEnv()

	// Do any validation after parsing
	if baseCfg.Validation != nil {
		if err := baseCfg.Validation(c, c.args); err != nil {
			return err
		}
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	// Reset the UI to plain if that was set
	if c.flagPlain || c.settings.Plain {
		if _, ok := c.ui.(io.Closer); ok && baseCfg.UI == nil {
			c.Close()
			c.ui = terminal.NonInteractiveUI(c.Ctx)
		}
	}

	return nil
}

// initLogger resolves the log level from the flag, the environment and the
// settings, in that order.
func (c *baseCommand) initLogger() error {
	level := c.settings.LogLevel
	if v := os.Getenv(logging.EnvLogLevel); v != "" {
		level = hclog.LevelFromString(v)
	}
	if c.flagLogLevel != "" {
		level = hclog.LevelFromString(c.flagLogLevel)
	}
	if level == hclog.NoLevel {
		return fmt.Errorf("invalid log level, must be one of %v", logLevels)
	}

	if c.Log == nil {
		_, stderr, _ := c.ui.OutputWriters()
		c.Log = hclog.New(&hclog.LoggerOptions{
			Name:   cliName,
			Level:  level,
			Output: stderr,
		})
		return nil
	}
	c.Log.SetLevel(level)
	return nil
}

// logger adapts the command logger for lower layers.
func (c *baseCommand) logger() logging.Logger {
	return logging.FromHCLog(c.Log)
}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "off"}

// flagSet creates the flags for this command. The callback should be used
// to configure the set with your own custom options.
func (c *baseCommand) flagSet(bit flagSetBit, f func(*flag.Sets)) *flag.Sets {
	set := flag.NewSets()

	{
		f := set.NewSet("Global Options")
		f.BoolVar(&flag.BoolVar{
			Name:    "plain",
			Target:  &c.flagPlain,
			Default: false,
			EnvVar:  EnvPlain,
			Usage:   `Plain output: no colors, no animation.`,
		})

		f.EnumSingleVar(&flag.EnumSingleVar{
			Name:   "log-level",
			Target: &c.flagLogLevel,
			Values: logLevels,
			Usage: fmt.Sprintf(`The level of log messages written to stderr. Overrides
					the %s environment variable and the log-level setting.`, logging.EnvLogLevel),
		})
	}

	if bit&flagSetOperation != 0 {
		f := set.NewSet("Operation Options")
		f.StringSliceVarP(&flag.StringSliceVarP{
			StringSliceVar: &flag.StringSliceVar{
				Name:    "var-file",
				Target:  &c.varFiles,
				Default: make([]string, 0),
				Usage: `Specifies the path to a variable override file. This can
						be provided multiple times on a single command to result
						in a list of files. Files are applied in sorted order.`,
				Completion: complete.PredictOr(complete.PredictFiles("*.hcl"), complete.PredictFiles("*.json")),
			},
			Shorthand: "f",
		})

		f.StringMapVar(&flag.StringMapVar{
			Name:    "var",
			Target:  &c.vars,
			Default: make(map[string]string),
			Usage: fmt.Sprintf(`Specifies single override variables in the form of
					key=value and can be specified multiple times per command.
					Variables can also be set with the %s<name> environment
					variables.`, envloader.DefaultPrefix),
		})

		f.StringVar(&flag.StringVar{
			Name:    "image",
			Target:  &c.image,
			Default: "",
			Usage: fmt.Sprintf(`The gateway image the document is destined for, for
					example "icr.io/ibmappgateway/ibm-application-gateway:20.04".
					The document version is checked against the image tag.
					Overrides the %s environment variable and the image
					setting.`, EnvImage),
		})
	}

	if bit&flagSetNeedsApproval != 0 {
		f := set.NewSet("Approval Options")
		f.BoolVarP(&flag.BoolVarP{
			BoolVar: &flag.BoolVar{
				Name:    "auto-approve",
				Target:  &c.autoApproved,
				Default: false,
				Usage: `Automatically answer confirmation prompts in the
						affirmative.`,
			},
			Shorthand: "y",
		})
	}

	if f != nil {
		// Configure our values
		f(set)
	}

	return set
}

// Returns minimal help usage message
// Used on flag/arg parse error in c.Init method
func (c *baseCommand) helpUsageMessage() string {
	if c.cmdKey == "" {
		return fmt.Sprintf(`See "%s --help"`, cliName)
	}
	return fmt.Sprintf(`See "%s %s --help"`, cliName, c.cmdKey)
}

// flagSetBit is used with baseCommand.flagSet
type flagSetBit uint

const (
	flagSetNone          flagSetBit = 1 << iota // nolint:deadcode,varcheck,unused
	flagSetOperation                            // shared flags for operations (render, validate, etc)
	flagSetNeedsApproval                        // adds the -y flag for commands that require approval to run
)

var (
	// ErrSentinel is a sentinel value that we can return from Init to force an exit.
	ErrSentinel = errors.New("error sentinel")

	// ErrParsingArgsOrFlags should be used in the Init method of a CLI command
	// if it returns an error.
	ErrParsingArgsOrFlags = "error parsing args or flags"
)
