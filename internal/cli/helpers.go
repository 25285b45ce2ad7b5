// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/posener/complete"

	"github.com/ibm-security/iag-config/internal/pkg/errors"
	"github.com/ibm-security/iag-config/internal/pkg/helper/filesystem"
	"github.com/ibm-security/iag-config/internal/pkg/manager"
	"github.com/ibm-security/iag-config/internal/pkg/renderer"
	"github.com/ibm-security/iag-config/terminal"
)

// descriptionPredictor completes description file arguments.
var descriptionPredictor = complete.PredictOr(
	complete.PredictFiles("*.hcl"),
	complete.PredictFiles("*.yaml"),
	complete.PredictFiles("*.yml"),
	complete.PredictFiles("*.json"),
)

// errFailedToProcess is returned once every processing error has been
// written to the UI.
var errFailedToProcess = errors.New("failed to process description")

// newManager is used to generate the manager for a single run against the
// description at path.
func newManager(c *baseCommand, path string) *manager.Manager {
	cfg := manager.Config{
		Fs:              c.fs,
		Path:            path,
		VariableFiles:   c.varFiles,
		VariableCLIArgs: c.vars,
		VariableEnvVars: c.envVars,
		Image:           c.image,
		Logger:          c.logger(),
	}
	return manager.NewManager(&cfg)
}

// processDescription runs the manager and writes every error and warning to
// the UI. A nil result is returned when any error occurred.
func processDescription(c *baseCommand, path string) (*manager.Result, error) {
	res, errs := newManager(c, path).Process()
	if len(errs) > 0 {
		for _, err := range errs {
			c.ui.ErrorWithContext(err.Err, err.Subject, err.Context.GetAll()...)
		}
		return nil, errFailedToProcess
	}
	if res == nil || res.Rendered == nil {
		c.ui.ErrorWithContext(errors.ErrNoDocumentRendered, "failed to render", errors.UIContextPrefixInputPath+path)
		return nil, errFailedToProcess
	}

	for _, w := range res.Warnings {
		c.ui.Warning(w.Error())
	}
	c.Log.Debug("processed description", "path", path, "version", res.Rendered.Version.String())
	return res, nil
}

// confirmOverwrite asks whether path may be replaced. Non-interactive UIs
// rely on --auto-approve alone.
func confirmOverwrite(c *baseCommand, path string) (bool, error) {
	if c.autoApproved {
		return true, nil
	}
	if !c.ui.Interactive() {
		return false, nil
	}

	for {
		overwrite, err := c.ui.Input(&terminal.Input{
			Prompt: fmt.Sprintf("Output file %q exists, overwrite? [y/n] ", path),
			Style:  terminal.WarningBoldStyle,
		})
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(overwrite)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			c.ui.Output("Please select a valid option.", terminal.WithStyle(terminal.ErrorBoldStyle))
		}
	}
}

// writeOutput persists the rendered document at path, asking before an
// existing file is replaced.
func writeOutput(c *baseCommand, r *renderer.Rendered, path string) error {
	exists, err := filesystem.Exists(c.fs, path)
	if err != nil {
		return err
	}
	if exists {
		overwrite, err := confirmOverwrite(c, path)
		if err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("%w and overwrite is unset", errors.ErrOutputExists)
		}
	}
	return r.WriteTo(c.fs, path)
}
