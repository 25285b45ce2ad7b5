// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package manager

import (
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/errors"
	"github.com/ibm-security/iag-config/internal/pkg/gate"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/loader"
	"github.com/ibm-security/iag-config/internal/pkg/logging"
	"github.com/ibm-security/iag-config/internal/pkg/renderer"
	"github.com/ibm-security/iag-config/internal/pkg/schema"
	"github.com/ibm-security/iag-config/internal/pkg/variable"
	"github.com/spf13/afero"
)

// Config contains all the user specified parameters needed to correctly run
// the manager.
type Config struct {

	// Fs is the file system the description, variable files and referenced
	// files are read from. The OS file system is used when nil.
	Fs afero.Fs

	// Path is the description file to render.
	Path string

	VariableFiles   []string
	VariableCLIArgs map[string]string
	VariableEnvVars map[string]string

	// Image is the gateway image the document is destined for. When set,
	// the rendered document version is checked against its tag.
	Image string

	Logger logging.Logger
}

// Manager is responsible for loading a description, building the gateway
// configuration from it and rendering the document.
type Manager struct {
	cfg    *Config
	fs     afero.Fs
	logger logging.Logger
}

// Result is the output of a successful Process call.
type Result struct {
	Description *loader.Description
	Variables   *variable.ParsedVariables
	Config      *gateway.Config
	Rendered    *renderer.Rendered

	// Warnings are problems which did not stop rendering, such as an image
	// whose tag cannot be compared against the document version.
	Warnings []error
}

func NewManager(cfg *Config) *Manager {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.FromHCLog(nil)
	}
	return &Manager{cfg: cfg, fs: fsys, logger: logger}
}

// Process is responsible for running every stage of the pipeline, returning
// the rendered document or every error found along the way.
func (m *Manager) Process() (*Result, []*errors.WrappedUIContext) {
	errCtx := errors.NewUIErrorContext()
	errCtx.Add(errors.UIContextPrefixInputPath, m.cfg.Path)

	vars, wErrs := m.parseVariables(errCtx)
	if wErrs != nil {
		return nil, wErrs
	}
	m.logger.Debug(fmt.Sprintf("parsed %d variables", len(vars.Vars)))

	desc, diags := loader.Load(m.fs, m.cfg.Path, vars.AsObject())
	if diags.HasErrors() {
		return nil, withContext(errors.HCLDiagsToWrappedUIContext(diags), errCtx)
	}
	for _, diag := range diags {
		m.logger.Warning(diag.Error())
	}
	m.logger.Debug(fmt.Sprintf("loaded sections %v from %s", desc.SectionNames(), desc.Path))

	cfg, wErrs := m.buildConfig(desc, errCtx)
	if wErrs != nil {
		return nil, wErrs
	}

	r := &renderer.Renderer{Logger: m.logger}
	rendered, err := r.Render(cfg)
	if err != nil {
		return nil, []*errors.WrappedUIContext{errors.Wrap(err, "failed to render document", errCtx)}
	}
	m.logger.Debug(fmt.Sprintf("rendered document version %s", rendered.Version))

	res := &Result{Description: desc, Variables: vars, Config: cfg, Rendered: rendered}

	if m.cfg.Image != "" {
		if err := gate.Check(rendered.Version, m.cfg.Image); err != nil {
			if !stderrors.Is(err, gate.ErrUnversionedImage) {
				gateCtx := errCtx.Copy()
				gateCtx.Add(errors.UIContextPrefixImage, m.cfg.Image)
				gateCtx.Add(errors.UIContextPrefixVersion, rendered.Version.String())
				return nil, []*errors.WrappedUIContext{errors.Wrap(err, "document not supported by image", gateCtx)}
			}
			m.logger.Warning(fmt.Sprintf("skipping version check: %v", err))
			res.Warnings = append(res.Warnings, err)
		}
	}

	return res, nil
}

func (m *Manager) parseVariables(errCtx *errors.UIErrorContext) (*variable.ParsedVariables, []*errors.WrappedUIContext) {
	variableParser, err := variable.NewParser(&variable.ParserConfig{
		Fs:            m.fs,
		EnvOverrides:  m.cfg.VariableEnvVars,
		FileOverrides: m.cfg.VariableFiles,
		CLIOverrides:  m.cfg.VariableCLIArgs,
	})
	if err != nil {
		return nil, []*errors.WrappedUIContext{errors.Wrap(err, "failed to instantiate parser", errCtx)}
	}

	parsedVars, diags := variableParser.Parse()
	if diags.HasErrors() {
		return nil, withContext(errors.HCLDiagsToWrappedUIContext(diags), errCtx)
	}
	return parsedVars, nil
}

// buildConfig builds every section present in the description. All sections
// are attempted so a single run reports every invalid section.
func (m *Manager) buildConfig(desc *loader.Description, errCtx *errors.UIErrorContext) (*gateway.Config, []*errors.WrappedUIContext) {
	ctx := &schema.Context{Fs: m.fs, BaseDir: desc.Dir}

	var (
		mErr            *multierror.Error
		single          = make(map[string]*document.Composite)
		resourceServers []*document.Composite
	)

	for _, section := range gateway.Sections {
		values, ok := desc.Sections[section.Name]
		if !ok {
			continue
		}

		if section.List {
			built, err := schema.BuildList(ctx, section.Schema, section.Name, values)
			if err != nil {
				mErr = multierror.Append(mErr, &sectionError{name: section.Name, err: err})
				continue
			}
			resourceServers = built
			continue
		}

		obj, ok := values.(map[string]any)
		if !ok && values != nil {
			err := fmt.Errorf("%w: %s must be an object", document.ErrTypeMismatch, section.Name)
			mErr = multierror.Append(mErr, &sectionError{name: section.Name, err: err})
			continue
		}
		built, err := schema.Build(ctx, section.Schema, obj)
		if err != nil {
			mErr = multierror.Append(mErr, &sectionError{name: section.Name, err: err})
			continue
		}
		single[section.Name] = built
	}

	if err := mErr.ErrorOrNil(); err != nil {
		return nil, m.sectionErrors(mErr, desc, errCtx)
	}

	cfg, err := gateway.NewConfig(
		single[gateway.SectionServer],
		single[gateway.SectionIdentity],
		resourceServers,
		single[gateway.SectionAuthorization],
		single[gateway.SectionLogging],
		single[gateway.SectionAdvanced],
	)
	if err != nil {
		return nil, []*errors.WrappedUIContext{errors.Wrap(err, "failed to assemble configuration", errCtx)}
	}
	return cfg, nil
}

func (m *Manager) sectionErrors(mErr *multierror.Error, desc *loader.Description, errCtx *errors.UIErrorContext) []*errors.WrappedUIContext {
	out := make([]*errors.WrappedUIContext, 0, len(mErr.Errors))
	for _, err := range mErr.Errors {
		var se *sectionError
		if !stderrors.As(err, &se) {
			out = append(out, errors.Wrap(err, "failed to build section", errCtx))
			continue
		}

		ctx := errCtx.Copy()
		ctx.Add(errors.UIContextPrefixSection, se.name)
		if rng, ok := desc.Ranges[se.name]; ok {
			ctx.Add(errors.UIContextPrefixHCLRange, rng.String())
		}

		cause := se.err
		var fe *schema.FieldError
		if stderrors.As(se.err, &fe) {
			ctx.Add(errors.UIContextPrefixField, fe.Path)
			cause = fe.Err
		}

		logCtx := []string{"section", se.name}
		if fe != nil {
			logCtx = append(logCtx, "field", fe.Path)
		}
		m.logger.ErrorWithContext(cause, "failed to build section", logCtx...)
		out = append(out, errors.Wrap(cause, fmt.Sprintf("failed to build %s section", se.name), ctx))
	}
	return out
}

// sectionError ties a build failure to the section it occurred in.
type sectionError struct {
	name string
	err  error
}

func (e *sectionError) Error() string { return fmt.Sprintf("%s: %v", e.name, e.err) }

func (e *sectionError) Unwrap() error { return e.err }

func withContext(wrapped []*errors.WrappedUIContext, ctx *errors.UIErrorContext) []*errors.WrappedUIContext {
	for _, w := range wrapped {
		c := ctx.Copy()
		c.Append(w.Context)
		w.Context = c
	}
	return wrapped
}
