// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package variable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/ibm-security/iag-config/internal/pkg/errors/diags"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

// Parser can parse and merge HCL variables from multiple different sources.
type Parser struct {
	fs    afero.Afero
	cfg   *ParserConfig
	files []string

	envVars  map[string]*Variable
	fileVars map[string]*Variable
	cliVars  map[string]*Variable
}

// ParserConfig contains details of the numerous sources of variables which
// should be parsed and merged according to the expected strategy.
type ParserConfig struct {

	// Fs is used to read variable files. The OS file system is used when
	// nil.
	Fs afero.Fs

	// EnvOverrides are variables read from the environment, already stripped
	// of their prefix. They have the lowest precedence.
	EnvOverrides map[string]string

	// FileOverrides is a list of files which contain variables in the form
	// key = value. The files will be sorted before processing to ensure a
	// consistent processing experience.
	FileOverrides []string

	// CLIOverrides are key=value variables and take the highest precedence of
	// all sources.
	CLIOverrides map[string]string
}

func NewParser(cfg *ParserConfig) (*Parser, error) {
	fsys := cfg.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	p := &Parser{
		fs:       afero.Afero{Fs: fsys},
		cfg:      cfg,
		envVars:  make(map[string]*Variable),
		fileVars: make(map[string]*Variable),
		cliVars:  make(map[string]*Variable),
	}

	// Sort the file overrides to ensure variable merging is consistent on
	// multiple passes.
	files := make([]string, len(cfg.FileOverrides))
	copy(files, cfg.FileOverrides)
	sort.Strings(files)
	for _, file := range files {
		if ok, err := p.fs.Exists(file); err != nil || !ok {
			return nil, fmt.Errorf("variable file `%s` not found", file)
		}
	}
	p.files = files

	return p, nil
}

// Parse reads every source and merges them, the environment first and the
// command line last.
func (p *Parser) Parse() (*ParsedVariables, hcl.Diagnostics) {
	var out hcl.Diagnostics

	for _, name := range sortedKeys(p.cfg.EnvOverrides) {
		out = diags.SafeDiagnosticsExtend(out,
			p.parseStringVariable(name, p.cfg.EnvOverrides[name], p.envVars, "environment"))
	}

	for _, file := range p.files {
		out = diags.SafeDiagnosticsExtend(out, p.parseOverridesFile(file))
	}

	for _, name := range sortedKeys(p.cfg.CLIOverrides) {
		out = diags.SafeDiagnosticsExtend(out,
			p.parseStringVariable(name, p.cfg.CLIOverrides[name], p.cliVars, "arguments"))
	}

	if out.HasErrors() {
		return nil, out
	}

	pv := &ParsedVariables{Vars: make(map[string]*Variable)}
	for _, layer := range []map[string]*Variable{p.envVars, p.fileVars, p.cliVars} {
		pv.merge(layer)
	}
	return pv, out
}

// parseStringVariable records a variable given as a raw string. Values from
// the environment and the command line are always strings.
func (p *Parser) parseStringVariable(name, rawVal string, tgt map[string]*Variable, rangeDesc string) hcl.Diagnostics {
	// Get a reasonable count for the lines in the provided value so the range
	// is meaningful in diagnostics.
	lines := strings.Split(rawVal, "\n")
	lc := len(lines)
	endCol := len(lines[lc-1])

	fakeRange := hcl.Range{
		Filename: fmt.Sprintf("<value for var %s from %s>", name, rangeDesc),
		Start:    hcl.Pos{Line: 1, Column: 1, Byte: 0},
		End:      hcl.Pos{Line: lc, Column: endCol, Byte: len(rawVal)},
	}

	if !hclsyntax.ValidIdentifier(name) {
		return hcl.Diagnostics{diags.DiagInvalidVariableName(&fakeRange)}
	}

	tgt[name] = &Variable{
		Name:      name,
		Value:     cty.StringVal(rawVal),
		DeclRange: fakeRange,
	}
	return nil
}

func (p *Parser) loadOverrideFile(file string) (hcl.Body, hcl.Diagnostics) {

	src, err := p.fs.ReadFile(file)
	if err != nil {
		return nil, diags.DiagsFileNotFound(file)
	}

	var (
		hclFile  *hcl.File
		hclDiags hcl.Diagnostics
	)

	// Instantiate a new parser each time, the parser caches files by name.
	hclParser := hclparse.NewParser()

	// Depending on the fix extension, use the correct HCL parser.
	switch {
	case strings.HasSuffix(file, ".json"):
		hclFile, hclDiags = hclParser.ParseJSON(src, file)
	default:
		hclFile, hclDiags = hclParser.ParseHCL(src, file)
	}

	// If the returned file or body is nil, then we'll return a non-nil empty
	// body, so we'll meet our contract that nil means an error reading the
	// file.
	if hclFile == nil || hclFile.Body == nil {
		return hcl.EmptyBody(), hclDiags
	}

	return hclFile.Body, hclDiags
}

func (p *Parser) parseOverridesFile(file string) hcl.Diagnostics {

	body, out := p.loadOverrideFile(file)
	if body == nil {
		return out
	}

	attrs, hclDiags := body.JustAttributes()
	out = diags.SafeDiagnosticsExtend(out, hclDiags)

	for _, attr := range attrs {

		// Grab the expression value. If we have errors performing this we
		// cannot continue reliably.
		val, valDiags := attr.Expr.Value(nil)
		if valDiags.HasErrors() {
			out = diags.SafeDiagnosticsExtend(out, valDiags)
			continue
		}

		p.fileVars[attr.Name] = &Variable{
			Name:      attr.Name,
			Value:     val,
			DeclRange: attr.Range,
		}
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
