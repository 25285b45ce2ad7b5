// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package loader reads description files into per-section input values.
package loader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/errors/diags"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/variable"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Description is a decoded description file.
type Description struct {

	// Path is the file the description was read from.
	Path string

	// Dir is the directory of Path. Relative file names inside the
	// description resolve against it.
	Dir string

	// Sections maps section names to their decoded values.
	Sections map[string]any

	// Ranges records where each section was declared.
	Ranges map[string]hcl.Range
}

// Load reads the description file at path. HCL files are evaluated with
// vars bound to "var"; YAML and JSON files are decoded as they are, with
// "${...}" templates inside string values evaluated the same way.
func Load(fsys afero.Fs, path string, vars cty.Value) (*Description, hcl.Diagnostics) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	src, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, diags.DiagsFileNotFound(path)
	}
	src = bytes.TrimPrefix(src, []byte{0xEF, 0xBB, 0xBF})

	d := &Description{
		Path:     path,
		Dir:      filepath.Dir(path),
		Sections: make(map[string]any),
		Ranges:   make(map[string]hcl.Range),
	}
	ctx := evalContext(vars)

	var out hcl.Diagnostics
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		out = d.loadHCL(src, ctx)
	case ".yaml", ".yml", ".json":
		out = d.loadYAML(src, ctx)
	default:
		return nil, hcl.Diagnostics{diags.DiagUnsupportedFormat(path)}
	}

	if out.HasErrors() {
		return nil, out
	}
	return d, out
}

func evalContext(vars cty.Value) *hcl.EvalContext {
	if vars.IsNull() {
		vars = cty.EmptyObjectVal
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{variable.RootName: vars},
		Functions: Functions(),
	}
}

func (d *Description) loadHCL(src []byte, ctx *hcl.EvalContext) hcl.Diagnostics {
	file, out := hclsyntax.ParseConfig(src, d.Path, hcl.InitialPos)
	if out.HasErrors() {
		return out
	}

	if body, ok := file.Body.(*hclsyntax.Body); ok && len(body.Blocks) > 0 {
		for _, block := range body.Blocks {
			out = out.Append(diags.DiagBlocksNotSupported(block.DefRange().Ptr()))
		}
		return out
	}

	attrs, attrDiags := file.Body.JustAttributes()
	out = diags.SafeDiagnosticsExtend(out, attrDiags)

	for name, attr := range attrs {
		if diag := checkKey(name, attr.NameRange.Ptr()); diag != nil {
			out = out.Append(diag)
			continue
		}

		val, valDiags := attr.Expr.Value(ctx)
		if valDiags.HasErrors() {
			out = diags.SafeDiagnosticsExtend(out, valDiags)
			continue
		}

		v, err := variable.ConvertCtyToInterface(val)
		if err != nil {
			out = out.Append(diags.DiagFailedToConvertCty(err, attr.Expr.Range().Ptr()))
			continue
		}

		d.Sections[name] = v
		d.Ranges[name] = attr.Range
	}

	return out
}

func (d *Description) loadYAML(src []byte, ctx *hcl.EvalContext) hcl.Diagnostics {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to parse file",
			Detail:   err.Error(),
			Subject:  &hcl.Range{Filename: d.Path},
		}}
	}

	// An empty file decodes to a zero node.
	if root.Kind == 0 {
		return nil
	}

	mapping := &root
	if mapping.Kind == yaml.DocumentNode && len(mapping.Content) > 0 {
		mapping = mapping.Content[0]
	}
	if mapping.Kind != yaml.MappingNode {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid description",
			Detail:   "The top level of a description must be a mapping of section names.",
			Subject:  d.nodeRange(mapping).Ptr(),
		}}
	}

	var out hcl.Diagnostics
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		rng := d.nodeRange(key)

		if diag := checkKey(key.Value, &rng); diag != nil {
			out = out.Append(diag)
			continue
		}

		var v any
		if err := value.Decode(&v); err != nil {
			out = out.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to decode section",
				Detail:   err.Error(),
				Subject:  &rng,
			})
			continue
		}

		v, tplDiags := d.expandTemplates(v, ctx, d.nodeRange(value))
		if tplDiags.HasErrors() {
			out = diags.SafeDiagnosticsExtend(out, tplDiags)
			continue
		}

		d.Sections[key.Value] = v
		d.Ranges[key.Value] = rng
	}

	return out
}

// expandTemplates walks a decoded YAML value and evaluates every string
// holding a "${" template sequence.
func (d *Description) expandTemplates(v any, ctx *hcl.EvalContext, rng hcl.Range) (any, hcl.Diagnostics) {
	switch t := v.(type) {
	case string:
		if !strings.Contains(t, "${") {
			return t, nil
		}
		expr, out := hclsyntax.ParseTemplate([]byte(t), rng.Filename, rng.Start)
		if out.HasErrors() {
			return nil, out
		}
		val, out := expr.Value(ctx)
		if out.HasErrors() {
			return nil, out
		}
		converted, err := variable.ConvertCtyToInterface(val)
		if err != nil {
			return nil, hcl.Diagnostics{diags.DiagFailedToConvertCty(err, &rng)}
		}
		return converted, nil

	case []any:
		var out hcl.Diagnostics
		for i := range t {
			var itemDiags hcl.Diagnostics
			t[i], itemDiags = d.expandTemplates(t[i], ctx, rng)
			out = diags.SafeDiagnosticsExtend(out, itemDiags)
		}
		return t, out

	case map[string]any:
		var out hcl.Diagnostics
		for k := range t {
			var itemDiags hcl.Diagnostics
			t[k], itemDiags = d.expandTemplates(t[k], ctx, rng)
			out = diags.SafeDiagnosticsExtend(out, itemDiags)
		}
		return t, out
	}
	return v, nil
}

func (d *Description) nodeRange(n *yaml.Node) hcl.Range {
	pos := hcl.Pos{Line: n.Line, Column: n.Column}
	return hcl.Range{Filename: d.Path, Start: pos, End: pos}
}

// checkKey rejects top-level keys which are not sections.
func checkKey(name string, rng *hcl.Range) *hcl.Diagnostic {
	if name == document.VersionKey {
		return diags.DiagReservedKey(name, rng)
	}
	if _, ok := gateway.LookupSection(name); !ok {
		return diags.DiagUnknownSection(name, rng)
	}
	return nil
}

// SectionNames returns the names of the loaded sections in document order.
func (d *Description) SectionNames() []string {
	var names []string
	for _, s := range gateway.Sections {
		if _, ok := d.Sections[s.Name]; ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// String describes the description for log output.
func (d *Description) String() string {
	return fmt.Sprintf("%s (sections: %s)", d.Path, strings.Join(d.SectionNames(), ", "))
}
