// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package variable parses input variables from the environment, variable
// files and the command line, and exposes them to description files as the
// "var" object.
package variable

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/ibm-security/iag-config/internal/pkg/errors/diags"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RootName is the name under which variables are exposed to expressions.
const RootName = "var"

// Variable is a single named input value together with where it was set.
type Variable struct {
	Name      string
	Value     cty.Value
	DeclRange hcl.Range
}

// ParsedVariables wraps the merged variables returned by Parser.Parse and
// provides functionality to access them.
type ParsedVariables struct {
	Vars map[string]*Variable
}

// Names returns the variable names in sorted order.
func (pv *ParsedVariables) Names() []string {
	if pv == nil {
		return nil
	}
	names := make([]string, 0, len(pv.Vars))
	for name := range pv.Vars {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// AsObject returns the variables as a cty object, suitable for binding to
// RootName in an hcl.EvalContext. An empty set yields an empty object.
func (pv *ParsedVariables) AsObject() cty.Value {
	if pv == nil || len(pv.Vars) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(pv.Vars))
	for name, v := range pv.Vars {
		attrs[name] = v.Value
	}
	return cty.ObjectVal(attrs)
}

// ConvertVariablesToMapOfAny translates the parsed variables into their
// native go types.
//
// Even though parsing the variable went without error, it is highly possible
// that conversion to native go types can incur an error. If an error is
// returned, it should be considered terminal.
func (pv *ParsedVariables) ConvertVariablesToMapOfAny() (map[string]any, hcl.Diagnostics) {
	var out hcl.Diagnostics
	o := make(map[string]any)
	if pv == nil {
		return o, nil
	}
	for k, v := range pv.Vars {
		val, err := ConvertCtyToInterface(v.Value)
		if err != nil {
			out = diags.SafeDiagnosticsAppend(out, diags.DiagFailedToConvertCty(err, v.DeclRange.Ptr()))
			continue
		}
		o[k] = val
	}
	return o, out
}

// merge copies every variable of in over pv.
func (pv *ParsedVariables) merge(in map[string]*Variable) {
	maps.Copy(pv.Vars, in)
}
