// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package diags holds the HCL diagnostics raised while loading description
// and variable files.
package diags

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/ibm-security/iag-config/internal/pkg/helper"
)

func DiagFileNotFound(f string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Failed to read file",
		Detail:   fmt.Sprintf("The file %q could not be read.", f),
	}
}

func DiagsFileNotFound(f string) hcl.Diagnostics {
	return hcl.Diagnostics{DiagFileNotFound(f)}
}

func DiagUnsupportedFormat(f string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported file format",
		Detail:   fmt.Sprintf("The file %q must have one of the extensions .hcl, .yaml, .yml or .json.", f),
	}
}

func DiagReservedKey(name string, sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Reserved key",
		Detail:   fmt.Sprintf("The key %q is computed when the document is rendered and cannot be set.", name),
		Subject:  sub,
	}
}

func DiagUnknownSection(name string, sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unknown section",
		Detail:   fmt.Sprintf("There is no configuration section named %q.", name),
		Subject:  sub,
	}
}

func DiagBlocksNotSupported(sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unexpected block",
		Detail:   "Sections are assigned as attributes, for example: server = { ... }",
		Subject:  sub,
	}
}

func DiagFailedToConvertCty(err error, sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Failed to convert Cty to interface",
		Detail:   helper.Title(err.Error()),
		Subject:  sub,
	}
}

func DiagInvalidValueForType(err error, sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid value for variable",
		Detail:   fmt.Sprintf("This variable value is not compatible with the variable's type constraint: %s.", err),
		Subject:  sub,
	}
}

func DiagInvalidVariableName(sub *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid variable name",
		Detail:   "Name must start with a letter or underscore and may contain only letters, digits, underscores, and dashes.",
		Subject:  sub,
	}
}

func DiagInvalidVariableArg(arg string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid -var option",
		Detail:   fmt.Sprintf("The given -var option %q is not correctly specified. It must be a variable name and value separated an equals sign, like -var=\"key=value\".", arg),
	}
}

// SafeDiagnosticsAppend appends diag to diags unless diag is nil.
func SafeDiagnosticsAppend(diags hcl.Diagnostics, diag *hcl.Diagnostic) hcl.Diagnostics {
	if diag != nil {
		diags = diags.Append(diag)
	}
	return diags
}

// SafeDiagnosticsExtend appends every non-nil diagnostic of in to diags.
func SafeDiagnosticsExtend(diags, in hcl.Diagnostics) hcl.Diagnostics {
	for _, d := range in {
		diags = SafeDiagnosticsAppend(diags, d)
	}
	return diags
}
