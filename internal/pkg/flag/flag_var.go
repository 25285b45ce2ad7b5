// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"

	"github.com/posener/complete"
	flag "github.com/spf13/pflag"
)

// -- VarFlag
type VarFlag struct {
	Name       string
	Aliases    []string
	Usage      string
	Default    string
	EnvVar     string
	Value      flag.Value
	Completion complete.Predictor
}

type VarFlagP struct {
	*VarFlag
	Shorthand string
}

func (f *Set) VarFlag(i *VarFlag) {
	f.VarFlagP(&VarFlagP{
		VarFlag:   i,
		Shorthand: "",
	})
}

// VarFlagP registers the flag on the grouped set used for help output, on
// the union set used for parsing and on the std lib fallback set.
func (f *Set) VarFlagP(i *VarFlagP) {
	// If the flag is marked as hidden, just add it to the set and return to
	// avoid unnecessary computations here. We do not want to add completions
	// or generate help output for hidden flags.
	if v, ok := i.Value.(FlagVisibility); ok && v.Hidden() {
		f.unionSet.VarP(i.Value, i.Name, i.Shorthand, "")
		f.goflagSet.Var(i.Value, i.Name, "")
		f.unionSet.Lookup(i.Name).Hidden = true
		return
	}

	// Add aliases to the main set, they are only shown in help as part of
	// the flag usage.
	for _, a := range i.Aliases {
		f.unionSet.Var(i.Value, a, "")
		f.unionSet.Lookup(a).Hidden = true
		f.goflagSet.Var(i.Value, a, "")
	}

	usage := i.Usage
	if i.EnvVar != "" {
		usage += fmt.Sprintf(" The %s environment variable is used when the flag is not set.", i.EnvVar)
	}
	if len(i.Aliases) > 0 {
		usage += fmt.Sprintf(" Aliases: %v.", i.Aliases)
	}

	f.flagSet.VarP(i.Value, i.Name, i.Shorthand, usage)
	f.unionSet.VarP(i.Value, i.Name, i.Shorthand, usage)
	f.goflagSet.Var(i.Value, i.Name, usage)

	// The default recorded by pflag is the value at registration time, which
	// already includes any environment override.
	f.flagSet.Lookup(i.Name).DefValue = i.Default
	f.unionSet.Lookup(i.Name).DefValue = i.Default

	predictor := i.Completion
	if predictor == nil {
		predictor = complete.PredictNothing
	}
	f.completions["-"+i.Name] = predictor
	f.completions["--"+i.Name] = predictor
	if i.Shorthand != "" {
		f.completions["-"+i.Shorthand] = predictor
	}

	f.vars = append(f.vars, i)
}
