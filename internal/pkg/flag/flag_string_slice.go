// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"os"
	"strings"

	"github.com/posener/complete"
)

// -- StringSliceVar and stringSliceValue
type StringSliceVar struct {
	Name       string
	Aliases    []string
	Usage      string
	Default    []string
	Hidden     bool
	EnvVar     string
	Target     *[]string
	Completion complete.Predictor
	SetHook    func(val []string)
}

type StringSliceVarP struct {
	*StringSliceVar
	Shorthand string
}

func (f *Set) StringSliceVar(i *StringSliceVar) {
	f.StringSliceVarP(&StringSliceVarP{
		StringSliceVar: i,
		Shorthand:      "",
	})
}

func (f *Set) StringSliceVarP(i *StringSliceVarP) {
	initial := i.Default
	if v, exist := os.LookupEnv(i.EnvVar); exist {
		initial = splitList(v)
	}

	def := ""
	if i.Default != nil {
		def = strings.Join(i.Default, ",")
	}

	f.VarFlagP(&VarFlagP{
		VarFlag: &VarFlag{
			Name:       i.Name,
			Aliases:    i.Aliases,
			Usage:      i.Usage,
			Default:    def,
			EnvVar:     i.EnvVar,
			Value:      newStringSliceValue(i, initial, i.Target, i.Hidden),
			Completion: i.Completion,
		},
		Shorthand: i.Shorthand,
	})
}

type stringSliceValue struct {
	v       *StringSliceVarP
	hidden  bool
	changed bool
	target  *[]string
}

func newStringSliceValue(v *StringSliceVarP, def []string, target *[]string, hidden bool) *stringSliceValue {
	*target = def
	return &stringSliceValue{
		v:      v,
		hidden: hidden,
		target: target,
	}
}

// Set appends the comma separated values in val. The first call replaces
// the default rather than adding to it.
func (s *stringSliceValue) Set(val string) error {
	if !s.changed {
		*s.target = nil
		s.changed = true
	}
	*s.target = append(*s.target, splitList(val)...)

	if s.v.SetHook != nil {
		s.v.SetHook(*s.target)
	}

	return nil
}

func (s *stringSliceValue) Get() interface{} { return *s.target }
func (s *stringSliceValue) String() string   { return strings.Join(*s.target, ",") }
func (s *stringSliceValue) Example() string  { return "string" }
func (s *stringSliceValue) Hidden() bool     { return s.hidden }
func (s *stringSliceValue) Type() string     { return "stringSlice" }

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
