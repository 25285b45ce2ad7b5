// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package flag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/posener/complete"
)

// -- StringMapVar and stringMapValue
type StringMapVar struct {
	Name       string
	Aliases    []string
	Usage      string
	Default    map[string]string
	Hidden     bool
	Target     *map[string]string
	Completion complete.Predictor
}

type StringMapVarP struct {
	*StringMapVar
	Shorthand string
}

func (f *Set) StringMapVar(i *StringMapVar) {
	f.StringMapVarP(&StringMapVarP{
		StringMapVar: i,
		Shorthand:    "",
	})
}

func (f *Set) StringMapVarP(i *StringMapVarP) {
	f.VarFlagP(&VarFlagP{
		VarFlag: &VarFlag{
			Name:       i.Name,
			Aliases:    i.Aliases,
			Usage:      i.Usage,
			Value:      newStringMapValue(i.Default, i.Target, i.Hidden),
			Completion: i.Completion,
		},
		Shorthand: i.Shorthand,
	})
}

type stringMapValue struct {
	hidden bool
	target *map[string]string
}

func newStringMapValue(def map[string]string, target *map[string]string, hidden bool) *stringMapValue {
	*target = make(map[string]string, len(def))
	for k, v := range def {
		(*target)[k] = v
	}
	return &stringMapValue{
		hidden: hidden,
		target: target,
	}
}

// Set records a single key=value pair. Later pairs for the same key win.
func (s *stringMapValue) Set(val string) error {
	k, v, ok := strings.Cut(val, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return fmt.Errorf("%q must be in the form key=value", val)
	}
	if *s.target == nil {
		*s.target = make(map[string]string)
	}
	(*s.target)[strings.TrimSpace(k)] = v
	return nil
}

func (s *stringMapValue) Get() interface{} { return *s.target }

func (s *stringMapValue) String() string {
	pairs := make([]string, 0, len(*s.target))
	for k, v := range *s.target {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (s *stringMapValue) Example() string { return "key=value" }
func (s *stringMapValue) Hidden() bool    { return s.hidden }
func (s *stringMapValue) Type() string    { return "stringMap" }
