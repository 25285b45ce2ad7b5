// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
)

// argNames describes the positional arguments of each command so argument
// count errors can name what is missing.
var argNames = map[string][2]string{
	"render":        {"description file", "description files"},
	"validate":      {"description file", "description files"},
	"info":          {"description file", "description files"},
	"decode":        {"encoded value", "encoded values"},
	"schema":        {"section name", "section names"},
	docsCommandName: {"output mode", "output modes"},
}

// ValidationErr reports a positional argument count outside the range a
// command accepts.
type ValidationErr struct {
	cmd string
	exp int
	got int
	cmp int
}

func tooFewArgs(cmd string, expected, got int) ValidationErr {
	return ValidationErr{cmd: cmd, exp: expected, got: got, cmp: -1}
}

func tooManyArgs(cmd string, expected, got int) ValidationErr {
	return ValidationErr{cmd: cmd, exp: expected, got: got, cmp: 1}
}

func wrongNumArgs(cmd string, expected, got int) ValidationErr {
	return ValidationErr{cmd: cmd, exp: expected, got: got, cmp: 0}
}

func (v ValidationErr) Error() string {
	subject := "this command"
	if v.cmd != "" {
		subject = fmt.Sprintf("%q", v.cmd)
	}

	if v.exp == 0 {
		return fmt.Sprintf("%s takes no arguments, got %d", subject, v.got)
	}

	var amt string
	switch {
	case v.cmp < 0:
		amt = "at least"
	case v.cmp > 0:
		amt = "at most"
	default:
		amt = "exactly"
	}

	names, ok := argNames[v.cmd]
	if !ok {
		names = [2]string{"argument", "arguments"}
	}
	noun := names[0]
	if v.exp > 1 {
		noun = names[1]
	}

	return fmt.Sprintf("%s requires %s %d %s, got %d", subject, amt, v.exp, noun, v.got)
}

type ValidationFn func(c *baseCommand, args []string) error

// NoArgs fails when any positional argument is given.
func NoArgs(c *baseCommand, args []string) error {
	if len(args) != 0 {
		return wrongNumArgs(c.cmdKey, 0, len(args))
	}
	return nil
}

// MinimumNArgs fails when fewer than n positional arguments are given.
func MinimumNArgs(n int) ValidationFn {
	return func(c *baseCommand, args []string) error {
		if len(args) < n {
			return tooFewArgs(c.cmdKey, n, len(args))
		}
		return nil
	}
}

// MaximumNArgs fails when more than n positional arguments are given.
func MaximumNArgs(n int) ValidationFn {
	return func(c *baseCommand, args []string) error {
		if len(args) > n {
			return tooManyArgs(c.cmdKey, n, len(args))
		}
		return nil
	}
}

// ExactArgs fails unless exactly n positional arguments are given.
func ExactArgs(n int) ValidationFn {
	return func(c *baseCommand, args []string) error {
		if len(args) != n {
			return wrongNumArgs(c.cmdKey, n, len(args))
		}
		return nil
	}
}
