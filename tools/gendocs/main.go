// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/ibm-security/iag-config/internal/cli"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		fmt.Printf("gendocs: requires at least 1 parameter, received %v\n", len(args)-1)
		os.Exit(1)
	}
	mode := args[1]
	switch mode {
	case "md", "mdx":
		// these are valid
	default:
		fmt.Printf("gendocs: type parameter must be one of [md, mdx].\n")
		os.Exit(1)
	}
	os.Exit(cli.Main(append([]string{"iag-config", "gen-cli-docs"}, args[1:]...)))
}
