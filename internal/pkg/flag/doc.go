// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package flag is a thin layer over the spf13/pflag package. It wraps pflag
// and offers some added features such as aliasing, autocompletion handling,
// environment variable defaults and grouped help output.
//
// Wrapping the pflag package allows the CLI to default to posix-style flags,
// while also offering the stdlib flag as a fallback for compatibility with
// other tooling.
//
// This package follows pflag convention and for every flag type, also has a
// <flagtype>P flag type, which is just the same flag type but with a shorthand
// available. e.g. The StringVar flag is the posix flag without a shorthand, and
// StringVarP is the posix flag with a shorthand.
package flag
