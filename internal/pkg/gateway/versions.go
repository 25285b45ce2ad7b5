// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package gateway declares the application gateway configuration document:
// the product releases, the enumerations and the section schemas.
package gateway

import "github.com/ibm-security/iag-config/internal/pkg/document"

// Product releases able to consume a configuration document.
var (
	Release1912 = document.MustParseVersion("19.12")
	Release2001 = document.MustParseVersion("20.01")
	Release2004 = document.MustParseVersion("20.04")
	Release2007 = document.MustParseVersion("20.07")
)

// Releases lists the known releases, oldest first.
var Releases = []document.Version{Release1912, Release2001, Release2004, Release2007}

// Latest is the newest known release.
func Latest() document.Version {
	return Releases[len(Releases)-1]
}
