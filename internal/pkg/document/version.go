// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Zero is the baseline version. Nodes reporting Zero never raise the version
// of the document they are rendered into.
var Zero = MustParseVersion("0")

// Version is a dotted-numeric product version such as "19.12". Versions are
// ordered by numeric component, so "19.12" is greater than "9.0" and "20.04"
// equals "20.4". The original string is retained and is what appears in
// rendered documents.
type Version struct {
	raw string
	v   *goversion.Version
}

// ParseVersion parses a dotted-numeric version string. Components may carry
// leading zeros and there may be any number of them. Pre-release and build
// suffixes are rejected.
func ParseVersion(s string) (Version, error) {
	v, err := goversion.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" || s[0] == 'v' {
		return Version{}, fmt.Errorf("invalid version %q: only dotted numbers are allowed", s)
	}
	return Version{raw: s, v: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error. It is intended
// for package level version constants.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version exactly as it was declared.
func (v Version) String() string {
	if v.v == nil {
		return Zero.raw
	}
	return v.raw
}

// IsZero reports whether v is the baseline version.
func (v Version) IsZero() bool {
	return v.v == nil || v.Compare(Zero) == 0
}

// Compare returns -1, 0 or 1 depending on whether v is less than, equal to or
// greater than o. The zero value of Version compares equal to Zero.
func (v Version) Compare(o Version) int {
	return v.parsed().Compare(o.parsed())
}

// LessThan reports whether v orders before o.
func (v Version) LessThan(o Version) bool { return v.Compare(o) < 0 }

// GreaterThan reports whether v orders after o.
func (v Version) GreaterThan(o Version) bool { return v.Compare(o) > 0 }

func (v Version) parsed() *goversion.Version {
	if v.v == nil {
		return Zero.v
	}
	return v.v
}

// MaxVersion returns the greatest of the passed versions. Ties keep the
// earliest argument so the declared string form is stable.
func MaxVersion(first Version, rest ...Version) Version {
	out := first
	for _, v := range rest {
		if v.GreaterThan(out) {
			out = v
		}
	}
	return out
}
