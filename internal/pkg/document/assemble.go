// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

// VersionKey is the top-level document key holding the computed version.
const VersionKey = "version"

// Section is one top-level entry of an assembled document.
type Section = Field

// Assemble renders sections in the order given, exactly as a composite would
// render its fields, and records the final version under VersionKey. floor is
// the version of an empty document.
func Assemble(floor Version, sections ...Section) (map[string]any, Version) {
	doc, version := renderFields(sections, floor)
	doc[VersionKey] = version.String()
	return doc, version
}
