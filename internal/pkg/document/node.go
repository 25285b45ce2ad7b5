// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

// Node is a single element of the configuration tree.
type Node interface {
	// MinimumVersion is the lowest product version able to understand the
	// construct represented by the node.
	MinimumVersion() Version

	// Render returns the document form of the node together with the
	// effective minimum version, which is never lower than current or than
	// MinimumVersion. A nil value means the node is absent and must be left
	// out of the enclosing document.
	Render(current Version) (any, Version)
}

// absenter is implemented by nodes which can exist in a "not set" state.
type absenter interface {
	Absent() bool
}

// IsAbsent reports whether n should be treated as not configured. Nil
// interfaces, nil pointers of the node types in this package and nodes in the
// not set state are all absent.
func IsAbsent(n Node) bool {
	if n == nil {
		return true
	}
	if a, ok := n.(absenter); ok {
		return a.Absent()
	}
	return false
}

// Render renders n starting from Zero. Absent nodes render as (nil, Zero).
func Render(n Node) (any, Version) {
	if IsAbsent(n) {
		return nil, Zero
	}
	return n.Render(Zero)
}
