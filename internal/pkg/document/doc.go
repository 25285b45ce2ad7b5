// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package document implements the typed configuration node tree and the
// algorithms that turn a tree into a versioned document.
//
// Every node exposes a minimum version and a Render method. Rendering walks the
// tree once, threading the highest version seen so far through every present
// node, and produces plain Go values (string, int, bool, []any and
// map[string]any) that serialize directly to YAML or JSON.
//
// Nodes are immutable once constructed. All validation happens in the
// constructors, so a tree that exists can always be rendered, and rendering
// never performs I/O.
package document
