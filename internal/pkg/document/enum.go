// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"
	"strings"
)

// VariantDecl declares one alternative of an enumeration.
type VariantDecl struct {
	// Name is the declared variant name. Underscores are translated into the
	// enumeration separator when rendered unless Literal is set.
	Name string

	// MinVersion overrides the enumeration default minimum version for this
	// variant only.
	MinVersion *Version

	// Literal keeps Name verbatim in the document.
	Literal bool
}

// V declares a variant with the enumeration default version.
func V(name string) VariantDecl { return VariantDecl{Name: name} }

// Literal declares a variant which renders exactly as named.
func Literal(name string) VariantDecl { return VariantDecl{Name: name, Literal: true} }

// Since returns a copy of d requiring at least version v.
func (d VariantDecl) Since(v Version) VariantDecl {
	d.MinVersion = &v
	return d
}

// Enum is a closed, ordered set of named variants.
type Enum struct {
	name      string
	separator string
	since     Version
	variants  []*Variant
	byName    map[string]*Variant
}

// Variant is a single enumeration value. It is a Node and can be used
// anywhere in a configuration tree.
type Variant struct {
	enum    *Enum
	ordinal int
	name    string
	docName string
	since   Version
}

// NewEnum defines an enumeration. Variants are assigned ordinals 1..n in the
// order they are passed. NewEnum panics on duplicate names since enumerations
// are package level definitions.
func NewEnum(name, separator string, since Version, decls ...VariantDecl) *Enum {
	e := &Enum{
		name:      name,
		separator: separator,
		since:     since,
		byName:    make(map[string]*Variant, len(decls)*2),
	}

	for i, d := range decls {
		v := &Variant{
			enum:    e,
			ordinal: i + 1,
			name:    d.Name,
			docName: d.Name,
			since:   since,
		}
		if !d.Literal && separator != "" {
			v.docName = strings.ReplaceAll(d.Name, "_", separator)
		}
		if d.MinVersion != nil {
			v.since = *d.MinVersion
		}

		if _, ok := e.byName[v.name]; ok {
			panic(fmt.Sprintf("enum %s: duplicate variant %q", name, v.name))
		}
		e.byName[v.name] = v
		if v.docName != v.name {
			e.byName[v.docName] = v
		}
		e.variants = append(e.variants, v)
	}

	return e
}

// Name returns the enumeration name.
func (e *Enum) Name() string { return e.name }

// Variants returns the variants in declaration order.
func (e *Enum) Variants() []*Variant {
	out := make([]*Variant, len(e.variants))
	copy(out, e.variants)
	return out
}

// Lookup returns the variant with the given declared or document name.
func (e *Enum) Lookup(name string) (*Variant, error) {
	if v, ok := e.byName[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w %q for %s", ErrUnknownVariant, name, e.name)
}

// Must is like Lookup but panics when the variant does not exist.
func (e *Enum) Must(name string) *Variant {
	v, err := e.Lookup(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Enum returns the enumeration the variant belongs to.
func (v *Variant) Enum() *Enum { return v.enum }

// Ordinal is the 1-based declaration position of the variant.
func (v *Variant) Ordinal() int { return v.ordinal }

// Name is the declared name.
func (v *Variant) Name() string { return v.name }

// DocumentName is the name written to documents.
func (v *Variant) DocumentName() string { return v.docName }

func (v *Variant) String() string { return v.docName }

func (v *Variant) Absent() bool { return v == nil }

func (v *Variant) MinimumVersion() Version { return v.since }

func (v *Variant) Render(current Version) (any, Version) {
	if v.Absent() {
		return nil, current
	}
	return v.docName, MaxVersion(current, v.since)
}
