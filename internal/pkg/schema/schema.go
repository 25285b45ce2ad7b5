// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package schema declares the shape of configuration sections and builds
// typed document trees from decoded input values.
package schema

import (
	"github.com/ibm-security/iag-config/internal/pkg/document"
)

// FieldType identifies how a field is built from input.
type FieldType int

const (
	TypeScalar FieldType = iota
	TypeOneOfScalar
	TypeList
	TypeChoice
	TypeChoiceList
	TypeFile
	TypeFileList
	TypeObject
	TypeObjectList
	TypePathContentList
	TypeUnion
)

func (t FieldType) String() string {
	switch t {
	case TypeScalar:
		return "scalar"
	case TypeOneOfScalar:
		return "scalar"
	case TypeList:
		return "list"
	case TypeChoice:
		return "choice"
	case TypeChoiceList:
		return "choice list"
	case TypeFile:
		return "file"
	case TypeFileList:
		return "file list"
	case TypeObject:
		return "object"
	case TypeObjectList:
		return "object list"
	case TypePathContentList:
		return "local content list"
	case TypeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Schema describes one composite node: the label it is built with, the
// minimum version it requires and its fields in document order.
type Schema struct {
	Name   string
	Since  document.Version
	Fields []Field
}

// Field describes a single key of a Schema.
type Field struct {
	Name string
	Type FieldType

	// Kinds holds the accepted scalar kinds for TypeScalar, TypeOneOfScalar
	// and TypeList fields.
	Kinds []document.Kind

	// Enum is used by TypeChoice and TypeChoiceList fields.
	Enum *document.Enum

	// Object is used by TypeObject and TypeObjectList fields.
	Object *Schema

	// Variants are the alternatives of a TypeUnion field. Each variant is
	// keyed in the input and in the document by its schema Name.
	Variants []*Schema

	IsRequired bool
}

// Required returns a copy of f which must be supplied.
func (f Field) Required() Field {
	f.IsRequired = true
	return f
}

// New declares a schema.
func New(name string, since document.Version, fields ...Field) *Schema {
	return &Schema{Name: name, Since: since, Fields: fields}
}

// Lookup returns the field accepting the given input key. Union fields are
// matched by variant name only.
func (s *Schema) Lookup(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Type != TypeUnion {
			if f.Name == name {
				return f, true
			}
			continue
		}
		for _, v := range f.Variants {
			if v.Name == name {
				return f, true
			}
		}
	}
	return Field{}, false
}

func String(name string) Field { return Scalar(name, document.KindString) }
func Int(name string) Field    { return Scalar(name, document.KindInt) }
func Bool(name string) Field   { return Scalar(name, document.KindBool) }
func Float(name string) Field  { return Scalar(name, document.KindFloat) }

// Scalar declares a single value of kind k.
func Scalar(name string, k document.Kind) Field {
	return Field{Name: name, Type: TypeScalar, Kinds: []document.Kind{k}}
}

// OneOf declares a single value matching any of kinds.
func OneOf(name string, kinds ...document.Kind) Field {
	return Field{Name: name, Type: TypeOneOfScalar, Kinds: kinds}
}

// List declares a sequence of values of kind k.
func List(name string, k document.Kind) Field {
	return Field{Name: name, Type: TypeList, Kinds: []document.Kind{k}}
}

// StringList is List(name, document.KindString).
func StringList(name string) Field { return List(name, document.KindString) }

// Choice declares a single value of e.
func Choice(name string, e *document.Enum) Field {
	return Field{Name: name, Type: TypeChoice, Enum: e}
}

// Choices declares a sequence of values of e.
func Choices(name string, e *document.Enum) Field {
	return Field{Name: name, Type: TypeChoiceList, Enum: e}
}

// File declares a file value. Input is either a file name string or an
// object with "file" and/or "content" keys.
func File(name string) Field { return Field{Name: name, Type: TypeFile} }

// Files declares a sequence of file values.
func Files(name string) Field { return Field{Name: name, Type: TypeFileList} }

// Object declares a nested composite.
func Object(name string, s *Schema) Field {
	return Field{Name: name, Type: TypeObject, Object: s}
}

// Objects declares a sequence of nested composites.
func Objects(name string, s *Schema) Field {
	return Field{Name: name, Type: TypeObjectList, Object: s}
}

// PathContents declares a sequence of local content entries, each an
// object with a "path" and the keys accepted by File.
func PathContents(name string) Field {
	return Field{Name: name, Type: TypePathContentList}
}

// Union declares a set of mutually exclusive nested composites. At most one
// variant key may be present in the input; it is rendered under its own key.
// name is only used in error messages.
func Union(name string, variants ...*Schema) Field {
	return Field{Name: name, Type: TypeUnion, Variants: variants}
}
