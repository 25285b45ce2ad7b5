// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/spf13/afero"
)

// Context carries what a build needs beyond the input values.
type Context struct {
	// Fs is used to read file fields. The OS file system is used when nil.
	Fs afero.Fs

	// BaseDir anchors relative file names, normally the directory of the
	// description file the values were loaded from.
	BaseDir string
}

func (c *Context) fs() afero.Fs {
	if c == nil {
		return nil
	}
	return c.Fs
}

func (c *Context) resolve(name string) string {
	if c == nil || c.BaseDir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.BaseDir, name)
}

// Build constructs the composite described by s from values. Leaves are
// constructed before the composites that own them and the first failure is
// returned wrapped in a *FieldError. A nil values map yields a nil
// composite, which is treated as absent by the document package.
func Build(ctx *Context, s *Schema, values map[string]any) (*document.Composite, error) {
	return build(ctx, s, values, s.Name)
}

// BuildList constructs one composite per element of values, which must be a
// list of objects. name prefixes the element paths in errors. A nil values
// yields a nil slice.
func BuildList(ctx *Context, s *Schema, name string, values any) ([]*document.Composite, error) {
	if values == nil {
		return nil, nil
	}
	items, err := toSlice(values)
	if err != nil {
		return nil, fieldError(name, err)
	}

	out := make([]*document.Composite, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", name, i)
		m, err := toMap(item)
		if err != nil {
			return nil, fieldError(itemPath, err)
		}
		c, err := build(ctx, s, m, itemPath)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func build(ctx *Context, s *Schema, values map[string]any, path string) (*document.Composite, error) {
	if values == nil {
		return nil, nil
	}

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if _, ok := s.Lookup(key); !ok {
			return nil, fieldError(join(path, key), ErrUnknownField)
		}
	}

	fields := make([]document.Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Type == TypeUnion {
			field, err := buildUnion(ctx, f, values, path)
			if err != nil {
				return nil, err
			}
			if field != nil {
				fields = append(fields, *field)
			}
			continue
		}

		fieldPath := join(path, f.Name)
		v := values[f.Name]
		if v == nil && f.IsRequired {
			return nil, fieldError(fieldPath, ErrMissingField)
		}

		field, err := buildField(ctx, f, v, fieldPath)
		if err != nil {
			return nil, fieldError(fieldPath, err)
		}
		fields = append(fields, field)
	}

	return document.NewComposite(s.Name, s.Since, fields...), nil
}

func buildUnion(ctx *Context, f Field, values map[string]any, path string) (*document.Field, error) {
	var (
		chosen  *Schema
		present []string
	)
	for _, v := range f.Variants {
		if values[v.Name] != nil {
			present = append(present, v.Name)
			chosen = v
		}
	}

	switch {
	case len(present) > 1:
		return nil, fieldError(join(path, f.Name),
			fmt.Errorf("%w, found %s", ErrUnionConflict, strings.Join(present, " and ")))
	case chosen == nil && f.IsRequired:
		return nil, fieldError(join(path, f.Name),
			fmt.Errorf("%w, expected one of %s", ErrMissingField, variantNames(f.Variants)))
	case chosen == nil:
		return nil, nil
	}

	variantPath := join(path, chosen.Name)
	m, err := toMap(values[chosen.Name])
	if err != nil {
		return nil, fieldError(variantPath, err)
	}
	c, err := build(ctx, chosen, m, variantPath)
	if err != nil {
		return nil, err
	}

	field := document.Child(chosen.Name, c)
	return &field, nil
}

func buildField(ctx *Context, f Field, v any, path string) (document.Field, error) {
	switch f.Type {
	case TypeScalar, TypeOneOfScalar:
		s, err := document.NewScalarOneOf(f.Kinds, v)
		if err != nil {
			return document.Field{}, err
		}
		return document.Child(f.Name, s), nil

	case TypeList:
		var items []any
		if v != nil {
			var err error
			if items, err = toSlice(v); err != nil {
				return document.Field{}, &document.TypeError{Want: f.Kinds, Got: v, List: true}
			}
		}
		l, err := document.NewScalarList(f.Kinds[0], items)
		if err != nil {
			return document.Field{}, err
		}
		return document.Child(f.Name, l), nil

	case TypeChoice:
		if v == nil {
			return document.Child(f.Name, (*document.Variant)(nil)), nil
		}
		variant, err := lookupVariant(f.Enum, v)
		if err != nil {
			return document.Field{}, err
		}
		return document.Child(f.Name, variant), nil

	case TypeChoiceList:
		return buildList(f.Name, v, path, func(item any, _ string) (document.Node, error) {
			return lookupVariant(f.Enum, item)
		})

	case TypeFile:
		if v == nil {
			return document.Child(f.Name, (*document.File)(nil)), nil
		}
		file, err := buildFile(ctx, v)
		if err != nil {
			return document.Field{}, err
		}
		return document.Child(f.Name, file), nil

	case TypeFileList:
		return buildList(f.Name, v, path, func(item any, _ string) (document.Node, error) {
			return buildFile(ctx, item)
		})

	case TypeObject:
		if v == nil {
			return document.Child(f.Name, (*document.Composite)(nil)), nil
		}
		m, err := toMap(v)
		if err != nil {
			return document.Field{}, err
		}
		c, err := build(ctx, f.Object, m, path)
		if err != nil {
			return document.Field{}, err
		}
		return document.Child(f.Name, c), nil

	case TypeObjectList:
		return buildList(f.Name, v, path, func(item any, itemPath string) (document.Node, error) {
			m, err := toMap(item)
			if err != nil {
				return nil, err
			}
			return build(ctx, f.Object, m, itemPath)
		})

	case TypePathContentList:
		return buildList(f.Name, v, path, func(item any, itemPath string) (document.Node, error) {
			return buildPathContent(ctx, item, itemPath)
		})
	}

	return document.Field{}, fmt.Errorf("unsupported field type %s", f.Type)
}

// buildList builds every element of a list field. Errors raised by fn are
// annotated with the index of the element.
func buildList(name string, v any, path string, fn func(item any, itemPath string) (document.Node, error)) (document.Field, error) {
	if v == nil {
		return document.Children(name, nil), nil
	}
	items, err := toSlice(v)
	if err != nil {
		return document.Field{}, err
	}

	nodes := make([]document.Node, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		n, err := fn(item, itemPath)
		if err != nil {
			return document.Field{}, fieldError(itemPath, err)
		}
		nodes = append(nodes, n)
	}
	return document.Children(name, nodes), nil
}

func lookupVariant(e *document.Enum, v any) (*document.Variant, error) {
	s, ok := v.(string)
	if !ok {
		return nil, &document.TypeError{Want: []document.Kind{document.KindString}, Got: v}
	}
	return e.Lookup(s)
}

// buildFile accepts a bare file name or an object with "file" and/or
// "content". When both are present the file wins.
func buildFile(ctx *Context, v any) (*document.File, error) {
	if name, ok := v.(string); ok {
		return document.NewFile(ctx.fs(), ctx.resolve(name), "")
	}

	m, err := toMap(v)
	if err != nil {
		return nil, err
	}
	for k := range m {
		if k != "file" && k != "content" {
			return nil, fmt.Errorf("%w %q", ErrUnknownField, k)
		}
	}
	return fileFromMap(ctx, m)
}

func fileFromMap(ctx *Context, m map[string]any) (*document.File, error) {
	name, hasName := m["file"]
	content, hasContent := m["content"]

	switch {
	case hasName && name != nil:
		s, ok := name.(string)
		if !ok {
			return nil, &document.TypeError{Want: []document.Kind{document.KindString}, Got: name}
		}
		return document.NewFile(ctx.fs(), ctx.resolve(s), "")
	case hasContent && content != nil:
		s, ok := content.(string)
		if !ok {
			return nil, &document.TypeError{Want: []document.Kind{document.KindString}, Got: content}
		}
		return document.NewFileContent(s), nil
	}
	return nil, fmt.Errorf("%w: one of file or content", ErrMissingField)
}

func buildPathContent(ctx *Context, v any, path string) (*document.PathContent, error) {
	m, err := toMap(v)
	if err != nil {
		return nil, err
	}
	for k := range m {
		if k != "path" && k != "file" && k != "content" {
			return nil, fieldError(join(path, k), ErrUnknownField)
		}
	}

	p, ok := m["path"].(string)
	if !ok {
		return nil, fieldError(join(path, "path"), ErrMissingField)
	}
	file, err := fileFromMap(ctx, m)
	if err != nil {
		return nil, err
	}
	return document.NewPathContent(p, file)
}

func toMap(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", document.ErrTypeMismatch, v)
	}
	return m, nil
}

func toSlice(v any) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out, nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: expected list, got %T", document.ErrTypeMismatch, v)
}

func variantNames(variants []*Schema) string {
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.Name
	}
	return strings.Join(names, ", ")
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
