// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

// Field is one named child of a Composite. A field holds either a single node
// or a list of nodes.
type Field struct {
	name   string
	node   Node
	list   []Node
	isList bool
}

// Child declares a single node field. A nil or absent node is omitted from
// the rendered document.
func Child(name string, n Node) Field {
	return Field{name: name, node: n}
}

// Children declares a list field. A nil slice is omitted from the rendered
// document, an empty one renders as an empty sequence.
func Children(name string, nodes []Node) Field {
	f := Field{name: name, isList: true}
	if nodes != nil {
		f.list = make([]Node, len(nodes))
		copy(f.list, nodes)
	}
	return f
}

// Name returns the document key of the field.
func (f Field) Name() string { return f.name }

// Absent reports whether the field contributes nothing to a document.
func (f Field) Absent() bool {
	if f.isList {
		return f.list == nil
	}
	return IsAbsent(f.node)
}

// Composite owns an ordered set of named child nodes and declares the
// minimum version it requires itself.
type Composite struct {
	kind   string
	since  Version
	fields []Field
}

// NewComposite builds a composite of the given kind. The kind is an opaque
// label the owner of the composite can use to verify what it was handed.
// Field order is preserved when rendering.
func NewComposite(kind string, since Version, fields ...Field) *Composite {
	c := &Composite{
		kind:   kind,
		since:  since,
		fields: make([]Field, len(fields)),
	}
	copy(c.fields, fields)
	return c
}

// Kind returns the label the composite was built with.
func (c *Composite) Kind() string { return c.kind }

// Fields returns the declared fields in order.
func (c *Composite) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Lookup returns the field with the given name.
func (c *Composite) Lookup(name string) (Field, bool) {
	for _, f := range c.fields {
		if f.name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (c *Composite) Absent() bool { return c == nil }

func (c *Composite) MinimumVersion() Version { return c.since }

// Render visits every present field in declaration order. The running
// version starts at the larger of current and the composite's own floor and
// is threaded through each child, so later children never see a lower
// version than earlier ones produced. A composite without present children
// renders as an empty map.
func (c *Composite) Render(current Version) (any, Version) {
	if c.Absent() {
		return nil, current
	}
	doc, version := renderFields(c.fields, MaxVersion(current, c.since))
	return doc, version
}

func renderFields(fields []Field, version Version) (map[string]any, Version) {
	doc := make(map[string]any, len(fields))

	for _, f := range fields {
		if f.Absent() {
			continue
		}

		if f.isList {
			items := make([]any, 0, len(f.list))
			for _, n := range f.list {
				if IsAbsent(n) {
					continue
				}
				var value any
				value, version = n.Render(version)
				items = append(items, value)
			}
			doc[f.name] = items
			continue
		}

		var value any
		value, version = f.node.Render(version)
		if value != nil {
			doc[f.name] = value
		}
	}

	return doc, version
}
