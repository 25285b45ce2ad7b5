// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"fmt"

	"github.com/ibm-security/iag-config/internal/pkg/document"
)

// Config is a complete gateway configuration: up to six sections, each
// optional. It is immutable once constructed.
type Config struct {
	server          *document.Composite
	identity        *document.Composite
	resourceServers []*document.Composite
	authorization   *document.Composite
	logging         *document.Composite
	advanced        *document.Composite
}

// NewConfig checks that every supplied section was built from the schema it
// is declared with. A nil section, or a nil resourceServers slice, is left
// out of the document.
func NewConfig(
	server, identity *document.Composite,
	resourceServers []*document.Composite,
	authorization, logging, advanced *document.Composite,
) (*Config, error) {
	checks := []struct {
		name string
		node *document.Composite
		kind string
	}{
		{SectionServer, server, ServerSchema.Name},
		{SectionIdentity, identity, IdentitySchema.Name},
		{SectionAuthorization, authorization, AuthorizationSchema.Name},
		{SectionLogging, logging, LoggingSchema.Name},
		{SectionAdvanced, advanced, AdvancedSchema.Name},
	}
	for _, c := range checks {
		if err := checkKind(c.name, c.node, c.kind); err != nil {
			return nil, err
		}
	}
	for i, rs := range resourceServers {
		name := fmt.Sprintf("%s[%d]", SectionResourceServers, i)
		if rs == nil {
			return nil, fmt.Errorf("%w: %s is empty", document.ErrTypeMismatch, name)
		}
		if err := checkKind(name, rs, ResourceServerSchema.Name); err != nil {
			return nil, err
		}
	}

	return &Config{
		server:          server,
		identity:        identity,
		resourceServers: resourceServers,
		authorization:   authorization,
		logging:         logging,
		advanced:        advanced,
	}, nil
}

func checkKind(section string, c *document.Composite, want string) error {
	if c == nil || c.Kind() == want {
		return nil
	}
	return fmt.Errorf("%w: %s section expects %q, got %q",
		document.ErrTypeMismatch, section, want, c.Kind())
}

// Sections returns the document sections in rendering order.
func (c *Config) Sections() []document.Section {
	var rs []document.Node
	if c.resourceServers != nil {
		rs = make([]document.Node, len(c.resourceServers))
		for i, s := range c.resourceServers {
			rs[i] = s
		}
	}

	return []document.Section{
		document.Child(SectionServer, c.server),
		document.Child(SectionIdentity, c.identity),
		document.Children(SectionResourceServers, rs),
		document.Child(SectionAuthorization, c.authorization),
		document.Child(SectionLogging, c.logging),
		document.Child(SectionAdvanced, c.advanced),
	}
}

// Assemble renders the configuration into a document and returns it with
// the minimum release able to consume it.
func (c *Config) Assemble() (map[string]any, document.Version) {
	return document.Assemble(document.Zero, c.Sections()...)
}

// SectionSummary describes one section of a Config.
type SectionSummary struct {
	Name    string
	Present bool

	// Count is the number of entries for list sections, and 1 or 0
	// otherwise.
	Count int

	// Version is the minimum release the section requires on its own.
	Version document.Version
}

// Summary reports every section, present or not, in rendering order.
func (c *Config) Summary() []SectionSummary {
	out := make([]SectionSummary, 0, len(Sections))
	for _, s := range c.Sections() {
		summary := SectionSummary{Name: s.Name(), Version: document.Zero}
		if !s.Absent() {
			summary.Present = true
			_, summary.Version = document.Assemble(document.Zero, s)
			summary.Count = 1
			if s.Name() == SectionResourceServers {
				summary.Count = len(c.resourceServers)
			}
		}
		out = append(out, summary)
	}
	return out
}
