// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package renderer

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/helper/filesystem"
	"github.com/ibm-security/iag-config/internal/pkg/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Indent is the number of spaces used per nesting level of the YAML output.
const Indent = 2

// Renderer turns a gateway configuration into its YAML document.
type Renderer struct {

	// Logger receives a dump of the assembled document at the TRACE level.
	// It can be nil.
	Logger logging.Logger
}

// Rendered is the output of a single render.
type Rendered struct {

	// Document is the assembled document tree.
	Document map[string]any

	// Version is the minimum product release able to consume Document.
	Version document.Version

	// Content is Document serialized as YAML.
	Content []byte
}

// Render assembles cfg and serializes the resulting document. Map keys are
// emitted in sorted order, so rendering an unchanged configuration always
// produces the same bytes.
func (r *Renderer) Render(cfg *gateway.Config) (*Rendered, error) {
	doc, version := cfg.Assemble()

	if r.Logger != nil {
		r.Logger.Trace(fmt.Sprintf("assembled document (version %s):\n%s", version, spew.Sdump(doc)))
	}

	content, err := Marshal(doc)
	if err != nil {
		return nil, err
	}

	return &Rendered{
		Document: doc,
		Version:  version,
		Content:  content,
	}, nil
}

// Marshal serializes doc as YAML with the package indentation.
func Marshal(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTo persists the rendered content at path, creating parent
// directories as needed.
func (r *Rendered) WriteTo(fsys afero.Fs, path string) error {
	if err := filesystem.WriteFile(fsys, path, r.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// String returns the YAML content.
func (r *Rendered) String() string { return string(r.Content) }
