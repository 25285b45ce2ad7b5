// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shoenig/test/must"
	"github.com/spf13/afero"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/errors"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/renderer"
	"github.com/ibm-security/iag-config/internal/pkg/schema"
	"github.com/ibm-security/iag-config/internal/testui"
)

func TestHelpers_writeOutput(t *testing.T) {
	testCases := []struct {
		name         string
		existing     bool
		autoApproved bool
		input        string
		expErr       error
		expContent   string
	}{
		{name: "new file", expContent: "new"},
		{name: "existing non-interactive", existing: true, expErr: errors.ErrOutputExists, expContent: "old"},
		{name: "existing approved", existing: true, autoApproved: true, expContent: "new"},
		{name: "existing confirmed", existing: true, input: "Y\n", expContent: "new"},
		{name: "existing declined", existing: true, input: "no\n", expErr: errors.ErrOutputExists, expContent: "old"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if tc.existing {
				must.NoError(t, afero.WriteFile(fsys, "/out/doc.yaml", []byte("old"), 0o644))
			}

			var stdout, stderr bytes.Buffer
			ui := testui.NonInteractiveTestUI(context.Background(), &stdout, &stderr)
			if tc.input != "" {
				ui = testui.InteractiveTestUI(context.Background(), &stdout, &stderr, strings.NewReader(tc.input))
			}
			c := &baseCommand{ui: ui, fs: fsys, autoApproved: tc.autoApproved}

			err := writeOutput(c, &renderer.Rendered{Content: []byte("new")}, "/out/doc.yaml")
			if tc.expErr != nil {
				must.ErrorIs(t, err, tc.expErr)
			} else {
				must.NoError(t, err)
			}

			b, err := afero.ReadFile(fsys, "/out/doc.yaml")
			must.NoError(t, err)
			must.Eq(t, tc.expContent, string(b))
		})
	}
}

func TestHelpers_fieldType(t *testing.T) {
	testCases := []struct {
		field schema.Field
		exp   string
	}{
		{field: schema.String("hostname"), exp: "string"},
		{field: schema.OneOf("worker_threads", document.KindInt, document.KindString), exp: "int or string"},
		{field: schema.StringList("values"), exp: "list of string"},
		{field: schema.File("key"), exp: "file"},
		{field: schema.Object("ssl", schema.New("ssl", document.Zero)), exp: "object"},
		{field: schema.Choice("operation", gateway.Operation), exp: "choice (add, set, delete)"},
	}

	for _, tc := range testCases {
		t.Run(tc.field.Name, func(t *testing.T) {
			must.Eq(t, tc.exp, fieldType(tc.field))
		})
	}
}

func TestHelpers_schemaRows(t *testing.T) {
	s := schema.New("server", gateway.Release1912,
		schema.Object("session", schema.New("session", gateway.Release2001,
			schema.Int("timeout").Required(),
		)),
		schema.Bool("http2"),
	)

	rows := schemaRows(s, "")
	must.Eq(t, []string{
		"session|object|false|20.01",
		"session.timeout|int|true|0",
		"http2|bool|false|0",
	}, rows)
}
