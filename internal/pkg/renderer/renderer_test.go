// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package renderer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/ibm-security/iag-config/internal/pkg/gateway"
	"github.com/ibm-security/iag-config/internal/pkg/logging"
	"github.com/ibm-security/iag-config/internal/pkg/schema"
	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

func testConfig(t *testing.T) *gateway.Config {
	t.Helper()

	authz, err := schema.Build(nil, gateway.AuthorizationSchema, map[string]any{
		"rules": []any{
			map[string]any{"name": "r1", "rule": "any_authenticated"},
		},
	})
	must.NoError(t, err)

	advanced, err := schema.Build(nil, gateway.AdvancedSchema, map[string]any{
		"configuration": []any{
			map[string]any{
				"stanza":    "ssl",
				"entry":     "disable-ssl-v3",
				"operation": "set",
				"value":     []any{"yes"},
			},
		},
	})
	must.NoError(t, err)

	cfg, err := gateway.NewConfig(nil, nil, nil, authz, nil, advanced)
	must.NoError(t, err)
	return cfg
}

const expectedYAML = `advanced:
  configuration:
    - entry: disable-ssl-v3
      operation: set
      stanza: ssl
      value:
        - "yes"
authorization:
  rules:
    - name: r1
      rule: any_authenticated
version: "19.12"
`

func TestRenderer_Render(t *testing.T) {
	var lines []any
	r := &Renderer{Logger: logging.NewTestLogger(func(args ...any) { lines = append(lines, args...) })}

	rendered, err := r.Render(testConfig(t))
	must.NoError(t, err)
	must.Eq(t, "19.12", rendered.Version.String())
	must.Eq(t, expectedYAML, rendered.String())
	must.Len(t, 1, lines)

	var decoded map[string]any
	must.NoError(t, yaml.Unmarshal(rendered.Content, &decoded))
	if diff := cmp.Diff(rendered.Document, decoded); diff != "" {
		t.Fatalf("decoded document differs (-rendered +decoded):\n%s", diff)
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	r := new(Renderer)

	first, err := r.Render(cfg)
	must.NoError(t, err)
	second, err := r.Render(cfg)
	must.NoError(t, err)

	must.Eq(t, first.Content, second.Content)
}

func TestRenderer_FileValues(t *testing.T) {
	server, err := schema.Build(nil, gateway.ServerSchema, map[string]any{
		"local_pages": map[string]any{
			"type": "html",
			"files": []any{
				map[string]any{"path": "pages/en/help.json", "content": "{}"},
			},
		},
	})
	must.NoError(t, err)

	cfg, err := gateway.NewConfig(server, nil, nil, nil, nil, nil)
	must.NoError(t, err)

	rendered, err := new(Renderer).Render(cfg)
	must.NoError(t, err)
	must.StrContains(t, rendered.String(), "help.json: B64:e30=")

	decoded, err := document.DecodeFileValue("B64:e30=")
	must.NoError(t, err)
	must.Eq(t, "{}", string(decoded))
}

func TestRendered_WriteTo(t *testing.T) {
	fsys := afero.NewMemMapFs()

	rendered, err := new(Renderer).Render(testConfig(t))
	must.NoError(t, err)
	must.NoError(t, rendered.WriteTo(fsys, "/out/config.yaml"))

	got, err := afero.ReadFile(fsys, "/out/config.yaml")
	must.NoError(t, err)
	must.Eq(t, expectedYAML, string(got))
}

func TestMarshal_EmptyDocument(t *testing.T) {
	out, err := Marshal(map[string]any{"version": "0"})
	must.NoError(t, err)
	must.Eq(t, "version: \"0\"\n", string(out))
}
