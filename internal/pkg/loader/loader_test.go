// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"testing"

	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

func testFs(t *testing.T, name, content string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	must.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	return fsys
}

const testHCL = `
authorization = {
  rules = [
    { name = "r1", rule = "any_authenticated" },
  ]
}

server = {
  worker_threads = var.threads
  session = {
    cookie_name = upper(var.cookie)
    timeout     = 3600
  }
}
`

func TestLoad_HCL(t *testing.T) {
	fsys := testFs(t, "/conf/gateway.hcl", testHCL)
	vars := cty.ObjectVal(map[string]cty.Value{
		"threads": cty.NumberIntVal(300),
		"cookie":  cty.StringVal("sess"),
	})

	d, diags := Load(fsys, "/conf/gateway.hcl", vars)
	must.False(t, diags.HasErrors(), must.Sprint(diags))
	must.Eq(t, "/conf", d.Dir)
	must.Eq(t, []string{"server", "authorization"}, d.SectionNames())

	must.Eq(t, map[string]any{
		"worker_threads": 300,
		"session": map[string]any{
			"cookie_name": "SESS",
			"timeout":     3600,
		},
	}, d.Sections["server"].(map[string]any))

	must.Eq(t, map[string]any{
		"rules": []map[string]any{
			{"name": "r1", "rule": "any_authenticated"},
		},
	}, d.Sections["authorization"].(map[string]any))

	must.Eq(t, 2, d.Ranges["authorization"].Start.Line)
}

const testYAML = `
logging:
  json_logging: true
  components:
    - audit.azn
  request_log:
    format: "${var.format}"
resource_servers:
  - path: /app
    servers:
      - host: "${var.host}"
        port: ${var.port}
`

func TestLoad_YAML(t *testing.T) {
	fsys := testFs(t, "/conf/gateway.yaml", testYAML)
	vars := cty.ObjectVal(map[string]cty.Value{
		"format": cty.StringVal("%h %l"),
		"host":   cty.StringVal("10.0.0.1"),
		"port":   cty.NumberIntVal(8443),
	})

	d, diags := Load(fsys, "/conf/gateway.yaml", vars)
	must.False(t, diags.HasErrors(), must.Sprint(diags))

	must.Eq(t, map[string]any{
		"json_logging": true,
		"components":   []any{"audit.azn"},
		"request_log":  map[string]any{"format": "%h %l"},
	}, d.Sections["logging"].(map[string]any))

	must.Eq(t, []any{
		map[string]any{
			"path": "/app",
			"servers": []any{
				map[string]any{"host": "10.0.0.1", "port": 8443},
			},
		},
	}, d.Sections["resource_servers"].([]any))

	must.Eq(t, 2, d.Ranges["logging"].Start.Line)
}

func TestLoad_JSON(t *testing.T) {
	fsys := testFs(t, "/conf/gateway.json", `{"advanced": {"configuration": []}}`)

	d, diags := Load(fsys, "/conf/gateway.json", cty.NilVal)
	must.False(t, diags.HasErrors())
	must.Eq(t, map[string]any{"configuration": []any{}}, d.Sections["advanced"].(map[string]any))
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name       string
		file       string
		content    string
		expSummary string
	}{
		{
			name:       "reserved version key",
			file:       "/c.yaml",
			content:    "version: \"20.04\"\n",
			expSummary: "Reserved key",
		},
		{
			name:       "reserved version attribute",
			file:       "/c.hcl",
			content:    "version = \"20.04\"\n",
			expSummary: "Reserved key",
		},
		{
			name:       "unknown section",
			file:       "/c.hcl",
			content:    "servers = {}\n",
			expSummary: "Unknown section",
		},
		{
			name:       "block",
			file:       "/c.hcl",
			content:    "server {\n}\n",
			expSummary: "Unexpected block",
		},
		{
			name:       "undefined variable",
			file:       "/c.hcl",
			content:    "server = { http2 = var.nope }\n",
			expSummary: "Unsupported attribute",
		},
		{
			name:       "unsupported extension",
			file:       "/c.toml",
			content:    "",
			expSummary: "Unsupported file format",
		},
		{
			name:       "top level list",
			file:       "/c.yaml",
			content:    "- a\n",
			expSummary: "Invalid description",
		},
	}

	for _, tc := range testCases {
		fsys := testFs(t, tc.file, tc.content)
		_, diags := Load(fsys, tc.file, cty.EmptyObjectVal)
		must.True(t, diags.HasErrors(), must.Sprint(tc.name))
		must.Eq(t, tc.expSummary, diags[0].Summary, must.Sprint(tc.name))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, diags := Load(afero.NewMemMapFs(), "/missing.hcl", cty.EmptyObjectVal)
	must.True(t, diags.HasErrors())
	must.Eq(t, "Failed to read file", diags[0].Summary)
}

func TestLoad_EmptyYAML(t *testing.T) {
	d, diags := Load(testFs(t, "/c.yaml", ""), "/c.yaml", cty.EmptyObjectVal)
	must.False(t, diags.HasErrors())
	must.MapEmpty(t, d.Sections)
}
