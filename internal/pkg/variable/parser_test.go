// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package variable

import (
	"testing"

	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

func testFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		must.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return fsys
}

func TestParser_Precedence(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"/vars/a.hcl": "hostname = \"from-a\"\nport = 443\n",
		"/vars/b.hcl": "hostname = \"from-b\"\nciphers = [\"x\", \"y\"]\n",
	})

	p, err := NewParser(&ParserConfig{
		Fs: fsys,
		EnvOverrides: map[string]string{
			"hostname": "from-env",
			"region":   "from-env",
			"port":     "80",
		},
		// Files are applied in sorted order regardless of how they were
		// passed.
		FileOverrides: []string{"/vars/b.hcl", "/vars/a.hcl"},
		CLIOverrides: map[string]string{
			"port": "8443",
		},
	})
	must.NoError(t, err)

	parsed, diags := p.Parse()
	must.False(t, diags.HasErrors())
	must.Eq(t, []string{"ciphers", "hostname", "port", "region"}, parsed.Names())

	vars, diags := parsed.ConvertVariablesToMapOfAny()
	must.False(t, diags.HasErrors())
	must.Eq(t, map[string]any{
		"hostname": "from-b",
		"region":   "from-env",
		"port":     "8443",
		"ciphers":  []any{"x", "y"},
	}, vars)
}

func TestParser_AsObject(t *testing.T) {
	var empty *ParsedVariables
	must.True(t, empty.AsObject().RawEquals(cty.EmptyObjectVal))

	p, err := NewParser(&ParserConfig{
		Fs:           afero.NewMemMapFs(),
		CLIOverrides: map[string]string{"hostname": "gw"},
	})
	must.NoError(t, err)

	parsed, diags := p.Parse()
	must.False(t, diags.HasErrors())

	obj := parsed.AsObject()
	must.True(t, obj.Type().IsObjectType())
	must.Eq(t, "gw", obj.GetAttr("hostname").AsString())
}

func TestParser_MissingFile(t *testing.T) {
	_, err := NewParser(&ParserConfig{
		Fs:            afero.NewMemMapFs(),
		FileOverrides: []string{"/nope.hcl"},
	})
	must.ErrorContains(t, err, "variable file `/nope.hcl` not found")
}

func TestParser_InvalidName(t *testing.T) {
	p, err := NewParser(&ParserConfig{
		Fs:           afero.NewMemMapFs(),
		CLIOverrides: map[string]string{"1bad": "x"},
	})
	must.NoError(t, err)

	_, diags := p.Parse()
	must.True(t, diags.HasErrors())
	must.Eq(t, "Invalid variable name", diags[0].Summary)
}

func TestParser_InvalidFile(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"/vars/bad.hcl": "hostname = \n",
	})

	p, err := NewParser(&ParserConfig{Fs: fsys, FileOverrides: []string{"/vars/bad.hcl"}})
	must.NoError(t, err)

	_, diags := p.Parse()
	must.True(t, diags.HasErrors())
}

func TestParser_JSONFile(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"/vars/vars.json": `{"hostname": "json-host", "threads": 300}`,
	})

	p, err := NewParser(&ParserConfig{Fs: fsys, FileOverrides: []string{"/vars/vars.json"}})
	must.NoError(t, err)

	parsed, diags := p.Parse()
	must.False(t, diags.HasErrors())

	vars, _ := parsed.ConvertVariablesToMapOfAny()
	must.Eq(t, map[string]any{"hostname": "json-host", "threads": 300}, vars)
}
