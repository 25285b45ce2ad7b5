// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/shoenig/test/must"
	"github.com/spf13/afero"

	flag "github.com/ibm-security/iag-config/internal/pkg/flag"
	"github.com/ibm-security/iag-config/internal/pkg/helper"
	"github.com/ibm-security/iag-config/internal/pkg/settings"
	"github.com/ibm-security/iag-config/internal/pkg/version"
	"github.com/ibm-security/iag-config/internal/testui"
)

const (
	testDescription = `
authorization = {
  rules = [
    { name = var.rule_name, rule = "any_authenticated" },
  ]
}
`
	testDescriptionPath = "/conf/gateway.hcl"
	testSettingsPath    = "/settings/config.toml"
	testOutputPath      = "/out/config.yaml"
)

type commandResult struct {
	exitCode int
	cmdOut   *bytes.Buffer
	cmdErr   *bytes.Buffer
}

type testEnv struct {
	fs    afero.Fs
	input io.Reader
}

func newTestEnv(t *testing.T, files map[string]string) *testEnv {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		must.NoError(t, afero.WriteFile(fsys, name, []byte(content), 0o644))
	}
	return &testEnv{fs: fsys}
}

func (e *testEnv) run(t *testing.T, args ...string) commandResult {
	t.Helper()
	cmdOut := bytes.NewBuffer(make([]byte, 0))
	cmdErr := bytes.NewBuffer(make([]byte, 0))

	// Build our cancellation context
	ctx, closer := helper.WithInterrupt(context.Background())
	defer closer()

	// Make a test UI
	ui := testui.NonInteractiveTestUI(ctx, cmdOut, cmdErr)
	if e.input != nil {
		ui = testui.InteractiveTestUI(ctx, cmdOut, cmdErr, e.input)
	}

	// Get our base command
	fset := flag.NewSets()
	base, commands := Commands(ctx,
		WithFlags(fset),
		WithUI(ui),
		WithFs(e.fs),
		WithSettings(&settings.Source{
			Fs:        e.fs,
			Path:      testSettingsPath,
			DropInDir: testSettingsPath + ".d",
		}),
	)
	defer base.Close()

	command := &cli.CLI{
		Name:                       cliName,
		Args:                       args,
		Version:                    version.HumanVersion(),
		Commands:                   commands,
		Autocomplete:               true,
		AutocompleteNoDefaultFlags: true,
		HelpFunc:                   GroupedHelpFunc(cli.BasicHelpFunc(cliName)),
		HelpWriter:                 cmdOut,
		ErrorWriter:                cmdErr,
	}

	t.Logf("Running iag-config\n  args:%v", command.Args)

	exitCode, err := command.Run()
	must.NoError(t, err)

	return commandResult{
		exitCode: exitCode,
		cmdOut:   cmdOut,
		cmdErr:   cmdErr,
	}
}

func (e *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := afero.ReadFile(e.fs, path)
	must.NoError(t, err)
	return string(b)
}

func TestCLI_Version(t *testing.T) {
	env := newTestEnv(t, nil)
	result := env.run(t, "version")
	must.Zero(t, result.exitCode)
	must.StrContains(t, result.cmdOut.String(), "iag-config v")
	must.StrContains(t, result.cmdOut.String(), "20.07")
}

func TestCLI_Render(t *testing.T) {
	env := newTestEnv(t, map[string]string{testDescriptionPath: testDescription})

	result := env.run(t, "render", "--var", "rule_name=r1", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))

	out := result.cmdOut.String()
	must.StrContains(t, out, "authorization:")
	must.StrContains(t, out, "name: r1")
	must.StrContains(t, out, `version: "19.12"`)
}

func TestCLI_Render_VarFile(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		testDescriptionPath: testDescription,
		"/conf/a.hcl":       `rule_name = "from-a"`,
		"/conf/b.hcl":       `rule_name = "from-b"`,
	})

	// Files apply in sorted order regardless of the order given.
	result := env.run(t, "render", "-f", "/conf/b.hcl", "-f", "/conf/a.hcl", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), "name: from-b")
}

func TestCLI_Render_EnvVar(t *testing.T) {
	t.Setenv("IAG_CONFIG_VAR_rule_name", "from-env")
	env := newTestEnv(t, map[string]string{testDescriptionPath: testDescription})

	result := env.run(t, "render", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), "name: from-env")
}

func TestCLI_Render_ToFile(t *testing.T) {
	env := newTestEnv(t, map[string]string{testDescriptionPath: testDescription})

	result := env.run(t, "render", "--var=rule_name=r1", "--quiet", "-o", testOutputPath, testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), "Document written to "+testOutputPath)
	must.StrNotContains(t, result.cmdOut.String(), "authorization:")
	must.StrContains(t, env.readFile(t, testOutputPath), "name: r1")

	// A second render refuses to replace the file without approval.
	result = env.run(t, "render", "--var=rule_name=r2", "-o", testOutputPath, testDescriptionPath)
	must.One(t, result.exitCode)
	must.StrContains(t, result.cmdErr.String(), "output file already exists")
	must.StrContains(t, env.readFile(t, testOutputPath), "name: r1")

	result = env.run(t, "render", "--var=rule_name=r2", "-o", testOutputPath, "-y", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, env.readFile(t, testOutputPath), "name: r2")
}

func TestCLI_Render_ConfirmOverwrite(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		exitCode int
		expName  string
	}{
		{name: "yes", input: "y\n", exitCode: 0, expName: "name: new"},
		{name: "no", input: "n\n", exitCode: 1, expName: "name: old"},
		{name: "invalid then yes", input: "maybe\nyes\n", exitCode: 0, expName: "name: new"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, map[string]string{
				testDescriptionPath: testDescription,
				testOutputPath:      "authorization:\n  rules:\n    - name: old\n",
			})
			env.input = strings.NewReader(tc.input)

			result := env.run(t, "render", "--var=rule_name=new", "-o", testOutputPath, testDescriptionPath)
			must.Eq(t, tc.exitCode, result.exitCode, must.Sprint(result.cmdErr.String()))
			must.StrContains(t, result.cmdOut.String(), "overwrite? [y/n]")
			must.StrContains(t, env.readFile(t, testOutputPath), tc.expName)
		})
	}
}

func TestCLI_Render_OutputSetting(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		testDescriptionPath: testDescription,
		testSettingsPath:    `output = "/out/from-settings.yaml"`,
	})

	result := env.run(t, "render", "--var=rule_name=r1", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, env.readFile(t, "/out/from-settings.yaml"), "name: r1")
}

func TestCLI_Render_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		files  map[string]string
		args   []string
		expErr []string
	}{
		{
			name:   "no arguments",
			args:   []string{"render"},
			expErr: []string{`"render" requires exactly 1 description file, got 0`},
		},
		{
			name:   "flag not defined",
			files:  map[string]string{testDescriptionPath: testDescription},
			args:   []string{"render", "--nope", testDescriptionPath},
			expErr: []string{"unknown flag: --nope"},
		},
		{
			name:   "missing description",
			args:   []string{"render", "/conf/missing.hcl"},
			expErr: []string{"Input Path: /conf/missing.hcl"},
		},
		{
			name:  "invalid section",
			files: map[string]string{testDescriptionPath: `authorization = { rules = [{ name = "r1" }] }`},
			args:  []string{"render", testDescriptionPath},
			expErr: []string{
				"Failed To Build Authorization Section",
				"Section: authorization",
				"Field: authorization.rules[0].rule",
			},
		},
		{
			name:   "image too old",
			files:  map[string]string{testDescriptionPath: `logging = { components = ["audit.http"] }`},
			args:   []string{"render", "--image", "iag:19.12", testDescriptionPath},
			expErr: []string{"document version is not supported by the image", "Image: iag:19.12"},
		},
		{
			name:  "image one release behind",
			files: map[string]string{testDescriptionPath: `logging = { components = ["audit.http"] }`},
			args:  []string{"render", "--image", "iag:20.01", testDescriptionPath},
			expErr: []string{
				"document version is not supported by the image",
				"document requires 20.04, iag:20.01 provides 20.01",
				"Image: iag:20.01",
				"Document Version: 20.04",
			},
		},
		{
			name:   "invalid var flag",
			files:  map[string]string{testDescriptionPath: testDescription},
			args:   []string{"render", "--var", "rule_name", testDescriptionPath},
			expErr: []string{`"rule_name" must be in the form key=value`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, tc.files)
			result := env.run(t, tc.args...)
			must.One(t, result.exitCode)
			for _, exp := range tc.expErr {
				must.StrContains(t, result.cmdErr.String(), exp)
			}
		})
	}
}

func TestCLI_Validate(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		testDescriptionPath: `logging = { components = ["audit.http"] }`,
	})

	result := env.run(t, "validate", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), testDescriptionPath+" is valid")
	must.StrContains(t, result.cmdOut.String(), "Minimum gateway release: 20.04")
}

func TestCLI_Validate_Image(t *testing.T) {
	testCases := []struct {
		name     string
		settings string
		args     []string
		exitCode int
		expOut   string
	}{
		{
			name:     "flag newer image",
			args:     []string{"--image", "iag:20.07"},
			exitCode: 0,
			expOut:   "is valid",
		},
		{
			name:     "settings older image",
			settings: `image = "iag:20.01"`,
			exitCode: 1,
		},
		{
			name:     "flag overrides settings",
			settings: `image = "iag:20.01"`,
			args:     []string{"--image=iag:20.04.1"},
			exitCode: 0,
			expOut:   "is valid",
		},
		{
			name:     "settings image with leading zero",
			settings: `image = "iag:20.04"`,
			exitCode: 0,
			expOut:   "is valid",
		},
		{
			name:     "unversioned image",
			args:     []string{"--image", "iag:latest"},
			exitCode: 0,
			expOut:   "warning: image tag is not a version",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files := map[string]string{testDescriptionPath: `logging = { components = ["audit.http"] }`}
			if tc.settings != "" {
				files[testSettingsPath] = tc.settings
			}
			env := newTestEnv(t, files)

			args := append([]string{"validate"}, tc.args...)
			result := env.run(t, append(args, testDescriptionPath)...)
			must.Eq(t, tc.exitCode, result.exitCode, must.Sprint(result.cmdErr.String()))
			must.StrContains(t, result.cmdOut.String(), tc.expOut)
		})
	}
}

func TestCLI_InvalidSettings(t *testing.T) {
	env := newTestEnv(t, map[string]string{
		testDescriptionPath: testDescription,
		testSettingsPath:    `colour = true`,
	})

	result := env.run(t, "validate", testDescriptionPath)
	must.One(t, result.exitCode)
	must.StrContains(t, result.cmdErr.String(), "unknown settings: colour")
	must.StrContains(t, result.cmdErr.String(), "Settings Path: "+testSettingsPath)
}

func TestCLI_Info(t *testing.T) {
	env := newTestEnv(t, map[string]string{testDescriptionPath: testDescription})

	result := env.run(t, "info", "--var", "rule_name=r1", testDescriptionPath)
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))

	out := result.cmdOut.String()
	must.StrContains(t, out, "SECTION")
	must.StrContains(t, out, "authorization")
	must.StrContains(t, out, "resource_servers")
	must.StrContains(t, out, "19.12")
	must.StrContains(t, out, "rule_name")
	must.StrContains(t, out, "<value for var rule_name from arguments>")
}

func TestCLI_Decode(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.run(t, "decode", "B64:aGVsbG8=", "B64:e30=")
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.Eq(t, "hello\n{}\n", result.cmdOut.String())

	result = env.run(t, "decode", "B64:aGVsbG8=", "hello")
	must.One(t, result.exitCode)
	must.StrContains(t, result.cmdErr.String(), `value is missing the "B64:" prefix`)
	must.StrContains(t, result.cmdErr.String(), "Argument: 2")
	must.StrNotContains(t, result.cmdOut.String(), "hello")
}

func TestCLI_Schema(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.run(t, "schema")
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	for _, name := range []string{"server", "identity", "resource_servers", "authorization", "logging", "advanced"} {
		must.StrContains(t, result.cmdOut.String(), name)
	}

	result = env.run(t, "schema", "server")
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), "ssl.front_end.certificate")
	must.StrContains(t, result.cmdOut.String(), "websocket")

	result = env.run(t, "schema", "nope")
	must.One(t, result.exitCode)
	must.StrContains(t, result.cmdErr.String(), "Known Sections: server, identity")
}

func TestCLI_Help(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.run(t, "--help")
	out := result.cmdOut.String() + result.cmdErr.String()
	must.StrContains(t, out, "Common commands")
	must.StrContains(t, out, "render")
	must.StrContains(t, out, "decode")
}

func TestCLI_GenCLIDocs(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.run(t, "gen-cli-docs", "md", "--out-dir", "/site")
	must.Zero(t, result.exitCode, must.Sprint(result.cmdErr.String()))
	must.StrContains(t, result.cmdOut.String(), "Generated docs for 6 commands in /site")

	render := env.readFile(t, "/site/content/commands/render.md")
	must.StrContains(t, render, `page_title: "Commands: Render"`)
	must.StrContains(t, render, "Usage: `iag-config render <description>")
	must.StrContains(t, render, "#### Render Options")
	must.StrContains(t, render, "- `--to-file=<string>` (`-o`) - Path to write the rendered document")
	must.StrContains(t, render, "- `--var=<key=value>` - Specifies single override variables")

	nav := env.readFile(t, "/site/data/commands-nav-data.json")
	must.StrContains(t, nav, `"title": "validate"`)
	must.StrNotContains(t, nav, docsCommandName)

	exists, err := afero.Exists(env.fs, "/site/content/commands/gen-cli-docs.md")
	must.NoError(t, err)
	must.False(t, exists)

	result = env.run(t, "gen-cli-docs", "html")
	must.One(t, result.exitCode)
}

func TestCLI_GenCLIDocs_Hidden(t *testing.T) {
	env := newTestEnv(t, nil)

	result := env.run(t, "--help")
	must.StrNotContains(t, result.cmdOut.String()+result.cmdErr.String(), docsCommandName)
}
