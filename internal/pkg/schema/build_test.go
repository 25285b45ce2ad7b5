// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"testing"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
)

var (
	testV1 = document.MustParseVersion("19.12")
	testV2 = document.MustParseVersion("20.04")

	testOperation = document.NewEnum("operation", ".", document.Zero,
		document.V("add"), document.V("set"), document.V("delete"))

	testEntry = New("entry", document.Zero,
		String("stanza").Required(),
		Choice("operation", testOperation),
		StringList("value"),
	)

	testBasic = New("basic", testV1, String("user"), File("password"))
	testToken = New("token", testV2, String("issuer"))

	testSection = New("section", testV1,
		String("name"),
		OneOf("threads", document.KindInt, document.KindString),
		Bool("enabled"),
		Files("certificates"),
		Objects("entries", testEntry),
		PathContents("pages"),
		Union("method", testBasic, testToken),
	)
)

func TestBuild(t *testing.T) {
	fs := afero.NewMemMapFs()
	must.NoError(t, afero.WriteFile(fs, "/conf/cert.pem", []byte("hello"), 0o644))

	values := map[string]any{
		"name":         "gw",
		"threads":      "auto",
		"certificates": []any{"cert.pem", map[string]any{"content": "hello"}},
		"entries": []any{
			map[string]any{"stanza": "ssl", "operation": "set", "value": []any{"a", "b"}},
		},
		"pages": []any{
			map[string]any{"path": "errors/404.html", "content": "hello"},
		},
		"token": map[string]any{"issuer": "me"},
	}

	c, err := Build(&Context{Fs: fs, BaseDir: "/conf"}, testSection, values)
	must.NoError(t, err)
	must.Eq(t, "section", c.Kind())

	got, version := document.Render(c)
	must.Eq(t, "20.04", version.String())
	must.Eq(t, map[string]any{
		"name":         "gw",
		"threads":      "auto",
		"certificates": []any{"B64:aGVsbG8=", "B64:aGVsbG8="},
		"entries": []any{
			map[string]any{"stanza": "ssl", "operation": "set", "value": []any{"a", "b"}},
		},
		"pages": []any{
			map[string]any{"errors": []any{map[string]any{"404.html": "B64:aGVsbG8="}}},
		},
		"token": map[string]any{"issuer": "me"},
	}, got.(map[string]any))
}

func TestBuild_NilValues(t *testing.T) {
	c, err := Build(nil, testSection, nil)
	must.NoError(t, err)
	must.True(t, document.IsAbsent(c))
}

func TestBuild_Empty(t *testing.T) {
	c, err := Build(nil, testSection, map[string]any{})
	must.NoError(t, err)

	got, version := document.Render(c)
	must.Eq(t, map[string]any{}, got.(map[string]any))
	must.Eq(t, "19.12", version.String())
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		values  map[string]any
		expErr  error
		expPath string
	}{
		{
			name:    "unknown key",
			values:  map[string]any{"nope": 1},
			expErr:  ErrUnknownField,
			expPath: "section.nope",
		},
		{
			name:    "scalar mismatch",
			values:  map[string]any{"enabled": "yes"},
			expErr:  document.ErrTypeMismatch,
			expPath: "section.enabled",
		},
		{
			name:    "one of mismatch",
			values:  map[string]any{"threads": true},
			expErr:  document.ErrTypeMismatch,
			expPath: "section.threads",
		},
		{
			name: "list first element mismatch",
			values: map[string]any{"entries": []any{
				map[string]any{"stanza": "ssl", "value": []any{1}},
			}},
			expErr:  document.ErrListTypeMismatch,
			expPath: "section.entries[0].value",
		},
		{
			name: "unknown enum value",
			values: map[string]any{"entries": []any{
				map[string]any{"stanza": "ssl", "operation": "replace"},
			}},
			expErr:  document.ErrUnknownVariant,
			expPath: "section.entries[0].operation",
		},
		{
			name: "missing required",
			values: map[string]any{"entries": []any{
				map[string]any{"operation": "add"},
			}},
			expErr:  ErrMissingField,
			expPath: "section.entries[0].stanza",
		},
		{
			name: "union conflict",
			values: map[string]any{
				"basic": map[string]any{"user": "a"},
				"token": map[string]any{"issuer": "b"},
			},
			expErr:  ErrUnionConflict,
			expPath: "section.method",
		},
		{
			name:    "missing file",
			values:  map[string]any{"certificates": []any{"missing.pem"}},
			expErr:  document.ErrFileNotFound,
			expPath: "section.certificates[0]",
		},
		{
			name: "invalid path",
			values: map[string]any{"pages": []any{
				map[string]any{"path": "a//b", "content": "x"},
			}},
			expErr:  document.ErrInvalidPath,
			expPath: "section.pages[0]",
		},
		{
			name:    "object expected",
			values:  map[string]any{"token": "me"},
			expErr:  document.ErrTypeMismatch,
			expPath: "section.token",
		},
	}

	for _, tc := range testCases {
		_, err := Build(&Context{Fs: afero.NewMemMapFs()}, testSection, tc.values)
		must.ErrorIs(t, err, tc.expErr, must.Sprint(tc.name))

		var fe *FieldError
		must.ErrorAs(t, err, &fe, must.Sprint(tc.name))
		must.Eq(t, tc.expPath, fe.Path, must.Sprint(tc.name))
	}
}

func TestBuild_FilePrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	must.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("hello"), 0o644))

	s := New("s", document.Zero, File("f"))
	c, err := Build(&Context{Fs: fs}, s, map[string]any{
		"f": map[string]any{"file": "/a.txt", "content": "ignored"},
	})
	must.NoError(t, err)

	got, _ := document.Render(c)
	must.Eq(t, map[string]any{"f": "B64:aGVsbG8="}, got.(map[string]any))
}

func TestBuild_RequiredUnion(t *testing.T) {
	s := New("s", document.Zero, Union("method", testBasic, testToken).Required())

	_, err := Build(nil, s, map[string]any{})
	must.ErrorIs(t, err, ErrMissingField)
	must.ErrorContains(t, err, "basic, token")
}

func TestSchema_Lookup(t *testing.T) {
	f, ok := testSection.Lookup("basic")
	must.True(t, ok)
	must.Eq(t, TypeUnion, f.Type)

	f, ok = testSection.Lookup("entries")
	must.True(t, ok)
	must.Eq(t, "entries", f.Name)

	_, ok = testSection.Lookup("method")
	must.False(t, ok)
}

func TestBuildList(t *testing.T) {
	got, err := BuildList(nil, testEntry, "entries", []any{
		map[string]any{"stanza": "a"},
		map[string]any{"stanza": "b", "operation": "delete"},
	})
	must.NoError(t, err)
	must.Len(t, 2, got)
	must.Eq(t, "entry", got[1].Kind())

	_, err = BuildList(nil, testEntry, "entries", []any{"x"})
	must.ErrorIs(t, err, document.ErrTypeMismatch)
	must.ErrorContains(t, err, "entries[0]")

	got, err = BuildList(nil, testEntry, "entries", nil)
	must.NoError(t, err)
	must.SliceEmpty(t, got)
}
