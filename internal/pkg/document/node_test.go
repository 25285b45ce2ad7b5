// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"testing"

	"github.com/shoenig/test/must"
	"github.com/spf13/afero"
)

func TestScalar(t *testing.T) {
	testCases := []struct {
		kind   Kind
		input  any
		exp    any
		expErr error
		name   string
	}{
		{kind: KindString, input: "abc", exp: "abc", name: "string"},
		{kind: KindInt, input: 10, exp: 10, name: "int"},
		{kind: KindInt, input: int64(10), exp: 10, name: "int64 normalised"},
		{kind: KindInt, input: float64(10), exp: 10, name: "whole float normalised"},
		{kind: KindInt, input: 1.5, expErr: ErrTypeMismatch, name: "fractional float"},
		{kind: KindBool, input: true, exp: true, name: "bool"},
		{kind: KindBool, input: "true", expErr: ErrTypeMismatch, name: "string for bool"},
		{kind: KindString, input: 3, expErr: ErrTypeMismatch, name: "int for string"},
		{kind: KindString, input: nil, exp: nil, name: "absent"},
	}

	for _, tc := range testCases {
		s, err := NewScalar(tc.kind, tc.input)
		if tc.expErr != nil {
			must.ErrorIs(t, err, tc.expErr, must.Sprint(tc.name))
			must.ErrorContains(t, err, "Data of an incorrect type was specified", must.Sprint(tc.name))
			continue
		}
		must.NoError(t, err, must.Sprint(tc.name))

		got, v := s.Render(Zero)
		must.Eq(t, tc.exp, got, must.Sprint(tc.name))
		must.True(t, v.IsZero(), must.Sprint(tc.name))
		must.Eq(t, tc.input == nil, IsAbsent(s), must.Sprint(tc.name))
	}
}

func TestScalar_OneOf(t *testing.T) {
	s, err := NewScalarOneOf([]Kind{KindInt, KindString}, "auto")
	must.NoError(t, err)
	must.Eq(t, "auto", s.Value())

	s, err = NewScalarOneOf([]Kind{KindInt, KindString}, 4)
	must.NoError(t, err)
	must.Eq(t, 4, s.Value())

	_, err = NewScalarOneOf([]Kind{KindInt, KindString}, false)
	must.ErrorIs(t, err, ErrTypeMismatch)
	must.ErrorContains(t, err, "int or string")
}

func TestScalar_KeepsOwnerVersion(t *testing.T) {
	s, err := NewScalar(KindString, "x")
	must.NoError(t, err)

	_, v := s.Render(MustParseVersion("20.01"))
	must.Eq(t, "20.01", v.String())
}

func TestScalarList(t *testing.T) {
	l, err := NewScalarList(KindString, []any{"a", "b"})
	must.NoError(t, err)
	got, _ := l.Render(Zero)
	must.Eq(t, []any{"a", "b"}, got.([]any))

	_, err = NewScalarList(KindString, []any{1, "b"})
	must.ErrorIs(t, err, ErrListTypeMismatch)

	// Only the first element is checked.
	l, err = NewScalarList(KindString, []any{"a", 2})
	must.NoError(t, err)
	must.Eq(t, []any{"a", 2}, l.Values())

	l, err = NewScalarList(KindString, nil)
	must.NoError(t, err)
	must.True(t, IsAbsent(l))

	l, err = NewScalarList(KindInt, []any{})
	must.NoError(t, err)
	must.False(t, IsAbsent(l))
	got, _ = l.Render(Zero)
	must.Eq(t, []any{}, got.([]any))
}

func TestScalarList_CopiesInput(t *testing.T) {
	in := []any{"a"}
	l, err := NewScalarList(KindString, in)
	must.NoError(t, err)
	in[0] = "changed"
	must.Eq(t, []any{"a"}, l.Values())
}

func TestIsAbsent(t *testing.T) {
	var (
		c *Composite
		f *File
		v *Variant
		p *PathContent
	)
	must.True(t, IsAbsent(nil))
	must.True(t, IsAbsent(c))
	must.True(t, IsAbsent(f))
	must.True(t, IsAbsent(v))
	must.True(t, IsAbsent(p))
	must.False(t, IsAbsent(NewFileContent("x")))
}

func TestFile(t *testing.T) {
	f := NewFileContent("hello")
	got, v := f.Render(Zero)
	must.Eq(t, "B64:aGVsbG8=", got.(string))
	must.Eq(t, FileVersion.String(), v.String())

	decoded, err := DecodeFileValue(got.(string))
	must.NoError(t, err)
	must.Eq(t, "hello", string(decoded))
}

func TestFile_FromFS(t *testing.T) {
	fs := afero.NewMemMapFs()
	must.NoError(t, afero.WriteFile(fs, "/pages/help.html", []byte("hello"), 0o644))

	f, err := NewFile(fs, "/pages/help.html", "")
	must.NoError(t, err)
	must.Eq(t, "B64:aGVsbG8=", f.Encoded())
	must.Eq(t, "/pages/help.html", f.Name())

	// The content is captured at construction time.
	must.NoError(t, fs.Remove("/pages/help.html"))
	got, _ := f.Render(Zero)
	must.Eq(t, "B64:aGVsbG8=", got.(string))
}

func TestFile_NamePrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	must.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("hello"), 0o644))

	f, err := NewFile(fs, "/a.txt", "ignored")
	must.NoError(t, err)
	must.Eq(t, "B64:aGVsbG8=", f.Encoded())
}

func TestFile_NotFound(t *testing.T) {
	_, err := NewFile(afero.NewMemMapFs(), "/missing.pem", "")
	must.ErrorIs(t, err, ErrFileNotFound)
	must.ErrorContains(t, err, "/missing.pem")
}

func TestDecodeFileValue_MissingPrefix(t *testing.T) {
	_, err := DecodeFileValue("aGVsbG8=")
	must.Error(t, err)
}
