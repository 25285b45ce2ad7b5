// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// FilePrefix tags encoded file values so consumers can tell them apart from
// plain strings.
const FilePrefix = "B64:"

// FileVersion is the minimum version of any configured file value.
var FileVersion = MustParseVersion("19.12")

// File holds file content encoded once, at construction.
type File struct {
	name    string
	encoded string
}

// NewFile reads name from fsys, or uses content when name is empty. When both
// are supplied name takes precedence and content is ignored. The content is
// read and encoded immediately; the returned File never touches fsys again.
func NewFile(fsys afero.Fs, name, content string) (*File, error) {
	if name == "" {
		return &File{encoded: encodeFile([]byte(content))}, nil
	}

	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return &File{name: name, encoded: encodeFile(data)}, nil
}

// NewFileContent is a convenience for NewFile(nil, "", content).
func NewFileContent(content string) *File {
	return &File{encoded: encodeFile([]byte(content))}
}

// Name returns the path the content was read from, empty for inline content.
func (f *File) Name() string { return f.name }

// Encoded returns the prefixed base64 form of the content.
func (f *File) Encoded() string { return f.encoded }

func (f *File) Absent() bool { return f == nil }

func (f *File) MinimumVersion() Version { return FileVersion }

func (f *File) Render(current Version) (any, Version) {
	if f.Absent() {
		return nil, current
	}
	return f.encoded, MaxVersion(current, FileVersion)
}

func encodeFile(b []byte) string {
	return FilePrefix + base64.StdEncoding.EncodeToString(b)
}

// DecodeFileValue reverses the encoding applied to file values.
func DecodeFileValue(s string) ([]byte, error) {
	payload, ok := strings.CutPrefix(s, FilePrefix)
	if !ok {
		return nil, fmt.Errorf("value is missing the %q prefix", FilePrefix)
	}
	return base64.StdEncoding.DecodeString(payload)
}
