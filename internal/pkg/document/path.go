// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"fmt"
	"strings"
)

// PathSeparator splits local content paths into segments.
const PathSeparator = "/"

// FlattenPath nests leaf under the segments of a slash delimited path. Every
// segment but the last maps to a single element list holding a map keyed by
// the next segment:
//
//	FlattenPath("a/b/c", v) == {"a": [{"b": [{"c": v}]}]}
//
// A single segment path places leaf directly under that key. The path must be
// non-empty and must not contain empty segments.
func FlattenPath(path string, leaf any) (map[string]any, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	return flatten(segments, leaf), nil
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is empty", ErrInvalidPath)
	}
	segments := strings.Split(path, PathSeparator)
	for _, s := range segments {
		if s == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return segments, nil
}

func flatten(segments []string, leaf any) map[string]any {
	last := len(segments) - 1
	out := map[string]any{segments[last]: leaf}
	for i := last - 1; i >= 0; i-- {
		out = map[string]any{segments[i]: []any{out}}
	}
	return out
}

// PathContent is a local content entry: a file addressed by a relative path.
// It renders as the nested structure produced by FlattenPath.
type PathContent struct {
	path     string
	segments []string
	file     *File
}

// NewPathContent validates path and pairs it with file.
func NewPathContent(path string, file *File) (*PathContent, error) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("local content %q has no file", path)
	}
	return &PathContent{path: path, segments: segments, file: file}, nil
}

// Path returns the relative path of the entry.
func (p *PathContent) Path() string { return p.path }

// File returns the content of the entry.
func (p *PathContent) File() *File { return p.file }

func (p *PathContent) Absent() bool { return p == nil }

func (p *PathContent) MinimumVersion() Version { return p.file.MinimumVersion() }

func (p *PathContent) Render(current Version) (any, Version) {
	if p.Absent() {
		return nil, current
	}
	leaf, version := p.file.Render(current)
	return flatten(p.segments, leaf), version
}
