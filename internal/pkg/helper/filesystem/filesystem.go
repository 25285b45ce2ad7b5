// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// MaybeCreateDestinationDir creates path on fsys, including any parents,
// when it does not exist yet.
func MaybeCreateDestinationDir(fsys afero.Fs, path string, opts ...CreateOption) error {
	co := &createOpts{
		perms: 0755,
	}

	for _, opt := range opts {
		opt(co)
	}

	_, err := fsys.Stat(path)

	if err == nil && co.errOnExists {
		return &fs.PathError{
			Op:   "MaybeCreateDestinationDir",
			Path: path,
			Err:  fs.ErrExist,
		}
	}
	// If the directory doesn't exist, create it.
	if errors.Is(err, fs.ErrNotExist) {
		err := fsys.MkdirAll(path, co.perms)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteFile writes data to path, creating the parent directory first.
func WriteFile(fsys afero.Fs, path string, data []byte, perm fs.FileMode) error {
	if err := MaybeCreateDestinationDir(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, perm)
}

// Exists reports whether path exists on fsys.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}

func WithFileMode(m fs.FileMode) CreateOption {
	return func(c *createOpts) {
		c.perms = m
	}
}

func ErrOnExists() CreateOption {
	return func(c *createOpts) {
		c.errOnExists = true
	}
}

type CreateOption func(c *createOpts)

type createOpts struct {
	errOnExists bool
	perms       fs.FileMode
}
