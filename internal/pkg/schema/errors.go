// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrUnionConflict = errors.New("only one alternative may be specified")
	ErrMissingField  = errors.New("required field is missing")
)

// FieldError annotates a build failure with the dotted path of the field it
// occurred on.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldError(path string, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Path: path, Err: err}
}
