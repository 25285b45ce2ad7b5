// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeMismatch is returned when a node is constructed from a present
	// value whose type does not match the declared kind.
	ErrTypeMismatch = errors.New("Data of an incorrect type was specified")

	// ErrListTypeMismatch is returned when the first element of a scalar list
	// does not match the declared kind.
	ErrListTypeMismatch = errors.New("list data of an incorrect type was specified")

	// ErrFileNotFound is returned when a file node references a path which
	// does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidPath is returned when a local content path is empty or holds
	// an empty segment.
	ErrInvalidPath = errors.New("invalid content path")

	// ErrUnknownVariant is returned when an enumeration has no variant with
	// the requested name.
	ErrUnknownVariant = errors.New("unknown enumeration value")
)

// TypeError describes a value which failed a kind check. It matches
// ErrTypeMismatch, or ErrListTypeMismatch when List is set, with errors.Is.
type TypeError struct {
	Want []Kind
	Got  any
	List bool
}

func (e *TypeError) Error() string {
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = k.String()
	}
	msg := ErrTypeMismatch.Error()
	if e.List {
		msg = ErrListTypeMismatch.Error()
	}
	return fmt.Sprintf("%s: expected %s, got %T", msg, strings.Join(want, " or "), e.Got)
}

func (e *TypeError) Is(target error) bool {
	if e.List {
		return target == ErrListTypeMismatch
	}
	return target == ErrTypeMismatch
}
