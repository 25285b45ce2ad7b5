// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

// ScalarList is an ordered sequence of scalars sharing one declared kind.
//
// Only the first element is checked against the kind. Later elements are
// carried through as given.
type ScalarList struct {
	values []any
}

// NewScalarList builds a list from values. A nil slice produces an absent
// list, an empty non-nil slice renders as an empty sequence.
func NewScalarList(kind Kind, values []any) (*ScalarList, error) {
	if values == nil {
		return &ScalarList{}, nil
	}

	out := make([]any, len(values))
	copy(out, values)

	if len(out) > 0 {
		nv, ok := kind.normalize(out[0])
		if !ok {
			return nil, &TypeError{Want: []Kind{kind}, Got: out[0], List: true}
		}
		out[0] = nv
	}
	return &ScalarList{values: out}, nil
}

// Values returns a copy of the list elements.
func (l *ScalarList) Values() []any {
	if l.Absent() {
		return nil
	}
	out := make([]any, len(l.values))
	copy(out, l.values)
	return out
}

func (l *ScalarList) Absent() bool { return l == nil || l.values == nil }

func (l *ScalarList) MinimumVersion() Version { return Zero }

func (l *ScalarList) Render(current Version) (any, Version) {
	if l.Absent() {
		return nil, current
	}
	return l.Values(), current
}
