// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package document

import "math"

// Kind is the declared type of a scalar value.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// normalize returns v converted to the canonical Go type for k and whether v
// is acceptable for k at all. Decoders hand integers over as int, int64 or
// whole float64 values, all of which are accepted as KindInt.
func (k Kind) normalize(v any) (any, bool) {
	switch k {
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindBool:
		b, ok := v.(bool)
		return b, ok
	case KindInt:
		switch n := v.(type) {
		case int:
			return n, true
		case int64:
			if int64(int(n)) != n {
				return nil, false
			}
			return int(n), true
		case float64:
			if n != math.Trunc(n) || math.IsInf(n, 0) {
				return nil, false
			}
			return int(n), true
		}
	case KindFloat:
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
	}
	return nil, false
}

// Scalar wraps a single primitive value. A Scalar never raises the document
// version; the composite owning it declares the version that applies.
type Scalar struct {
	value any
}

// NewScalar validates v against kind. A nil v produces an absent scalar.
func NewScalar(kind Kind, v any) (*Scalar, error) {
	return NewScalarOneOf([]Kind{kind}, v)
}

// NewScalarOneOf validates v against any one of kinds, the first match wins.
func NewScalarOneOf(kinds []Kind, v any) (*Scalar, error) {
	if v == nil {
		return &Scalar{}, nil
	}
	for _, k := range kinds {
		if nv, ok := k.normalize(v); ok {
			return &Scalar{value: nv}, nil
		}
	}
	return nil, &TypeError{Want: kinds, Got: v}
}

// Value returns the wrapped value, nil when absent.
func (s *Scalar) Value() any {
	if s == nil {
		return nil
	}
	return s.value
}

func (s *Scalar) Absent() bool { return s == nil || s.value == nil }

func (s *Scalar) MinimumVersion() Version { return Zero }

func (s *Scalar) Render(current Version) (any, Version) {
	if s.Absent() {
		return nil, current
	}
	return s.value, current
}
