// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package helper

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestFirstRuneToUpper(t *testing.T) {
	cases := []struct {
		s   string
		exp string
	}{
		{s: "", exp: ""},
		{s: "failed to render", exp: "Failed to render"},
		{s: "Already", exp: "Already"},
		{s: "éclair", exp: "Éclair"},
	}

	for _, tc := range cases {
		must.Eq(t, tc.exp, FirstRuneToUpper(tc.s))
	}
}
