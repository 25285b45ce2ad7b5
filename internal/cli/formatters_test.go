// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestFormatList(t *testing.T) {
	testcases := []struct {
		name   string
		in     []string
		expect string
	}{
		{
			name:   "simple",
			in:     []string{"a", "b", "c"},
			expect: "a\nb\nc",
		},
		{
			name:   "columns",
			in:     []string{"Name|Value", "hostname|www"},
			expect: "Name      Value\nhostname  www",
		},
		{
			name:   "empty placeholder",
			in:     []string{"Name|Value", "port|"},
			expect: "Name  Value\nport  <none>",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			out := formatList(tc.in)
			must.Eq(t, tc.expect, out)
		})
	}
}
