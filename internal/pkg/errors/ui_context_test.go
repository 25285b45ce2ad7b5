// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package errors

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestUIErrorContext_Add(t *testing.T) {
	testCases := []struct {
		inputUIErrorContext *UIErrorContext
		inputPrefix         string
		inputVal            string
		expectedOutput      []string
		name                string
	}{
		{
			inputUIErrorContext: NewUIErrorContext(),
			inputPrefix:         UIContextPrefixSection,
			inputVal:            "server",
			expectedOutput:      []string{"Section: server"},
			name:                "empty input context",
		},
		{
			inputUIErrorContext: &UIErrorContext{
				contexts: []string{"Input Path: /etc/iag/gateway.hcl"},
			},
			inputPrefix:    UIContextPrefixSection,
			inputVal:       "server",
			expectedOutput: []string{"Input Path: /etc/iag/gateway.hcl", "Section: server"},
			name:           "non-empty input context",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.inputUIErrorContext.Add(tc.inputPrefix, tc.inputVal)
			must.SliceContainsAll(t, tc.expectedOutput, tc.inputUIErrorContext.GetAll(), must.Sprint(tc.name))
		})
	}
}

func TestUIErrorContext_Append(t *testing.T) {
	testCases := []struct {
		inputUIErrorContext *UIErrorContext
		inputAppendContext  *UIErrorContext
		expectedOutput      []string
		name                string
	}{
		{
			inputUIErrorContext: NewUIErrorContext(),
			inputAppendContext: &UIErrorContext{
				contexts: []string{"Input Path: /etc/iag/gateway.hcl"},
			},
			expectedOutput: []string{"Input Path: /etc/iag/gateway.hcl"},
			name:           "empty input context",
		},
		{
			inputUIErrorContext: &UIErrorContext{
				contexts: []string{"Section: logging"},
			},
			inputAppendContext: &UIErrorContext{
				contexts: []string{"Input Path: /etc/iag/gateway.hcl"},
			},
			expectedOutput: []string{
				"Input Path: /etc/iag/gateway.hcl",
				"Section: logging",
			},
			name: "non-empty input context",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.inputUIErrorContext.Append(tc.inputAppendContext)
			must.SliceContainsAll(t, tc.expectedOutput, tc.inputUIErrorContext.GetAll(), must.Sprint(tc.name))
		})
	}
}

func TestUIErrorContext_Copy(t *testing.T) {
	orig := &UIErrorContext{contexts: []string{"Section: server"}}
	cp := orig.Copy()
	cp.Add(UIContextPrefixField, "server.ssl")

	must.Eq(t, []string{"Section: server"}, orig.GetAll())
	must.Eq(t, []string{"Section: server", "Field: server.ssl"}, cp.GetAll())
}

func TestUIErrorContext_String(t *testing.T) {
	ctx := NewUIErrorContext()
	ctx.Add(UIContextPrefixSection, "server")
	ctx.Add(UIContextPrefixField, "server.session.timeout")
	must.Eq(t, "Section: server\nField: server.session.timeout", ctx.String())
	must.Eq(t, "", NewUIErrorContext().String())
}
