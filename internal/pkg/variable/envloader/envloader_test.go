// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package envloader

import (
	"testing"

	"github.com/shoenig/test/must"
)

func TestEnvLoader_GetVarsFromEnv(t *testing.T) {
	environ := func() []string {
		return []string{
			"HOME=/root",
			"IAG_CONFIG_VAR_hostname=gw.example.com",
			"IAG_CONFIG_VAR_query=a=b",
			"IAG_CONFIG_VAR_=ignored",
			"IAG_CONFIG_VAR_empty=",
		}
	}

	got := NewWithPrefix(DefaultPrefix, environ).GetVarsFromEnv()
	must.Eq(t, map[string]string{
		"hostname": "gw.example.com",
		"query":    "a=b",
		"empty":    "",
	}, got)
}

func TestEnvLoader_DefaultPrefix(t *testing.T) {
	t.Setenv("IAG_CONFIG_VAR_port", "8443")

	got := New().GetVarsFromEnv()
	must.Eq(t, "8443", got["port"])

	got = NewWithPrefix("", nil).GetVarsFromEnv()
	must.Eq(t, "8443", got["port"])
}
