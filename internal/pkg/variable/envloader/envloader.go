// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package envloader

import (
	"os"
	"strings"
)

// DefaultPrefix marks environment variables holding input variable values.
// IAG_CONFIG_VAR_hostname=gw.example.com sets var.hostname.
const DefaultPrefix = "IAG_CONFIG_VAR_"

type EnvLoader struct {
	prefix  string
	environ func() []string
}

func New() *EnvLoader {
	return &EnvLoader{prefix: DefaultPrefix, environ: os.Environ}
}

// NewWithPrefix returns a loader matching prefix against environ, which is
// usually os.Environ.
func NewWithPrefix(prefix string, environ func() []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: environ}
}

func (e *EnvLoader) GetVarsFromEnv() map[string]string {
	environ := e.environ
	if environ == nil {
		environ = os.Environ
	}
	if e.prefix == "" {
		return getVarsFromEnv(DefaultPrefix, environ())
	}
	return getVarsFromEnv(e.prefix, environ())
}

func getVarsFromEnv(prefix string, environ []string) map[string]string {
	out := make(map[string]string)
	for _, raw := range environ {
		switch {
		case !strings.HasPrefix(raw, prefix):
			continue
		case !strings.Contains(raw, "="):
			continue
		default:
			key, value, _ := strings.Cut(raw, "=")
			if name := strings.TrimPrefix(key, prefix); name != "" {
				out[name] = value
			}
		}
	}
	return out
}
