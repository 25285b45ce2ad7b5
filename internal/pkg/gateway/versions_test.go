// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package gateway

import (
	"testing"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/shoenig/test/must"
)

func TestReleases(t *testing.T) {
	exp := []string{"19.12", "20.01", "20.04", "20.07"}
	must.Len(t, len(exp), Releases)

	for i, rel := range Releases {
		must.Eq(t, exp[i], rel.String())

		parsed, err := document.ParseVersion(rel.String())
		must.NoError(t, err, must.Sprint(rel.String()))
		must.Eq(t, 0, parsed.Compare(rel), must.Sprint(rel.String()))

		if i > 0 {
			must.True(t, rel.GreaterThan(Releases[i-1]), must.Sprintf("%s after %s", rel, Releases[i-1]))
		}
	}
	must.Eq(t, "20.07", Latest().String())
}
