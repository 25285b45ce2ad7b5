// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

package gate

import (
	"testing"

	"github.com/ibm-security/iag-config/internal/pkg/document"
	"github.com/shoenig/test/must"
)

func TestParseImage(t *testing.T) {
	testCases := []struct {
		ref    string
		exp    Image
		expErr error
	}{
		{
			ref: "ibm-application-gateway:20.04",
			exp: Image{Repository: "ibm-application-gateway", Tag: "20.04"},
		},
		{
			ref: "icr.io:443/ibmappgateway/ibm-application-gateway:19.12",
			exp: Image{Repository: "icr.io:443/ibmappgateway/ibm-application-gateway", Tag: "19.12"},
		},
		{
			ref: "icr.io:443/ibmappgateway/ibm-application-gateway",
			exp: Image{Repository: "icr.io:443/ibmappgateway/ibm-application-gateway", Tag: "latest"},
		},
		{
			ref: "iag@sha256:abc",
			exp: Image{Repository: "iag", Digest: "sha256:abc"},
		},
		{ref: "", expErr: ErrInvalidImage},
		{ref: ":20.04", expErr: ErrInvalidImage},
	}

	for _, tc := range testCases {
		got, err := ParseImage(tc.ref)
		if tc.expErr != nil {
			must.ErrorIs(t, err, tc.expErr, must.Sprint(tc.ref))
			continue
		}
		must.NoError(t, err, must.Sprint(tc.ref))
		must.Eq(t, tc.exp, got, must.Sprint(tc.ref))
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		name    string
		version string
		image   string
		expErr  error
	}{
		{name: "same release", version: "20.04", image: "iag:20.04"},
		{name: "newer image", version: "19.12", image: "iag:20.07"},
		{name: "patch tag", version: "20.04", image: "iag:20.04.1"},
		{name: "numeric ordering", version: "9.0", image: "iag:19.12"},
		{name: "leading zero tag", version: "20.01", image: "iag:20.01"},
		{name: "suffixed tag", version: "20.04", image: "iag:20.04-ubi"},
		{name: "v prefixed tag", version: "20.07", image: "iag:v20.07"},
		{name: "four part tag", version: "20.07", image: "iag:20.07.0.1"},
		{name: "registry port", version: "20.04", image: "icr.io:443/iag:20.07"},
		{name: "older image", version: "20.04", image: "iag:20.01", expErr: ErrUnsupportedVersion},
		{name: "older suffixed image", version: "20.07", image: "iag:20.04-ubi", expErr: ErrUnsupportedVersion},
		{name: "older major", version: "20.01", image: "iag:19.12", expErr: ErrUnsupportedVersion},
		{name: "latest", version: "20.04", image: "iag", expErr: ErrUnversionedImage},
		{name: "named tag", version: "20.04", image: "iag:stable", expErr: ErrUnversionedImage},
		{name: "digest only", version: "20.04", image: "iag@sha256:abc", expErr: ErrUnversionedImage},
	}

	for _, tc := range testCases {
		err := Check(document.MustParseVersion(tc.version), tc.image)
		if tc.expErr == nil {
			must.NoError(t, err, must.Sprint(tc.name))
			continue
		}
		must.ErrorIs(t, err, tc.expErr, must.Sprint(tc.name))
	}
}

func TestCheck_ZeroVersion(t *testing.T) {
	must.NoError(t, Check(document.Zero, "iag:19.12"))
}

func TestImage_Version(t *testing.T) {
	img, err := ParseImage("iag:20.01")
	must.NoError(t, err)

	v, err := img.Version()
	must.NoError(t, err)
	must.Eq(t, "20.01", v.String())
	must.True(t, document.MustParseVersion("20.04").GreaterThan(v))

	img, err = ParseImage("iag:-ubi")
	must.NoError(t, err)
	_, err = img.Version()
	must.ErrorIs(t, err, ErrUnversionedImage)
}

func TestImage_String(t *testing.T) {
	img, err := ParseImage("iag:20.04@sha256:abc")
	must.NoError(t, err)
	must.Eq(t, "iag:20.04@sha256:abc", img.String())
}
