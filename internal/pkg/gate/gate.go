// Copyright IBM Corp. 2021, 2025
// SPDX-License-Identifier: MPL-2.0

// Package gate checks a rendered document against the gateway image it is
// destined for.
package gate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ibm-security/iag-config/internal/pkg/document"
)

var (
	// ErrUnsupportedVersion is returned when the document requires a newer
	// release than the image provides.
	ErrUnsupportedVersion = errors.New("document version is not supported by the image")

	// ErrUnversionedImage is returned when the image tag is not a release
	// version, for example "latest". The document cannot be checked.
	ErrUnversionedImage = errors.New("image tag is not a version")

	// ErrInvalidImage is returned for an empty image reference.
	ErrInvalidImage = errors.New("invalid image reference")
)

// Image is a parsed container image reference.
type Image struct {
	Repository string
	Tag        string
	Digest     string
}

// ParseImage splits ref into repository, tag and digest. A reference without
// a tag has the implicit tag "latest".
func ParseImage(ref string) (Image, error) {
	if strings.TrimSpace(ref) == "" {
		return Image{}, ErrInvalidImage
	}

	var img Image
	name, digest, ok := strings.Cut(ref, "@")
	if ok {
		img.Digest = digest
	}

	// A colon after the last slash separates the tag; earlier colons belong
	// to a registry port.
	slash := strings.LastIndex(name, "/")
	if colon := strings.LastIndex(name, ":"); colon > slash {
		img.Repository, img.Tag = name[:colon], name[colon+1:]
	} else {
		img.Repository = name
	}

	if img.Repository == "" {
		return Image{}, fmt.Errorf("%w: %q", ErrInvalidImage, ref)
	}
	if img.Tag == "" && img.Digest == "" {
		img.Tag = "latest"
	}
	return img, nil
}

// Version returns the release the image tag names. A leading "v" and any
// suffix after "-" or "+", such as "20.04-ubi", are ignored.
func (i Image) Version() (document.Version, error) {
	tag := strings.TrimPrefix(i.Tag, "v")
	if idx := strings.IndexAny(tag, "-+"); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return document.Version{}, fmt.Errorf("%w: %q", ErrUnversionedImage, i.Tag)
	}
	v, err := document.ParseVersion(tag)
	if err != nil {
		return document.Version{}, fmt.Errorf("%w: %q", ErrUnversionedImage, i.Tag)
	}
	return v, nil
}

func (i Image) String() string {
	out := i.Repository
	if i.Tag != "" {
		out += ":" + i.Tag
	}
	if i.Digest != "" {
		out += "@" + i.Digest
	}
	return out
}

// Check reports whether a document of version docVersion can be consumed by
// the image ref. It returns ErrUnversionedImage, which callers may treat as a
// warning, when the image tag cannot be compared.
func Check(docVersion document.Version, ref string) error {
	img, err := ParseImage(ref)
	if err != nil {
		return err
	}

	imageVersion, err := img.Version()
	if err != nil {
		return err
	}

	// A tag such as 20.04.1 still serves a 20.04 document.
	if docVersion.GreaterThan(imageVersion) {
		return fmt.Errorf("%w: document requires %s, %s provides %s",
			ErrUnsupportedVersion, docVersion, img, img.Tag)
	}
	return nil
}
