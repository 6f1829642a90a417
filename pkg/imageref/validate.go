package imageref

import (
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/containerkit/imageref/pkg/errdefs"
	"github.com/containerkit/imageref/pkg/imageref/internal/grammar"
)

const (
	// NameTotalLengthMax is the maximum total number of characters in
	// the name component of a reference.
	NameTotalLengthMax = 255
)

// ValidateRegistry checks whether the string is a syntactically valid
// registry: a hostname or IP address with an optional port.
func ValidateRegistry(registry string) error {
	if !grammar.AnchoredRegistry.MatchString(registry) {
		return errdefs.Newf(ErrInvalidFormat, "invalid registry %q", registry)
	}
	return nil
}

// ValidateName checks whether the string is a valid name: one or more
// slash-separated lowercase path components.
func ValidateName(name string) error {
	if name == "" {
		return errdefs.Newf(ErrInvalidFormat, "non-empty name is required")
	}
	if len(name) > NameTotalLengthMax {
		return errdefs.Newf(ErrInvalidFormat, "name exceeds maximum length of %d characters", NameTotalLengthMax)
	}
	if !grammar.AnchoredName.MatchString(name) {
		if grammar.AnchoredName.MatchString(strings.ToLower(name)) {
			return errdefs.Newf(ErrInvalidFormat, "name %q must be lowercase", name)
		}
		return errdefs.Newf(ErrInvalidFormat, "invalid name %q", name)
	}
	return nil
}

// ValidateTag checks whether the string is a valid tag.
func ValidateTag(tag string) error {
	if !grammar.AnchoredTag.MatchString(tag) {
		return errdefs.Newf(ErrInvalidFormat, "invalid tag %q", tag)
	}
	return nil
}

// ValidateDigest checks whether the digest is well-formed, uses a
// supported algorithm, and carries a hex string of exactly the length
// the algorithm produces.
func ValidateDigest(dgst digest.Digest) error {
	if !grammar.AnchoredDigest.MatchString(dgst.String()) {
		return errdefs.Newf(ErrInvalidFormat, "invalid digest %q", dgst)
	}
	if err := dgst.Validate(); err != nil {
		return errdefs.Newf(ErrInvalidFormat, "invalid digest %q: %v", dgst, err)
	}
	return nil
}
