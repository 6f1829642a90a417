package imageref

import (
	"strings"

	// register sha256 and sha512 algorithms for digest validation
	_ "crypto/sha256"
	_ "crypto/sha512"

	"github.com/opencontainers/go-digest"

	"github.com/containerkit/imageref/pkg/errdefs"
)

const (
	// localhost is the only hostname treated as a registry without a
	// dot or a port to disambiguate it from a name path component.
	localhost = "localhost"
)

// Reference is a parsed image reference. Name is the only mandatory
// component; an empty Registry, Tag or Digest means the component was
// absent. Reference is immutable value data and comparable with ==.
//
// A Reference is normally obtained from Parse. Callers constructing one
// directly from already-known components should call Validate before
// rendering or serializing it.
type Reference struct {
	// Registry is the host, with an optional port, serving the image.
	Registry string
	// Name is the slash-separated repository path of the image.
	Name string
	// Tag is the human-readable version label of the image.
	Tag string
	// Digest is the content hash of the image, including the algorithm
	// prefix.
	Digest digest.Digest
}

// Parse parses s into a Reference. It accepts the formats:
//
//	nginx
//	nginx:latest
//	docker.io/library/nginx
//	docker.io/library/nginx:latest
//	docker.io/library/nginx@sha256:<hex>
//	docker.io/library/nginx:latest@sha256:<hex>
//
// All failures wrap ErrInvalidFormat.
func Parse(s string) (Reference, error) {
	var zero Reference
	if s == "" {
		return zero, errdefs.Newf(ErrInvalidFormat, "non-empty reference is required")
	}

	rest, digestCandidate, hasDigest, err := splitDigest(s)
	if err != nil {
		return zero, err
	}
	rest, tagCandidate, hasTag := splitTag(rest)
	registry, name := splitRegistry(rest)

	if registry != "" {
		if err := ValidateRegistry(registry); err != nil {
			return zero, err
		}
	}
	if err := ValidateName(name); err != nil {
		return zero, err
	}
	if hasTag {
		if err := ValidateTag(tagCandidate); err != nil {
			return zero, err
		}
	}
	ref := Reference{Registry: registry, Name: name, Tag: tagCandidate}
	if hasDigest {
		dgst := digest.Digest(digestCandidate)
		if err := ValidateDigest(dgst); err != nil {
			return zero, err
		}
		ref.Digest = dgst
	}
	return ref, nil
}

// MustParse wraps Parse with error panic.
func MustParse(s string) Reference {
	ref, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// splitDigest cuts the digest suffix introduced by "@". At most one "@"
// is legal in a reference.
func splitDigest(s string) (remainder, dgst string, found bool, err error) {
	i := strings.IndexByte(s, '@')
	if i < 0 {
		return s, "", false, nil
	}
	if strings.IndexByte(s[i+1:], '@') >= 0 {
		return "", "", false, errdefs.Newf(ErrInvalidFormat, "multiple digest separators in %q", s)
	}
	return s[:i], s[i+1:], true, nil
}

// splitTag cuts the tag suffix. Only a ":" after the last "/" delimits
// a tag; a ":" before it belongs to a registry port.
func splitTag(s string) (remainder, tag string, found bool) {
	if i := strings.LastIndexByte(s, ':'); i > strings.LastIndexByte(s, '/') {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// splitRegistry cuts the registry prefix. The part before the first "/"
// is a registry only when it contains a "." or a ":" or is the literal
// "localhost"; otherwise the whole string is the name.
func splitRegistry(s string) (registry, name string) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return "", s
	}
	if head := s[:i]; head == localhost || strings.ContainsAny(head, ".:") {
		return head, s[i+1:]
	}
	return "", s
}

// String renders the reference in its canonical string form:
// [registry/]name[:tag][@digest]. No validation is re-run; rendering a
// Reference with invalid components produces an invalid string.
func (r Reference) String() string {
	sb := strings.Builder{}
	if r.Registry != "" {
		sb.WriteString(r.Registry)
		sb.WriteByte('/')
	}
	sb.WriteString(r.Name)
	if r.Tag != "" {
		sb.WriteByte(':')
		sb.WriteString(r.Tag)
	}
	if r.Digest != "" {
		sb.WriteByte('@')
		sb.WriteString(r.Digest.String())
	}
	return sb.String()
}

// Tagged reports whether the reference carries a tag.
func (r Reference) Tagged() bool {
	return r.Tag != ""
}

// Digested reports whether the reference carries a digest.
func (r Reference) Digested() bool {
	return r.Digest != ""
}

// Validate checks every present component against the grammar, the same
// checks Parse runs on a raw string. It additionally requires the
// components to survive a render-and-reparse round trip: the registry,
// when present, must be distinguishable from a name path component, and
// the name must not begin with something that would be read back as a
// registry.
func (r Reference) Validate() error {
	if r.Registry != "" {
		if err := ValidateRegistry(r.Registry); err != nil {
			return err
		}
		if r.Registry != localhost && !strings.ContainsAny(r.Registry, ".:") {
			return errdefs.Newf(ErrInvalidFormat,
				"registry %q is indistinguishable from a name path component, add a port or use a fully qualified host", r.Registry)
		}
	}
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if head, _ := splitRegistry(r.Name); head != "" {
		return errdefs.Newf(ErrInvalidFormat, "name %q contains a registry component %q", r.Name, head)
	}
	if r.Tag != "" {
		if err := ValidateTag(r.Tag); err != nil {
			return err
		}
	}
	if r.Digest != "" {
		if err := ValidateDigest(r.Digest); err != nil {
			return err
		}
	}
	return nil
}
